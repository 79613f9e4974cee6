package adapter

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	m "scopeaudit.dev/pkg/scopeaudit/internal/model"
)

// RenderMarkdown renders report as a Markdown document with a summary table
// and one breakdown table per kind.
func RenderMarkdown(report m.Report) string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# Panic/unsafe audit\n\n")
	fmt.Fprintf(&buf, "- Generated: `%s`\n", report.GeneratedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&buf, "- Repository root: `%s`\n\n", report.RepoRoot)

	fmt.Fprintf(&buf, "## Summary\n\n")

	summary := newMarkdownTable(&buf, []string{"Kind", "Total", "Review required", "cfg(test) module", "Inline test", "Path test"})
	for _, kind := range m.Kinds {
		summary.Append([]string{
			string(kind),
			strconv.Itoa(report.Counters.Total(kind)),
			strconv.Itoa(report.Counters.Get(kind, m.BucketReviewRequired)),
			strconv.Itoa(report.Counters.Get(kind, m.BucketCfgTestModule)),
			strconv.Itoa(report.Counters.Get(kind, m.BucketInlineTest)),
			strconv.Itoa(report.Counters.Get(kind, m.BucketPathTest)),
		})
	}

	summary.Render()

	for _, kind := range m.Kinds {
		fmt.Fprintf(&buf, "\n## %s by file\n\n", kind)

		rows := report.ByFile(kind)
		if len(rows) == 0 {
			fmt.Fprintf(&buf, "_none_\n")
			continue
		}

		table := newMarkdownTable(&buf, []string{"Path", "Bucket", "Count"})
		for _, row := range rows {
			table.Append([]string{"`" + row.Path + "`", string(row.Bucket), strconv.Itoa(row.Count)})
		}

		table.Render()
	}

	return buf.String()
}

func newMarkdownTable(buf *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")

	return table
}
