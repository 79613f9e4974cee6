package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "scopeaudit.dev/pkg/scopeaudit/internal/model"
)

// SimpleUI implements UI on top of a cobra command's output streams.
type SimpleUI struct {
	cmd    *cobra.Command
	styles styles
}

// NewSimpleUI creates a new SimpleUI without styling.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplaySummary prints the counters table and the files needing review.
func (s *SimpleUI) DisplaySummary(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s\n", render(s.styles.heading, "Panic/unsafe audit"))
	s.printf("%s", renderCountersTable(report.Counters))

	review := reviewRows(report)
	if len(review) == 0 {
		return nil
	}

	s.printf("\n%s\n", render(s.styles.heading, "Review required"))
	s.printf("%s", renderReviewTable(review))

	return nil
}

type reviewRow struct {
	kind m.Kind
	m.FileCount
}

func reviewRows(report m.Report) []reviewRow {
	var rows []reviewRow

	for _, kind := range m.Kinds {
		for _, row := range report.ByFile(kind) {
			if !row.Bucket.IsTest() {
				rows = append(rows, reviewRow{kind: kind, FileCount: row})
			}
		}
	}

	return rows
}

func renderCountersTable(counters m.Counters) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Kind", "Total", "Review", "Cfg Test", "Inline Test", "Path Test"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	for _, kind := range m.Kinds {
		table.Append([]string{
			string(kind),
			strconv.Itoa(counters.Total(kind)),
			strconv.Itoa(counters.Get(kind, m.BucketReviewRequired)),
			strconv.Itoa(counters.Get(kind, m.BucketCfgTestModule)),
			strconv.Itoa(counters.Get(kind, m.BucketInlineTest)),
			strconv.Itoa(counters.Get(kind, m.BucketPathTest)),
		})
	}

	table.Render()

	return tableBuffer.String()
}

func renderReviewTable(rows []reviewRow) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Kind", "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	total := 0

	for _, row := range rows {
		table.Append([]string{row.Path, string(row.kind), strconv.Itoa(row.Count)})
		total += row.Count
	}

	table.SetFooter([]string{fmt.Sprintf("Total Files %d", len(rows)), "", strconv.Itoa(total)})
	table.Render()

	return tableBuffer.String()
}

// DisplayClassifications prints one `path:line<TAB>bucket` row per occurrence.
func (s *SimpleUI) DisplayClassifications(ctx context.Context, classified []m.Classified) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, c := range classified {
		s.printf("%s\t%s\n", c.Occurrence, c.Bucket)
	}

	return nil
}

// DisplayGuardResult prints violations on stderr, one per line, followed by
// the policy pointer. A pass is reported on stdout unless quiet.
func (s *SimpleUI) DisplayGuardResult(ctx context.Context, result m.GuardResult, opts GuardDisplayOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if result.Pass {
		if !opts.Quiet {
			s.printf("%s panic/unsafe ratchet within baseline\n", render(s.styles.pass, "PASS"))
		}

		return nil
	}

	s.errorf("%s panic/unsafe ratchet exceeded baseline\n", render(s.styles.fail, "FAIL"))

	for _, violation := range result.Violations {
		s.errorf("%s\n", violation)
	}

	if opts.PolicyDoc != "" {
		s.errorf("see %s for the panic/unsafe ratchet policy\n", opts.PolicyDoc)
	}

	return nil
}

// DisplayDiff prints a unified diff, or a note when there is nothing to show.
func (s *SimpleUI) DisplayDiff(ctx context.Context, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if diff == "" {
		s.printf("no per-file changes\n")
		return nil
	}

	s.printf("%s", diff)

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}
