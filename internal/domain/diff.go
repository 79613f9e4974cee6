package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	m "scopeaudit.dev/pkg/scopeaudit/internal/model"
)

// Diff renders a unified diff between the counters and per-file breakdowns of
// two reports and displays it.
func (w *workflow) Diff(ctx context.Context, args DiffArgs) (string, error) {
	before, err := w.LoadReport(ctx, args.Old)
	if err != nil {
		return "", fmt.Errorf("load %s: %w", args.Old, err)
	}

	after, err := w.LoadReport(ctx, args.New)
	if err != nil {
		return "", fmt.Errorf("load %s: %w", args.New, err)
	}

	diff, err := DiffReports(before, after, string(args.Old), string(args.New))
	if err != nil {
		return "", err
	}

	if err := w.DisplayDiff(ctx, diff); err != nil {
		return "", fmt.Errorf("display: %w", err)
	}

	return diff, nil
}

// DiffReports returns a unified diff of the report listings, or an empty
// string when they match.
func DiffReports(before, after m.Report, fromName, toName string) (string, error) {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(reportListing(before)),
		B:        difflib.SplitLines(reportListing(after)),
		FromFile: fromName,
		ToFile:   toName,
		Context:  1,
	})
	if err != nil {
		return "", fmt.Errorf("diff reports: %w", err)
	}

	return diff, nil
}

// reportListing flattens a report into one stable line per fact.
func reportListing(report m.Report) string {
	var b strings.Builder

	for _, kind := range m.Kinds {
		fmt.Fprintf(&b, "%s total %d\n", kind, report.Counters.Total(kind))

		for _, bucket := range m.Buckets {
			fmt.Fprintf(&b, "%s %s %d\n", kind, bucket, report.Counters.Get(kind, bucket))
		}
	}

	for _, kind := range m.Kinds {
		for _, row := range report.ByFile(kind) {
			fmt.Fprintf(&b, "%s %s %s %d\n", kind, row.Path, row.Bucket, row.Count)
		}
	}

	return b.String()
}
