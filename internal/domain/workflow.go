package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"scopeaudit.dev/pkg/scopeaudit/internal/adapter"
	"scopeaudit.dev/pkg/scopeaudit/internal/controller"
	m "scopeaudit.dev/pkg/scopeaudit/internal/model"
)

var (
	// ErrGuardFailed is returned when the report exceeds the baseline.
	ErrGuardFailed = errors.New("panic/unsafe ratchet guard failed")
	// ErrUnknownLocator is returned for a --locator value nobody registered.
	ErrUnknownLocator = errors.New("unknown locator")
	// ErrInvalidTarget is returned for classify arguments that are not path:line.
	ErrInvalidTarget = errors.New("invalid classify target")
)

// AuditArgs contains the arguments for an audit run.
type AuditArgs struct {
	Root     m.Path
	Exclude  []string
	Locator  string
	Threads  int
	Output   m.Path // JSON report; empty skips writing
	Markdown m.Path // Markdown report; empty skips writing
}

// GuardArgs contains the arguments for a ratchet check.
type GuardArgs struct {
	AuditArgs
	Baseline  m.Path
	AuditJSON m.Path // previously written report; empty runs a fresh audit
	PolicyDoc string
	Quiet     bool
}

// ClassifyArgs contains the arguments for classifying explicit locations.
type ClassifyArgs struct {
	Root    m.Path
	Targets []string // path:line, relative to Root or absolute
}

// DiffArgs names two reports to compare.
type DiffArgs struct {
	Old m.Path
	New m.Path
}

// Workflow defines the use cases exposed on the command line.
type Workflow interface {
	Audit(ctx context.Context, args AuditArgs) (m.Report, error)
	Guard(ctx context.Context, args GuardArgs) (m.GuardResult, error)
	Classify(ctx context.Context, args ClassifyArgs) ([]m.Classified, error)
	Diff(ctx context.Context, args DiffArgs) (string, error)
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ReportStore
	controller.UI

	locators map[string]adapter.OccurrenceLocator
	markers  MarkerSet
	now      func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	locators ...adapter.OccurrenceLocator,
) Workflow {
	byName := make(map[string]adapter.OccurrenceLocator, len(locators))
	for _, locator := range locators {
		byName[locator.Name()] = locator
	}

	return &workflow{
		SourceFSAdapter: fsAdapter,
		ReportStore:     reportStore,
		UI:              ui,
		locators:        byName,
		markers:         DefaultMarkers,
		now:             time.Now,
	}
}

// Audit locates, classifies and tallies every occurrence under args.Root,
// writes the requested artifacts and displays the summary.
func (w *workflow) Audit(ctx context.Context, args AuditArgs) (m.Report, error) {
	report, err := w.audit(ctx, args)
	if err != nil {
		return m.Report{}, err
	}

	if args.Output != "" {
		if err := w.SaveReport(ctx, args.Output, report); err != nil {
			slog.Error("Failed to save report", "path", args.Output, "error", err)
			return m.Report{}, fmt.Errorf("save report: %w", err)
		}
	}

	if args.Markdown != "" {
		if err := w.SaveMarkdown(ctx, args.Markdown, report); err != nil {
			slog.Error("Failed to save markdown report", "path", args.Markdown, "error", err)
			return m.Report{}, fmt.Errorf("save markdown report: %w", err)
		}
	}

	if err := w.DisplaySummary(ctx, report); err != nil {
		return m.Report{}, fmt.Errorf("display: %w", err)
	}

	return report, nil
}

func (w *workflow) audit(ctx context.Context, args AuditArgs) (m.Report, error) {
	locator, err := w.locator(ctx, args.Locator)
	if err != nil {
		return m.Report{}, err
	}

	exclude, err := compileExcludes(args.Exclude)
	if err != nil {
		return m.Report{}, err
	}

	root, err := w.resolveRoot(ctx, args.Root)
	if err != nil {
		return m.Report{}, err
	}

	occurrences, err := locator.Locate(ctx, adapter.LocateRequest{
		Root:     root,
		Patterns: TargetPatterns,
		Exclude:  exclude,
		Threads:  args.Threads,
	})
	if err != nil {
		slog.Error("Failed to locate occurrences", "root", root, "locator", locator.Name(), "error", err)
		return m.Report{}, fmt.Errorf("locate occurrences: %w", err)
	}

	aggregator, err := w.classifyAll(ctx, occurrences, args.Threads)
	if err != nil {
		return m.Report{}, err
	}

	report := aggregator.Report(string(root), w.now())
	slog.Info("audit complete",
		"root", root,
		"occurrences", len(occurrences),
		"panic_review_required", report.Counters.PanicReviewRequired,
		"unsafe_review_required", report.Counters.UnsafeReviewRequired,
	)

	return report, nil
}

func (w *workflow) locator(ctx context.Context, name string) (adapter.OccurrenceLocator, error) {
	if name == "" {
		name = adapter.NativeLocatorName
	}

	locator, ok := w.locators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocator, name)
	}

	if err := locator.Available(ctx); err != nil {
		slog.Error("Locator unavailable", "locator", name, "error", err)
		return nil, err
	}

	return locator, nil
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	exclude := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		exclude = append(exclude, re)
	}

	return exclude, nil
}

func (w *workflow) resolveRoot(ctx context.Context, root m.Path) (m.Path, error) {
	if root == "" {
		root = "."
	}

	abs, err := w.AbsPath(ctx, root)
	if err != nil {
		return "", fmt.Errorf("resolve repo root: %w", err)
	}

	info, err := w.FileInfo(ctx, abs)
	if err != nil {
		return "", fmt.Errorf("repo root: %w", err)
	}

	if !info.IsDir() {
		return "", fmt.Errorf("repo root %s is not a directory", abs)
	}

	return abs, nil
}

type fileGroup struct {
	file  m.File
	items []m.Occurrence
}

func groupByFile(occurrences []m.Occurrence) []fileGroup {
	var groups []fileGroup

	index := make(map[m.Path]int)

	for _, occurrence := range occurrences {
		i, ok := index[occurrence.File.FullPath]
		if !ok {
			i = len(groups)
			index[occurrence.File.FullPath] = i
			groups = append(groups, fileGroup{file: occurrence.File})
		}

		groups[i].items = append(groups[i].items, occurrence)
	}

	return groups
}

// classifyAll classifies files in parallel. Each file is independent, so
// workers only share the memo and fold partial sums into one aggregator.
func (w *workflow) classifyAll(ctx context.Context, occurrences []m.Occurrence, threads int) (*Aggregator, error) {
	memo := NewMemo()
	scopes := NewClassifier(w.SourceFSAdapter, memo, w.markers)
	total := NewAggregator()

	group, groupCtx := errgroup.WithContext(ctx)
	if threads > 0 {
		group.SetLimit(threads)
	}

	for _, fg := range groupByFile(occurrences) {
		fg := fg
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			lines := make([]int, 0, len(fg.items))
			for _, occurrence := range fg.items {
				lines = append(lines, occurrence.Line)
			}

			buckets := scopes.ClassifyFile(groupCtx, fg.file, lines)

			partial := NewAggregator()
			for _, occurrence := range fg.items {
				partial.Add(m.Classified{Occurrence: occurrence, Bucket: buckets[occurrence.Line]})
			}

			total.Merge(partial)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("classify occurrences: %w", err)
	}

	slog.Debug("classification memo", "entries", memo.Len())

	return total, nil
}

// Guard validates the baseline, obtains a report and compares the two.
// Configuration problems are returned before anything is scanned.
func (w *workflow) Guard(ctx context.Context, args GuardArgs) (m.GuardResult, error) {
	if args.Baseline == "" {
		return m.GuardResult{}, fmt.Errorf("%w: no --baseline given", m.ErrBaselineMissing)
	}

	policy, err := w.LoadPolicy(ctx, args.Baseline)
	if err != nil {
		slog.Error("Failed to load baseline", "path", args.Baseline, "error", err)
		return m.GuardResult{}, err
	}

	if err := ValidatePolicy(policy); err != nil {
		slog.Error("Invalid baseline", "path", args.Baseline, "error", err)
		return m.GuardResult{}, err
	}

	report, err := w.guardReport(ctx, args)
	if err != nil {
		return m.GuardResult{}, err
	}

	result := Evaluate(report, policy)

	err = w.DisplayGuardResult(ctx, result, controller.GuardDisplayOptions{
		PolicyDoc: args.PolicyDoc,
		Quiet:     args.Quiet,
	})
	if err != nil {
		return result, fmt.Errorf("display: %w", err)
	}

	if !result.Pass {
		slog.Warn("ratchet guard failed", "violations", result.Violations)
		return result, fmt.Errorf("%w: %d violation(s)", ErrGuardFailed, len(result.Violations))
	}

	return result, nil
}

func (w *workflow) guardReport(ctx context.Context, args GuardArgs) (m.Report, error) {
	if args.AuditJSON != "" {
		report, err := w.LoadReport(ctx, args.AuditJSON)
		if err != nil {
			return m.Report{}, fmt.Errorf("load audit: %w", err)
		}

		return report, nil
	}

	return w.audit(ctx, args.AuditArgs)
}

// Classify reports the bucket of explicit path:line locations.
func (w *workflow) Classify(ctx context.Context, args ClassifyArgs) ([]m.Classified, error) {
	root, err := w.resolveRoot(ctx, args.Root)
	if err != nil {
		return nil, err
	}

	scopes := NewClassifier(w.SourceFSAdapter, NewMemo(), w.markers)
	classified := make([]m.Classified, 0, len(args.Targets))

	for _, target := range args.Targets {
		occurrence, err := w.parseTarget(ctx, root, target)
		if err != nil {
			return nil, err
		}

		classified = append(classified, m.Classified{
			Occurrence: occurrence,
			Bucket:     scopes.Classify(ctx, occurrence),
		})
	}

	if err := w.DisplayClassifications(ctx, classified); err != nil {
		return nil, fmt.Errorf("display: %w", err)
	}

	return classified, nil
}

func (w *workflow) parseTarget(ctx context.Context, root m.Path, target string) (m.Occurrence, error) {
	sep := strings.LastIndex(target, ":")
	if sep <= 0 {
		return m.Occurrence{}, fmt.Errorf("%w: %q", ErrInvalidTarget, target)
	}

	line, err := strconv.Atoi(target[sep+1:])
	if err != nil || line < 1 {
		return m.Occurrence{}, fmt.Errorf("%w: %q has no positive line number", ErrInvalidTarget, target)
	}

	full := m.Path(target[:sep])
	if !filepath.IsAbs(string(full)) {
		full = w.JoinPath(ctx, string(root), string(full))
	}

	rel, err := w.RelPath(ctx, root, full)
	if err != nil {
		return m.Occurrence{}, fmt.Errorf("%w: %q: %w", ErrInvalidTarget, target, err)
	}

	return m.Occurrence{File: m.File{FullPath: full, ShortPath: rel}, Line: line}, nil
}
