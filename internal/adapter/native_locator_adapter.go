package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	m "scopeaudit.dev/pkg/scopeaudit/internal/model"
)

// NativeLocatorName is the --locator value of the built-in locator.
const NativeLocatorName = "native"

// NativeLocator walks the tree and matches patterns in-process. It needs no
// external tools.
type NativeLocator struct {
	fs SourceFSAdapter
}

// NewNativeLocator constructs a NativeLocator reading through fs.
func NewNativeLocator(fs SourceFSAdapter) *NativeLocator {
	return &NativeLocator{fs: fs}
}

// Name implements OccurrenceLocator.
func (l *NativeLocator) Name() string {
	return NativeLocatorName
}

// Available implements OccurrenceLocator. The native locator always runs.
func (l *NativeLocator) Available(_ context.Context) error {
	return nil
}

type compiledPattern struct {
	kind m.Kind
	re   *regexp.Regexp
}

// Locate implements OccurrenceLocator.
func (l *NativeLocator) Locate(ctx context.Context, req LocateRequest) ([]m.Occurrence, error) {
	patterns, err := compilePatterns(req.Patterns)
	if err != nil {
		return nil, err
	}

	files, err := l.collectFiles(ctx, req)
	if err != nil {
		return nil, err
	}

	var (
		mu          sync.Mutex
		occurrences []m.Occurrence
	)

	group, groupCtx := errgroup.WithContext(ctx)
	if req.Threads > 0 {
		group.SetLimit(req.Threads)
	}

	for _, file := range files {
		file := file
		group.Go(func() error {
			found, err := l.scanFile(groupCtx, file, patterns)
			if err != nil {
				return err
			}

			mu.Lock()
			occurrences = append(occurrences, found...)
			mu.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	sortOccurrences(occurrences)
	slog.Debug("native locator finished", "root", req.Root, "files", len(files), "occurrences", len(occurrences))

	return occurrences, nil
}

func compilePatterns(patterns map[m.Kind]string) ([]compiledPattern, error) {
	compiled := make([]compiledPattern, 0, len(patterns))

	for _, kind := range m.Kinds {
		expr, ok := patterns[kind]
		if !ok {
			continue
		}

		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("compile %s pattern: %w", kind, err)
		}

		compiled = append(compiled, compiledPattern{kind: kind, re: re})
	}

	return compiled, nil
}

func (l *NativeLocator) collectFiles(ctx context.Context, req LocateRequest) ([]m.File, error) {
	var files []m.File

	err := l.fs.Walk(ctx, req.Root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if _, skip := skippedDirs[info.Name()]; skip && path != string(req.Root) {
				return filepath.SkipDir
			}

			return nil
		}

		if filepath.Ext(path) != ".rs" {
			return nil
		}

		rel, err := l.fs.RelPath(ctx, req.Root, m.Path(path))
		if err != nil {
			return err
		}

		if isExcluded(rel, req.Exclude) {
			slog.Debug("excluded file", "path", rel)
			return nil
		}

		files = append(files, m.File{FullPath: m.Path(path), ShortPath: rel})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", req.Root, err)
	}

	return files, nil
}

func (l *NativeLocator) scanFile(ctx context.Context, file m.File, patterns []compiledPattern) ([]m.Occurrence, error) {
	content, err := l.fs.ReadFile(ctx, file.FullPath)
	if err != nil {
		// Unreadable files cannot be located; the scan goes on without them.
		slog.Warn("skipping unreadable file", "path", file.FullPath, "error", err)
		return nil, nil
	}

	var found []m.Occurrence

	for i, line := range strings.Split(string(content), "\n") {
		if isCommentLine(line) {
			continue
		}

		for _, pattern := range patterns {
			if pattern.re.MatchString(line) {
				found = append(found, m.Occurrence{Kind: pattern.kind, File: file, Line: i + 1})
			}
		}
	}

	return found, nil
}
