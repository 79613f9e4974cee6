package adapter

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"strings"

	m "scopeaudit.dev/pkg/scopeaudit/internal/model"
)

// ErrToolMissing is returned when an external tool a locator needs is not installed.
var ErrToolMissing = errors.New("required tool not found")

// skippedDirs are never descended into.
var skippedDirs = map[string]struct{}{
	".git":         {},
	"target":       {},
	"node_modules": {},
}

// LocateRequest describes one occurrence search.
type LocateRequest struct {
	// Root is the absolute repository root.
	Root m.Path
	// Patterns maps each kind to a regular expression valid for both RE2 and ripgrep.
	Patterns map[m.Kind]string
	// Exclude drops files whose root-relative slash path matches any expression.
	Exclude []*regexp.Regexp
	// Threads bounds concurrent file reads. Zero means unbounded.
	Threads int
}

// OccurrenceLocator finds file:line matches of the risky constructs.
type OccurrenceLocator interface {
	// Name identifies the locator on the command line.
	Name() string
	// Available reports ErrToolMissing when the locator cannot run here.
	Available(ctx context.Context) error
	// Locate returns every match sorted by path, line and kind.
	Locate(ctx context.Context, req LocateRequest) ([]m.Occurrence, error)
}

func isExcluded(rel m.Path, exclude []*regexp.Regexp) bool {
	slashed := rel.Slash()
	for _, re := range exclude {
		if re.MatchString(slashed) {
			return true
		}
	}

	return false
}

// isCommentLine reports whether a matched line is a line or doc comment.
func isCommentLine(text string) bool {
	trimmed := strings.TrimSpace(text)
	return strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "/*")
}

func sortOccurrences(occurrences []m.Occurrence) {
	sort.Slice(occurrences, func(i, j int) bool {
		a, b := occurrences[i], occurrences[j]
		if a.File.ShortPath != b.File.ShortPath {
			return a.File.ShortPath < b.File.ShortPath
		}

		if a.Line != b.Line {
			return a.Line < b.Line
		}

		return a.Kind < b.Kind
	})
}
