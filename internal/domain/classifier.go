package domain

import (
	"context"
	"log/slog"

	"scopeaudit.dev/pkg/scopeaudit/internal/adapter"
	m "scopeaudit.dev/pkg/scopeaudit/internal/model"
)

// Classifier assigns a scope bucket to occurrences. It never fails: anything
// it cannot read is classified review_required.
type Classifier interface {
	// Classify returns the bucket of a single occurrence.
	Classify(ctx context.Context, occurrence m.Occurrence) m.Bucket
	// ClassifyFile returns the buckets of several lines of one file, scanning
	// the file at most once.
	ClassifyFile(ctx context.Context, file m.File, lines []int) map[int]m.Bucket
}

type classifier struct {
	adapter.SourceFSAdapter
	memo    *Memo
	markers MarkerSet
}

// NewClassifier creates a Classifier reading through fsAdapter and caching in
// memo. A nil memo gets a private one.
func NewClassifier(fsAdapter adapter.SourceFSAdapter, memo *Memo, markers MarkerSet) Classifier {
	if memo == nil {
		memo = NewMemo()
	}

	return &classifier{
		SourceFSAdapter: fsAdapter,
		memo:            memo,
		markers:         markers,
	}
}

func (c *classifier) Classify(ctx context.Context, occurrence m.Occurrence) m.Bucket {
	return c.ClassifyFile(ctx, occurrence.File, []int{occurrence.Line})[occurrence.Line]
}

func (c *classifier) ClassifyFile(ctx context.Context, file m.File, lines []int) map[int]m.Bucket {
	result := make(map[int]m.Bucket, len(lines))

	if IsTestPath(shortPath(file)) {
		for _, line := range lines {
			result[line] = m.BucketPathTest
		}

		return result
	}

	var missing []int

	for _, line := range lines {
		if bucket, ok := c.memo.Get(file.FullPath, line); ok {
			result[line] = bucket
			continue
		}

		missing = append(missing, line)
	}

	if len(missing) == 0 {
		return result
	}

	buckets := c.scan(ctx, file, missing)
	for _, line := range missing {
		c.memo.Put(file.FullPath, line, buckets[line])
		result[line] = buckets[line]
	}

	slog.Debug("classified file", "path", file.ShortPath, "lines", len(lines), "scanned", len(missing))

	return result
}

func (c *classifier) scan(ctx context.Context, file m.File, lines []int) map[int]m.Bucket {
	src, err := c.ReadFile(ctx, file.FullPath)
	if err != nil {
		slog.Warn("cannot read source, classifying as review_required", "path", file.FullPath, "error", err)

		buckets := make(map[int]m.Bucket, len(lines))
		for _, line := range lines {
			buckets[line] = m.BucketReviewRequired
		}

		return buckets
	}

	return NewScopeTracker(c.markers).ClassifyLines(src, lines)
}

func shortPath(file m.File) m.Path {
	if file.ShortPath != "" {
		return file.ShortPath
	}

	return file.FullPath
}
