package domain

import (
	"sort"
	"sync"
	"time"

	m "scopeaudit.dev/pkg/scopeaudit/internal/model"
)

type fileBucketKey struct {
	path   string
	bucket m.Bucket
}

// Aggregator tallies classified occurrences by kind and bucket and keeps a
// per-file breakdown. It is safe for concurrent use.
type Aggregator struct {
	mu       sync.Mutex
	counters m.Counters
	perFile  map[m.Kind]map[fileBucketKey]int
}

// NewAggregator returns an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{perFile: make(map[m.Kind]map[fileBucketKey]int)}
}

// Add records one classified occurrence.
func (a *Aggregator) Add(classified m.Classified) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.add(classified.Kind, fileBucketKey{path: classified.File.ShortPath.Slash(), bucket: classified.Bucket}, 1)
}

func (a *Aggregator) add(kind m.Kind, key fileBucketKey, n int) {
	a.counters.Add(kind, key.bucket, n)

	byFile, ok := a.perFile[kind]
	if !ok {
		byFile = make(map[fileBucketKey]int)
		a.perFile[kind] = byFile
	}

	byFile[key] += n
}

// Merge folds the partial sums of other into a.
func (a *Aggregator) Merge(other *Aggregator) {
	if other == nil || other == a {
		return
	}

	other.mu.Lock()
	defer other.mu.Unlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	for kind, byFile := range other.perFile {
		for key, n := range byFile {
			a.add(kind, key, n)
		}
	}
}

// Counters returns a snapshot of the aggregate counters.
func (a *Aggregator) Counters() m.Counters {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.counters
}

// Report builds the audit report. Breakdown rows are sorted by path and then
// bucket so the output is identical for any input order.
func (a *Aggregator) Report(root string, generatedAt time.Time) m.Report {
	a.mu.Lock()
	defer a.mu.Unlock()

	return m.Report{
		GeneratedAt:  generatedAt.UTC().Truncate(time.Second),
		RepoRoot:     root,
		Counters:     a.counters,
		PanicByFile:  a.breakdown(m.KindPanic),
		UnsafeByFile: a.breakdown(m.KindUnsafe),
	}
}

func (a *Aggregator) breakdown(kind m.Kind) []m.FileCount {
	rows := make([]m.FileCount, 0, len(a.perFile[kind]))
	for key, count := range a.perFile[kind] {
		rows = append(rows, m.FileCount{Path: key.path, Bucket: key.bucket, Count: count})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Path != rows[j].Path {
			return rows[i].Path < rows[j].Path
		}

		return rows[i].Bucket < rows[j].Bucket
	})

	return rows
}
