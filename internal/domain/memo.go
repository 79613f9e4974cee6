package domain

import (
	"sync"

	m "scopeaudit.dev/pkg/scopeaudit/internal/model"
)

type memoKey struct {
	path m.Path
	line int
}

// Memo caches buckets by (absolute path, line) for the lifetime of one run.
// Entries are never invalidated: files are assumed not to change mid-audit.
// It is safe for concurrent use.
type Memo struct {
	mu      sync.RWMutex
	entries map[memoKey]m.Bucket
}

// NewMemo returns an empty Memo.
func NewMemo() *Memo {
	return &Memo{entries: make(map[memoKey]m.Bucket)}
}

// Get returns the cached bucket for path and line.
func (mm *Memo) Get(path m.Path, line int) (m.Bucket, bool) {
	mm.mu.RLock()
	defer mm.mu.RUnlock()

	bucket, ok := mm.entries[memoKey{path: path, line: line}]

	return bucket, ok
}

// Put stores bucket for path and line.
func (mm *Memo) Put(path m.Path, line int, bucket m.Bucket) {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	mm.entries[memoKey{path: path, line: line}] = bucket
}

// Len returns the number of cached entries.
func (mm *Memo) Len() int {
	mm.mu.RLock()
	defer mm.mu.RUnlock()

	return len(mm.entries)
}
