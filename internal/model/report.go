package model

import "time"

// Counters holds aggregate counts by kind and bucket.
type Counters struct {
	PanicTotal          int `json:"panic_total"`
	PanicReviewRequired int `json:"panic_review_required"`
	PanicCfgTestModule  int `json:"panic_cfg_test_module"`
	PanicInlineTest     int `json:"panic_inline_test"`
	PanicPathTest       int `json:"panic_path_test"`

	UnsafeTotal          int `json:"unsafe_total"`
	UnsafeReviewRequired int `json:"unsafe_review_required"`
	UnsafeCfgTestModule  int `json:"unsafe_cfg_test_module"`
	UnsafeInlineTest     int `json:"unsafe_inline_test"`
	UnsafePathTest       int `json:"unsafe_path_test"`
}

// Add increments the total and the bucket counter for kind by n.
func (c *Counters) Add(kind Kind, bucket Bucket, n int) {
	total, byBucket := c.fields(kind)
	if total == nil {
		return
	}

	*total += n

	if field, ok := byBucket[bucket]; ok {
		*field += n
	}
}

// Total returns the total count for kind.
func (c Counters) Total(kind Kind) int {
	total, _ := c.fields(kind)
	if total == nil {
		return 0
	}

	return *total
}

// Get returns the count for kind in bucket.
func (c Counters) Get(kind Kind, bucket Bucket) int {
	_, byBucket := c.fields(kind)
	if field, ok := byBucket[bucket]; ok {
		return *field
	}

	return 0
}

func (c *Counters) fields(kind Kind) (*int, map[Bucket]*int) {
	switch kind {
	case KindPanic:
		return &c.PanicTotal, map[Bucket]*int{
			BucketReviewRequired: &c.PanicReviewRequired,
			BucketCfgTestModule:  &c.PanicCfgTestModule,
			BucketInlineTest:     &c.PanicInlineTest,
			BucketPathTest:       &c.PanicPathTest,
		}
	case KindUnsafe:
		return &c.UnsafeTotal, map[Bucket]*int{
			BucketReviewRequired: &c.UnsafeReviewRequired,
			BucketCfgTestModule:  &c.UnsafeCfgTestModule,
			BucketInlineTest:     &c.UnsafeInlineTest,
			BucketPathTest:       &c.UnsafePathTest,
		}
	}

	return nil, nil
}

// FileCount is one row of the per-file breakdown.
type FileCount struct {
	Path   string `json:"path"`
	Bucket Bucket `json:"bucket"`
	Count  int    `json:"count"`
}

// Report is the audit artifact. It is created fresh per run and never mutated
// after it has been written.
type Report struct {
	GeneratedAt  time.Time   `json:"generated_at"`
	RepoRoot     string      `json:"repo_root"`
	Counters     Counters    `json:"counters"`
	PanicByFile  []FileCount `json:"panic_by_file"`
	UnsafeByFile []FileCount `json:"unsafe_by_file"`
}

// ByFile returns the per-file breakdown for kind.
func (r Report) ByFile(kind Kind) []FileCount {
	if kind == KindUnsafe {
		return r.UnsafeByFile
	}

	return r.PanicByFile
}
