package model

import "fmt"

// Kind represents the category of a risky construct.
type Kind string

const (
	// KindPanic represents abort calls such as panic!(...).
	KindPanic Kind = "panic"
	// KindUnsafe represents unsafe fns, blocks, impls, traits and extern blocks.
	KindUnsafe Kind = "unsafe"
)

// Kinds lists every kind in report order.
var Kinds = []Kind{KindPanic, KindUnsafe}

// Bucket is the scope classification of a single occurrence.
type Bucket string

const (
	// BucketPathTest marks files that are test code by path alone.
	BucketPathTest Bucket = "path_test"
	// BucketCfgTestModule marks lines inside a #[cfg(test)] block.
	BucketCfgTestModule Bucket = "cfg_test_module"
	// BucketInlineTest marks lines inside a #[test] function.
	BucketInlineTest Bucket = "inline_test"
	// BucketReviewRequired marks everything else. It is the fail-safe default.
	BucketReviewRequired Bucket = "review_required"
)

// Buckets lists every bucket in report order.
var Buckets = []Bucket{BucketReviewRequired, BucketCfgTestModule, BucketInlineTest, BucketPathTest}

// IsTest reports whether the bucket is confined to test-only scope.
func (b Bucket) IsTest() bool {
	return b != BucketReviewRequired && b != ""
}

// Occurrence is a single match of a risky construct.
type Occurrence struct {
	Kind Kind
	File File
	Line int
}

// String renders the occurrence as path:line.
func (o Occurrence) String() string {
	return fmt.Sprintf("%s:%d", o.File.ShortPath.Slash(), o.Line)
}

// Classified pairs an occurrence with its bucket.
type Classified struct {
	Occurrence
	Bucket Bucket
}
