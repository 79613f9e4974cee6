package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	m "scopeaudit.dev/pkg/scopeaudit/internal/model"
)

func source(lines ...string) []byte {
	return []byte(strings.Join(lines, "\n") + "\n")
}

func TestScopeTracker_ClassifyLines(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
		want map[int]m.Bucket
	}{
		{
			name: "top level and cfg test module",
			src: source(
				`panic!("top");`,
				`#[cfg(test)]`,
				`mod tests {`,
				`    panic!("in test");`,
				`}`,
			),
			want: map[int]m.Bucket{
				1: m.BucketReviewRequired,
				4: m.BucketCfgTestModule,
			},
		},
		{
			name: "same depth before and after the marked block",
			src: source(
				`fn before() {`,
				`    panic!("a");`,
				`}`,
				`#[cfg(test)]`,
				`mod tests {`,
				`    fn t() {`,
				`        panic!("b");`,
				`    }`,
				`}`,
				`fn after() {`,
				`    panic!("c");`,
				`}`,
			),
			want: map[int]m.Bucket{
				2:  m.BucketReviewRequired,
				7:  m.BucketCfgTestModule,
				11: m.BucketReviewRequired,
			},
		},
		{
			name: "test function with nested blocks",
			src: source(
				`fn helper() {}`,
				`#[test]`,
				`fn works() {`,
				`    let v = vec![1];`,
				`    if v.is_empty() {`,
				`        panic!("empty");`,
				`    }`,
				`}`,
				`fn other() { panic!("no"); }`,
			),
			want: map[int]m.Bucket{
				6: m.BucketInlineTest,
				9: m.BucketReviewRequired,
			},
		},
		{
			name: "cfg test wins over test attribute",
			src: source(
				`#[cfg(test)]`,
				`mod tests {`,
				`    #[test]`,
				`    fn t() {`,
				`        panic!("x");`,
				`    }`,
				`}`,
			),
			want: map[int]m.Bucket{5: m.BucketCfgTestModule},
		},
		{
			name: "marker on declaration does not leak",
			src: source(
				`#[cfg(test)]`,
				`mod tests;`,
				`fn real() {`,
				`    panic!("x");`,
				`}`,
			),
			want: map[int]m.Bucket{4: m.BucketReviewRequired},
		},
		{
			name: "marker on struct field does not leak",
			src: source(
				`struct S {`,
				`    #[cfg(test)]`,
				`    flags: u8,`,
				`}`,
				`fn g() {`,
				`    panic!("x");`,
				`}`,
			),
			want: map[int]m.Bucket{6: m.BucketReviewRequired},
		},
		{
			name: "marker does not outlive its block",
			src: source(
				`mod a {`,
				`    #[cfg(test)]`,
				`}`,
				`fn g() {`,
				`    panic!("x");`,
				`}`,
			),
			want: map[int]m.Bucket{5: m.BucketReviewRequired},
		},
		{
			name: "multi-line signature keeps the marker",
			src: source(
				`#[test]`,
				`fn long(`,
				`    a: u8,`,
				`    b: u8,`,
				`) {`,
				`    panic!("x");`,
				`}`,
			),
			want: map[int]m.Bucket{6: m.BucketInlineTest},
		},
		{
			name: "compact single-line forms",
			src: source(
				`#[test] fn f() { panic!("x") }`,
				`fn g() { panic!("y") }`,
				`#[cfg(test)]`,
				`mod t { fn h() { unsafe { core::hint::unreachable_unchecked() } } }`,
			),
			want: map[int]m.Bucket{
				1: m.BucketInlineTest,
				2: m.BucketReviewRequired,
				4: m.BucketCfgTestModule,
			},
		},
		{
			name: "braces in comments and literals are ignored",
			src: source(
				`#[cfg(test)]`,
				`mod tests {`,
				`    fn f() {`,
				`        let s = "}}";`,
				`        // }`,
				`        /* } /* nested } */ } */`,
				`        let r = r#"a "}" b"#;`,
				`        let c = '}';`,
				`        let l: &'static str = "{";`,
				`        panic!("x");`,
				`    }`,
				`}`,
				`fn g() {`,
				`    panic!("y");`,
				`}`,
			),
			want: map[int]m.Bucket{
				10: m.BucketCfgTestModule,
				14: m.BucketReviewRequired,
			},
		},
		{
			name: "markers inside multi-line strings are ignored",
			src: source(
				`fn f() {`,
				`    let s = "`,
				`}`,
				`#[test]`,
				`";`,
				`    { panic!("x"); }`,
				`}`,
			),
			want: map[int]m.Bucket{6: m.BucketReviewRequired},
		},
		{
			name: "cfg attr wrapper is not a marker",
			src: source(
				`#[cfg_attr(test, allow(dead_code))]`,
				`fn f() {`,
				`    panic!("x");`,
				`}`,
			),
			want: map[int]m.Bucket{3: m.BucketReviewRequired},
		},
		{
			name: "compound cfg conditions",
			src: source(
				`#[cfg(all(test, feature = "slow"))]`,
				`mod slow {`,
				`    fn f() { panic!("x"); }`,
				`}`,
				`#[cfg(not(test))]`,
				`mod prod {`,
				`    fn f() { panic!("y"); }`,
				`}`,
			),
			want: map[int]m.Bucket{
				3: m.BucketCfgTestModule,
				7: m.BucketReviewRequired,
			},
		},
		{
			name: "any-gated module still ships outside tests",
			src: source(
				`#[cfg(any(test, feature = "test-utils"))]`,
				`pub mod testutil {`,
				`    pub fn f() { panic!("shipped"); }`,
				`}`,
			),
			want: map[int]m.Bucket{3: m.BucketReviewRequired},
		},
		{
			name: "path-qualified test attributes",
			src: source(
				`#[tokio::test]`,
				`async fn a() {`,
				`    panic!("x");`,
				`}`,
				`#[rstest]`,
				`fn b() {`,
				`    panic!("y");`,
				`}`,
			),
			want: map[int]m.Bucket{
				3: m.BucketInlineTest,
				7: m.BucketInlineTest,
			},
		},
		{
			name: "inner cfg test marks the whole file",
			src: source(
				`#![cfg(test)]`,
				`fn f() {`,
				`    panic!("x");`,
				`}`,
			),
			want: map[int]m.Bucket{3: m.BucketCfgTestModule},
		},
		{
			name: "lines past the end are review required",
			src:  source(`#![cfg(test)]`),
			want: map[int]m.Bucket{40: m.BucketReviewRequired},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := make([]int, 0, len(tt.want))
			for line := range tt.want {
				lines = append(lines, line)
			}

			got := NewScopeTracker(DefaultMarkers).ClassifyLines(tt.src, lines)
			assert.Equal(t, tt.want, got)

			for line, bucket := range tt.want {
				assert.Equal(t, bucket, NewScopeTracker(DefaultMarkers).ClassifyLine(tt.src, line), "line %d", line)
			}
		})
	}
}

func TestScopeTracker_Idempotent(t *testing.T) {
	src := source(
		`#[cfg(test)]`,
		`mod tests {`,
		`    fn f() { panic!("x"); }`,
		`}`,
	)

	tracker := NewScopeTracker(DefaultMarkers)
	first := tracker.ClassifyLine(src, 3)
	second := tracker.ClassifyLine(src, 3)

	assert.Equal(t, m.BucketCfgTestModule, first)
	assert.Equal(t, first, second)
}

func TestScopeTracker_CRLF(t *testing.T) {
	src := []byte("#[cfg(test)]\r\nmod tests {\r\n    panic!(\"x\");\r\n}\r\n")

	assert.Equal(t, m.BucketCfgTestModule, NewScopeTracker(DefaultMarkers).ClassifyLine(src, 3))
}

func TestMarkerSet_Match(t *testing.T) {
	tests := []struct {
		line string
		want lineMarks
	}{
		{`#[cfg(test)]`, lineMarks{cfgTest: true}},
		{`  #[cfg( all(test, doc) )]`, lineMarks{cfgTest: true}},
		{`#[cfg(any(test, feature = "test-utils"))]`, lineMarks{}},
		{`#[cfg(testing)]`, lineMarks{}},
		{`#![cfg(test)]`, lineMarks{innerCfgTest: true}},
		{`#[test]`, lineMarks{attrTest: true}},
		{`#[tokio::test(flavor = "multi_thread")]`, lineMarks{attrTest: true}},
		{`#[cfg_attr(test, derive(Debug))]`, lineMarks{}},
		{`// #[test]`, lineMarks{}},
		{`let x = 1; #[test]`, lineMarks{}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultMarkers.match(tt.line))
		})
	}
}
