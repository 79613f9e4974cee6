package domain

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scopeaudit.dev/pkg/scopeaudit/internal/adapter"
	m "scopeaudit.dev/pkg/scopeaudit/internal/model"
)

func writeSource(t *testing.T, root, rel string, lines ...string) m.File {
	t.Helper()

	full := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, source(lines...), 0o644))

	return m.File{FullPath: m.Path(full), ShortPath: m.Path(rel)}
}

func TestClassifier_ClassifyFile(t *testing.T) {
	root := t.TempDir()
	file := writeSource(t, root, "src/a.rs",
		`panic!("top");`,
		``,
		`#[cfg(test)]`,
		`mod tests {`,
		`    panic!("in test");`,
		`}`,
	)

	classifier := NewClassifier(adapter.NewLocalSourceFSAdapter(), nil, DefaultMarkers)
	got := classifier.ClassifyFile(context.Background(), file, []int{1, 5})

	assert.Equal(t, map[int]m.Bucket{
		1: m.BucketReviewRequired,
		5: m.BucketCfgTestModule,
	}, got)
}

func TestClassifier_PathRuleSkipsScanning(t *testing.T) {
	// The file does not exist: a path-designated file must never be read.
	file := m.File{FullPath: "/nowhere/tests/it.rs", ShortPath: "tests/it.rs"}

	classifier := NewClassifier(adapter.NewLocalSourceFSAdapter(), nil, DefaultMarkers)
	occurrence := m.Occurrence{Kind: m.KindPanic, File: file, Line: 3}

	assert.Equal(t, m.BucketPathTest, classifier.Classify(context.Background(), occurrence))
}

func TestClassifier_UnreadableFileIsReviewRequired(t *testing.T) {
	file := m.File{FullPath: m.Path(filepath.Join(t.TempDir(), "missing.rs")), ShortPath: "src/missing.rs"}

	classifier := NewClassifier(adapter.NewLocalSourceFSAdapter(), nil, DefaultMarkers)
	got := classifier.ClassifyFile(context.Background(), file, []int{1, 2})

	assert.Equal(t, map[int]m.Bucket{1: m.BucketReviewRequired, 2: m.BucketReviewRequired}, got)
}

func TestClassifier_UsesMemo(t *testing.T) {
	root := t.TempDir()
	file := writeSource(t, root, "src/lib.rs", `fn f() { panic!("x"); }`)

	memo := NewMemo()
	classifier := NewClassifier(adapter.NewLocalSourceFSAdapter(), memo, DefaultMarkers)

	occurrence := m.Occurrence{Kind: m.KindPanic, File: file, Line: 1}
	first := classifier.Classify(context.Background(), occurrence)
	require.Equal(t, m.BucketReviewRequired, first)
	require.Equal(t, 1, memo.Len())

	// A memo hit wins over the file contents for the rest of the run.
	require.NoError(t, os.Remove(string(file.FullPath)))
	assert.Equal(t, first, classifier.Classify(context.Background(), occurrence))
}

func TestMemo_ConcurrentAccess(t *testing.T) {
	memo := NewMemo()

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)

		go func(line int) {
			defer wg.Done()

			memo.Put("a.rs", line, m.BucketInlineTest)
			_, _ = memo.Get("a.rs", line)
		}(i)
	}

	wg.Wait()

	assert.Equal(t, 20, memo.Len())

	bucket, ok := memo.Get("a.rs", 7)
	assert.True(t, ok)
	assert.Equal(t, m.BucketInlineTest, bucket)
}
