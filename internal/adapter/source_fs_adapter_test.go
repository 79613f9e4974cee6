package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	m "scopeaudit.dev/pkg/scopeaudit/internal/model"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("visits nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeFile(t, root, "src/lib.rs", "pub fn f() {}\n")
		writeFile(t, root, "src/nested/mod.rs", "pub mod x;\n")

		var visited []string
		err := adapter.Walk(context.Background(), m.Path(root), func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if !info.IsDir() {
				visited = append(visited, path)
			}

			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		if len(visited) != 2 {
			t.Fatalf("Walk() visited %v, want 2 files", visited)
		}
	})

	t.Run("stops when context is cancelled", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := adapter.Walk(ctx, m.Path(t.TempDir()), func(string, os.FileInfo, error) error {
			t.Fatal("callback must not run after cancellation")
			return nil
		})
		if err == nil {
			t.Fatal("Walk() expected context error")
		}
	})
}

func TestLocalSourceFSAdapter_Paths(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	ctx := context.Background()
	root := t.TempDir()

	joined := adapter.JoinPath(ctx, root, "src", "lib.rs")
	if joined != m.Path(filepath.Join(root, "src", "lib.rs")) {
		t.Fatalf("JoinPath() = %s", joined)
	}

	rel, err := adapter.RelPath(ctx, m.Path(root), joined)
	if err != nil || rel.Slash() != "src/lib.rs" {
		t.Fatalf("RelPath() = %s, %v", rel, err)
	}

	abs, err := adapter.AbsPath(ctx, ".")
	if err != nil || !filepath.IsAbs(string(abs)) {
		t.Fatalf("AbsPath() = %s, %v", abs, err)
	}

	info, err := adapter.FileInfo(ctx, m.Path(root))
	if err != nil || !info.IsDir() {
		t.Fatalf("FileInfo() = %v, %v", info, err)
	}

	if _, err := adapter.ReadFile(ctx, joined); err == nil {
		t.Fatal("ReadFile() expected error for missing file")
	}
}
