package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestFS(t *testing.T) (*FS, string) {
	t.Helper()
	root := t.TempDir()
	f, err := NewFS(root)
	if err != nil {
		t.Fatal(err)
	}
	return f, root
}

func TestNewFS_MissingRoot(t *testing.T) {
	if _, err := NewFS(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestWriteAndRead(t *testing.T) {
	f, _ := newTestFS(t)
	if err := f.Write("public/index.html", []byte("<html>")); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := f.Read("public/index.html")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "<html>" {
		t.Errorf("data = %q, want %q", data, "<html>")
	}
}

func TestWrite_Overwrite(t *testing.T) {
	f, _ := newTestFS(t)
	if err := f.Write("a.html", []byte("one")); err != nil {
		t.Fatal(err)
	}
	if err := f.Write("a.html", []byte("two")); err != nil {
		t.Fatal(err)
	}
	data, err := f.Read("a.html")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "two" {
		t.Errorf("data = %q, want %q", data, "two")
	}
}

func TestWrite_LeavesNoTempFiles(t *testing.T) {
	f, root := newTestFS(t)
	if err := f.Write("public/a.html", []byte("x")); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(filepath.Join(root, "public"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "a.html" {
		t.Errorf("unexpected directory contents: %v", entries)
	}
}

func TestReadDir_SkipsSubdirectories(t *testing.T) {
	f, root := newTestFS(t)
	if err := os.MkdirAll(filepath.Join(root, "posts", "drafts"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "posts", "a.md"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	names, err := f.ReadDir("posts")
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 || names[0] != "a.md" {
		t.Errorf("names = %v, want [a.md]", names)
	}
}

func TestSafePath_RejectsEscape(t *testing.T) {
	f, _ := newTestFS(t)
	if _, err := f.Read("../outside"); err == nil {
		t.Error("expected error for path escaping root")
	}
	if err := f.Write("/abs/path", []byte("x")); err == nil {
		t.Error("expected error for absolute path")
	}
}
