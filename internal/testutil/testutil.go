// Package testutil provides shared test helpers for setting up site
// directories.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/ansuz/internal/storage"
)

// TestSite creates a temporary site root with an empty posts directory
// and returns it together with a storage.Provider rooted there.
func TestSite(t *testing.T) (string, storage.Provider) {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "posts"), 0o755); err != nil {
		t.Fatal(err)
	}
	store, err := storage.NewFS(root)
	if err != nil {
		t.Fatal(err)
	}
	return root, store
}

// WritePost writes a post file into the site's posts directory.
func WritePost(t *testing.T, root, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, "posts", name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
