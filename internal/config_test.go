package internal

import (
	"testing"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestDefaultConfig_Conventions(t *testing.T) {
	cfg := NewDefaultConfig()
	if cfg.Site.PostsDir != "posts" {
		t.Errorf("posts_dir = %q, want %q", cfg.Site.PostsDir, "posts")
	}
	if cfg.Site.OutputDir != "public" {
		t.Errorf("output_dir = %q, want %q", cfg.Site.OutputDir, "public")
	}
	if !cfg.Render.Trusted {
		t.Error("trusted rendering should be the default")
	}
}

func TestHTTPConfig_InvalidPort(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.App.HTTP.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("port 0 should fail validation")
	}
	cfg.App.HTTP.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Fatal("port 70000 should fail validation")
	}
}

func TestSiteConfig_MissingDirs(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Site.PostsDir = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty posts_dir should fail validation")
	}

	cfg = NewDefaultConfig()
	cfg.Site.OutputDir = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty output_dir should fail validation")
	}
}

func TestSiteConfig_LayoutsDirOptional(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Site.LayoutsDir = ""
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty layouts_dir should be allowed: %v", err)
	}
}
