// Package internal provides the main application initialization and
// the build orchestration.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/starford/ansuz/internal/layouts"
	"github.com/starford/ansuz/internal/markdown"
	"github.com/starford/ansuz/internal/parser"
	"github.com/starford/ansuz/internal/render"
	"github.com/starford/ansuz/internal/storage"
)

// Run builds the site once with the given options.
//
// Files whose names do not carry the markdown extension or do not fit
// the YYYY-MM-DD-slug shape are silently skipped. Everything else is
// fatal on first failure: an unreadable posts directory or post file,
// a missing frontmatter block, a render failure, or a failed write
// aborts the whole build with no partial-success mode.
func Run(ctx context.Context, opts ...Option) error {
	app, logger, err := setup(opts)
	if err != nil {
		return err
	}
	cfg := app.config

	logger.Info("Configuration loaded",
		slog.String("posts_dir", cfg.Site.PostsDir),
		slog.String("output_dir", cfg.Site.OutputDir),
		slog.Bool("trusted_render", cfg.Render.Trusted),
		slog.String("log_level", cfg.App.LogLevel.String()))

	store, err := storage.NewFS(app.root)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	return build(ctx, cfg, store, logger)
}

// setup applies options and initializes the structured JSON logger.
func setup(opts []Option) (*application, *slog.Logger, error) {
	app := &application{root: "."}
	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return nil, nil, fmt.Errorf("config is required")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: app.config.App.LogLevel,
	}))
	slog.SetDefault(logger)
	return app, logger, nil
}

// build runs the full pipeline: one pass over the posts directory in
// directory order, then the index page.
func build(ctx context.Context, cfg *Config, store storage.Provider, logger *slog.Logger) error {
	postLayout, err := loadLayout(store, cfg.Site.LayoutsDir, "post.html", layouts.Post())
	if err != nil {
		return err
	}
	indexLayout, err := loadLayout(store, cfg.Site.LayoutsDir, "index.html", layouts.Index())
	if err != nil {
		return err
	}

	pipeline := markdown.New(markdown.Options{Trusted: cfg.Render.Trusted})
	siteIndex := render.NewSiteIndex()

	names, err := store.ReadDir(cfg.Site.PostsDir)
	if err != nil {
		return fmt.Errorf("list posts: %w", err)
	}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		if filepath.Ext(name) != ".md" {
			continue
		}
		info, ok := parser.ParseFileName(name)
		if !ok {
			logger.Debug("skipping file without post name shape", slog.String("file", name))
			continue
		}

		src, err := store.Read(filepath.Join(cfg.Site.PostsDir, name))
		if err != nil {
			return fmt.Errorf("read post %s: %w", name, err)
		}

		fm, body, err := parser.ExtractFrontmatter(src)
		if err != nil {
			return fmt.Errorf("post %s: %w", name, err)
		}

		bodyHTML, err := pipeline.Render(body)
		if err != nil {
			return fmt.Errorf("render post %s: %w", name, err)
		}

		page, entry := render.BuildPostPage(postLayout, cfg.Site.Title, info, fm, bodyHTML)

		out := filepath.Join(cfg.Site.OutputDir, info.RawName+".html")
		logger.Info("writing post page", slog.String("file", info.RawName+".html"))
		if err := store.Write(out, page); err != nil {
			return fmt.Errorf("write post %s: %w", name, err)
		}

		siteIndex.Add(entry, fm.Categories)
	}

	logger.Info("writing index page", slog.String("file", "index.html"))
	if err := store.Write(filepath.Join(cfg.Site.OutputDir, "index.html"), siteIndex.Render(indexLayout)); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}

// loadLayout reads name from the configured layouts directory, falling
// back to the embedded default when the directory is unset or the file
// does not exist.
func loadLayout(store storage.Provider, dir, name, fallback string) (string, error) {
	if dir == "" {
		return fallback, nil
	}
	data, err := store.Read(filepath.Join(dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fallback, nil
		}
		return "", fmt.Errorf("load layout %s: %w", name, err)
	}
	return string(data), nil
}
