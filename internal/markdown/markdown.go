// Package markdown wraps the goldmark engine behind the narrow
// rendering surface the build needs, so the engine can be swapped
// without touching pipeline logic.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// Options controls how post bodies are rendered.
//
// Trusted disables every safety guard a public-input renderer would
// need: raw HTML blocks and inline HTML pass through verbatim, any
// image source and any link protocol is allowed, and no tag filtering
// is applied. Post authors own the site, so this is the default; the
// flag exists so the posture is visible and overridable rather than
// hardcoded.
type Options struct {
	Trusted bool
}

// Pipeline renders Markdown post bodies to HTML. It is stateless and
// safe to reuse across posts.
type Pipeline struct {
	md goldmark.Markdown
}

// New builds a Pipeline with GitHub-flavored-markdown extensions and
// the rendering posture given by opts.
func New(opts Options) *Pipeline {
	var rendererOptions []renderer.Option
	if opts.Trusted {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engineOptions := []goldmark.Option{
		goldmark.WithExtensions(extension.GFM),
	}
	if len(rendererOptions) > 0 {
		engineOptions = append(engineOptions, goldmark.WithRendererOptions(rendererOptions...))
	}

	return &Pipeline{md: goldmark.New(engineOptions...)}
}

// Render converts a Markdown body (frontmatter already removed) to HTML.
func (p *Pipeline) Render(body []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := p.md.Convert(body, &buf); err != nil {
		return nil, fmt.Errorf("markdown: render: %w", err)
	}
	return buf.Bytes(), nil
}
