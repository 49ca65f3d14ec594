package markdown

import (
	"strings"
	"testing"
)

func TestRender_Heading(t *testing.T) {
	p := New(Options{Trusted: true})
	out, err := p.Render([]byte("# Hello\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "<h1>Hello</h1>") {
		t.Errorf("output = %q, want an h1", out)
	}
}

func TestRender_GFMTable(t *testing.T) {
	p := New(Options{Trusted: true})
	out, err := p.Render([]byte("| a | b |\n|---|---|\n| 1 | 2 |\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "<table>") {
		t.Errorf("output = %q, want a table", out)
	}
}

func TestRender_TrustedRawHTMLPassthrough(t *testing.T) {
	p := New(Options{Trusted: true})
	out, err := p.Render([]byte("text\n\n<div class=\"x\"><script>alert(1)</script></div>\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "<script>alert(1)</script>") {
		t.Errorf("output = %q, want raw HTML passed through", out)
	}
}

func TestRender_UntrustedDropsRawHTML(t *testing.T) {
	p := New(Options{Trusted: false})
	out, err := p.Render([]byte("<script>alert(1)</script>\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(out), "<script>") {
		t.Errorf("output = %q, raw HTML must not pass through untrusted", out)
	}
}

func TestRender_DangerousProtocolTrusted(t *testing.T) {
	p := New(Options{Trusted: true})
	out, err := p.Render([]byte("[x](javascript:alert(1))\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), `href="javascript:alert(1)"`) {
		t.Errorf("output = %q, want the link kept", out)
	}
}
