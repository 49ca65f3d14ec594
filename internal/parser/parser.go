// Package parser extracts the date/slug from post file names and the
// frontmatter block from post content.
package parser

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/starford/ansuz/internal/apperr"
	"github.com/starford/ansuz/internal/models"
)

// ParseFileName derives FileNameInfo from a post file name of the shape
// YYYY-MM-DD-slug.md. The slug may itself contain dashes. Returns false
// when the name does not fit the shape; such files are not posts and
// the caller skips them. Month and day are not range-checked.
func ParseFileName(name string) (models.FileNameInfo, bool) {
	raw := strings.TrimSuffix(name, ".md")

	parts := strings.SplitN(raw, "-", 4)
	if len(parts) < 4 {
		return models.FileNameInfo{}, false
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return models.FileNameInfo{}, false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return models.FileNameInfo{}, false
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return models.FileNameInfo{}, false
	}

	return models.FileNameInfo{
		RawName: raw,
		Year:    year,
		Month:   month,
		Day:     day,
		Slug:    parts[3],
	}, true
}

// ExtractFrontmatter splits a leading --- delimited metadata block from
// src and parses it into a Frontmatter. The returned body has the block
// removed so downstream rendering never sees it. A missing or
// unterminated block yields apperr.ErrNoFrontmatter.
//
// The block is parsed line by line as flat key: value pairs. Only
// layout, title, author, and categories are recognized; other keys and
// lines without a colon are ignored. No multi-line values, no nesting,
// no escaping.
func ExtractFrontmatter(src []byte) (models.Frontmatter, []byte, error) {
	const delim = "---"

	trimmed := bytes.TrimLeft(src, "\n\r")
	if !bytes.HasPrefix(trimmed, []byte(delim)) {
		return models.Frontmatter{}, nil, apperr.ErrNoFrontmatter
	}

	rest := trimmed[len(delim):]
	idx := bytes.Index(rest, []byte("\n"+delim))
	if idx < 0 {
		return models.Frontmatter{}, nil, apperr.ErrNoFrontmatter
	}

	block := string(rest[:idx])
	afterDelim := rest[idx+1+len(delim):]
	body := bytes.TrimLeft(afterDelim, "\n\r")

	return parseBlock(block), body, nil
}

// parseBlock maps the recognized keys of a metadata block onto a
// Frontmatter value.
func parseBlock(block string) models.Frontmatter {
	var fm models.Frontmatter
	for _, line := range strings.Split(block, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case "layout":
			fm.Layout = value
		case "title":
			fm.Title = unquote(value)
		case "author":
			fm.Author = unquote(value)
		case "categories":
			fm.Categories = splitCategories(value)
		}
	}
	return fm
}

// unquote strips one layer of surrounding double quotes, if present.
func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}

// splitCategories parses a bracketed, comma-separated list such as
// [a, b, c]. Every comma splits; a category name containing a literal
// comma cannot be represented in this format.
func splitCategories(s string) []string {
	if len(s) >= 2 && strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		s = s[1 : len(s)-1]
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}
