// Package models defines the domain types for Ansuz.
package models

// Frontmatter holds the metadata block parsed from the top of a post.
// Absent fields stay at their zero values; unknown keys are dropped
// during parsing.
type Frontmatter struct {
	Layout     string
	Title      string
	Author     string
	Categories []string
}

// FileNameInfo is the date and slug encoded in a post's file name,
// e.g. 2021-03-02-hello-world.md. RawName is the file name without
// the .md extension and doubles as the output page stem.
type FileNameInfo struct {
	RawName string
	Year    int
	Month   int
	Day     int
	Slug    string
}

// PostIndexEntry summarizes one rendered post for the index page.
// Entries are appended during the build loop, sorted once, and never
// mutated afterward.
type PostIndexEntry struct {
	URL    string
	Title  string
	Year   int
	Month  int
	Day    int
	Date   string // formatted, e.g. "Mar 2, 2021"
	Author string
	Tags   string // comma-joined category list
}
