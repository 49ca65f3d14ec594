package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/starford/ansuz/internal/models"
)

// Markers replaced in the index layout.
const (
	MarkerTagButtons = "<!-- TAG FILTER BUTTONS -->"
	MarkerPostCards  = "<!-- POST CARDS -->"
)

// SiteIndex accumulates per-post index entries and the site-wide tag
// set during the build loop, then renders the index page once. Entries
// are appended in directory order and only sorted at render time.
type SiteIndex struct {
	entries []models.PostIndexEntry
	tags    map[string]struct{}
}

// NewSiteIndex returns an empty accumulator.
func NewSiteIndex() *SiteIndex {
	return &SiteIndex{tags: make(map[string]struct{})}
}

// Add records one post's index entry and its category contributions.
func (s *SiteIndex) Add(entry models.PostIndexEntry, categories []string) {
	s.entries = append(s.entries, entry)
	for _, tag := range categories {
		s.tags[tag] = struct{}{}
	}
}

// Render substitutes the tag filter buttons and post cards into the
// index layout. Tags sort lexicographically; posts sort newest first
// by (year, month, day), stable on ties so insertion order decides.
func (s *SiteIndex) Render(layout string) []byte {
	tags := make([]string, 0, len(s.tags))
	for tag := range s.tags {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	// Negated keys so ascending order yields most recent first.
	sort.SliceStable(s.entries, func(i, j int) bool {
		a, b := s.entries[i], s.entries[j]
		if a.Year != b.Year {
			return -a.Year < -b.Year
		}
		if a.Month != b.Month {
			return -a.Month < -b.Month
		}
		return -a.Day < -b.Day
	})

	var buttons strings.Builder
	for _, tag := range tags {
		fmt.Fprintf(&buttons, "<button class=\"tag-filter-btn\" data-tag=\"%s\">%s</button>\n", tag, tag)
	}

	var cards strings.Builder
	for _, e := range s.entries {
		fmt.Fprintf(&cards,
			`<article class="post-card" data-tags="%s"><h2><a href="%s">%s</a></h2><div class="meta-line"><span class="date">%s</span> — <span class="author">%s</span> — <span class="tags-inline">%s</span></div></article>`+"\n",
			e.Tags, e.URL, e.Title, e.Date, e.Author, e.Tags)
	}

	page := layout
	page = strings.ReplaceAll(page, MarkerTagButtons, buttons.String())
	page = strings.ReplaceAll(page, MarkerPostCards, cards.String())
	return []byte(page)
}
