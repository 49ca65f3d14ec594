// Package render builds the HTML pages of the site: one page per post
// and the index. Layouts are opaque strings; substitution is a literal
// replace of named comment markers, so a marker missing from a layout
// is silently a no-op.
package render

import (
	"fmt"
	"strings"

	"github.com/starford/ansuz/internal/models"
)

// Markers replaced in the post layout.
const (
	MarkerPostContent = "<!-- POST CONTENT -->"
	MarkerPostTitle   = "<!-- POST TITLE -->"
	MarkerYearAuthor  = "<!-- YEAR AUTHOR -->"
)

var monthAbbrevs = map[int]string{
	1:  "Jan",
	2:  "Feb",
	3:  "Mar",
	4:  "Apr",
	5:  "May",
	6:  "June",
	7:  "July",
	8:  "Aug",
	9:  "Sept",
	10: "Oct",
	11: "Nov",
	12: "Dec",
}

// MonthAbbrev maps 1..12 to the English month abbreviation used in
// post dates. Any other value, including out-of-range months passed
// through from unchecked file names, maps to "Unknown".
func MonthAbbrev(month int) string {
	if s, ok := monthAbbrevs[month]; ok {
		return s
	}
	return "Unknown"
}

// FormatDate renders a file-name date as e.g. "Mar 2, 2021".
func FormatDate(info models.FileNameInfo) string {
	return fmt.Sprintf("%s %d, %d", MonthAbbrev(info.Month), info.Day, info.Year)
}

// BuildPostPage substitutes one post into the post layout and returns
// the finished page along with its index entry. Body HTML is inserted
// verbatim; it already carries whatever raw HTML the trusted pipeline
// let through.
func BuildPostPage(layout, siteTitle string, info models.FileNameInfo, fm models.Frontmatter, bodyHTML []byte) ([]byte, models.PostIndexEntry) {
	date := FormatDate(info)
	tags := strings.Join(fm.Categories, ", ")

	article := fmt.Sprintf(`
<article>
  <h1>%s</h1>
  <div class="meta"><span class="date">%s</span> — <span class="author">by %s</span> — <span class="tags-inline">%s</span></div>
%s
</article>`, fm.Title, date, fm.Author, tags, bodyHTML)

	titleTag := fmt.Sprintf("<title>%s – %s</title>", siteTitle, fm.Title)
	yearAuthor := fmt.Sprintf("© %d %s", info.Year, fm.Author)

	page := layout
	page = strings.ReplaceAll(page, MarkerPostContent, article)
	page = strings.ReplaceAll(page, MarkerPostTitle, titleTag)
	page = strings.ReplaceAll(page, MarkerYearAuthor, yearAuthor)

	entry := models.PostIndexEntry{
		URL:    info.RawName + ".html",
		Title:  fm.Title,
		Year:   info.Year,
		Month:  info.Month,
		Day:    info.Day,
		Date:   date,
		Author: fm.Author,
		Tags:   tags,
	}
	return []byte(page), entry
}
