// Package layouts carries the default page layouts compiled into the
// binary. A layouts directory on disk overrides them file by file.
package layouts

import _ "embed"

//go:embed post.html
var post string

//go:embed index.html
var index string

// Post returns the default post page layout.
func Post() string { return post }

// Index returns the default index page layout.
func Index() string { return index }
