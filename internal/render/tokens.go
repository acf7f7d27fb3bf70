package render

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorewood/tiny/internal/blog"
)

// Sigil delimits tokens on both sides.
const Sigil = "%%"

// Built-in tokens.
const (
	TokenBlogName   = "%%TINY_BLOG_NAME%%"
	TokenBlogAuthor = "%%TINY_BLOG_AUTHOR%%"
	TokenIncludes   = "%%TINY_INCLUDES%%"
	TokenLife       = "%%TINY_LIFE%%"
)

// Post page tokens, supplied as extras.
const (
	TokenPostTitle    = "%%TINY_POST_TITLE%%"
	TokenPostSubtitle = "%%TINY_POST_SUBTITLE%%"
	TokenPostDate     = "%%TINY_POST_DATE%%"
	TokenPostContent  = "%%TINY_POST_CONTENT%%"
)

// Repeated block markers and per-post tokens.
const (
	IterBegin    = "%%TINY_ITER_BEGIN%%"
	IterEnd      = "%%TINY_ITER_END%%"
	IterTitle    = "%%TINY_ITER_TITLE%%"
	IterSubtitle = "%%TINY_ITER_SUBTITLE%%"
	IterDate     = "%%TINY_ITER_DATE%%"
	IterHref     = "%%TINY_ITER_HREF%%"
)

// Fixed holds the values of the built-in tokens.
type Fixed struct {
	BlogName   string
	BlogAuthor string
	Includes   string
	Life       string
}

// FixedFor derives the built-in token values from a descriptor.
func FixedFor(cfg *blog.Config, now time.Time) Fixed {
	return Fixed{
		BlogName:   cfg.BlogName,
		BlogAuthor: cfg.BlogAuthor,
		Includes:   IncludesMarkup(cfg.Style),
		Life:       CopyrightRange(cfg.CreationDate, now),
	}
}

func (f Fixed) lookup(token string) (string, bool) {
	switch token {
	case TokenBlogName:
		return f.BlogName, true
	case TokenBlogAuthor:
		return f.BlogAuthor, true
	case TokenIncludes:
		return f.Includes, true
	case TokenLife:
		return f.Life, true
	default:
		return "", false
	}
}

// IncludesMarkup returns the stylesheet link for style.
func IncludesMarkup(style string) string {
	return `<link rel="stylesheet" type="text/css" href="` + style + `"/>`
}

// CopyrightRange returns "YYYY" when both dates fall in the same year and
// "START-END" otherwise.
func CopyrightRange(created, now time.Time) string {
	start, end := created.Year(), now.Year()
	if start == end {
		return strconv.Itoa(start)
	}
	return strconv.Itoa(start) + "-" + strconv.Itoa(end)
}

// HTTPDate formats t as an HTTP date in GMT. The zero time formats as "".
func HTTPDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(http.TimeFormat)
}

// postLookup resolves the per-post tokens of the repeated block.
func postLookup(p blog.Post) lookupFunc {
	return func(token string) (string, bool) {
		switch token {
		case IterTitle:
			return p.Title, true
		case IterSubtitle:
			return p.Subtitle, true
		case IterDate:
			return HTTPDate(p.Date), true
		case IterHref:
			return p.OutputName(), true
		default:
			return "", false
		}
	}
}
