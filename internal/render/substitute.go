package render

import (
	"strings"

	"github.com/gorewood/tiny/internal/blog"
)

// lookupFunc returns the replacement for a complete token such as
// "%%TINY_BLOG_NAME%%".
type lookupFunc func(token string) (string, bool)

// chain tries each lookup in order.
func chain(lookups ...lookupFunc) lookupFunc {
	return func(token string) (string, bool) {
		for _, l := range lookups {
			if l == nil {
				continue
			}
			if v, ok := l(token); ok {
				return v, true
			}
		}
		return "", false
	}
}

// extraLookup serves caller tokens. Keys that do not start with the sigil
// are ignored.
func extraLookup(extra map[string]string) lookupFunc {
	return func(token string) (string, bool) {
		if !strings.HasPrefix(token, Sigil) {
			return "", false
		}
		v, ok := extra[token]
		return v, ok
	}
}

// Substitute replaces the built-in tokens and every extra token found in
// template. Built-ins take precedence over extras with the same key.
// Unknown tokens, including the repeated-block markers, are left as they are.
func Substitute(template string, fixed Fixed, extra map[string]string) string {
	var b strings.Builder
	b.Grow(len(template))
	replaceTokens(&b, template, chain(fixed.lookup, extraLookup(extra)))
	return b.String()
}

// ExpandBlock renders the repeated block of template once per post, most
// recent post first, and replaces the span from the begin marker through
// the end marker with the result. Templates without a complete block are
// returned unchanged. Only per-post tokens are replaced.
func ExpandBlock(template string, posts []blog.Post) string {
	before, body, after, ok := splitBlock(template)
	if !ok {
		return template
	}

	var b strings.Builder
	b.WriteString(before)
	writeBlock(&b, body, posts, nil)
	b.WriteString(after)
	return b.String()
}

// renderPage expands the repeated block and substitutes tokens in one pass.
func renderPage(template string, global lookupFunc, posts []blog.Post) string {
	var b strings.Builder
	b.Grow(len(template))

	before, body, after, ok := splitBlock(template)
	if !ok {
		replaceTokens(&b, template, global)
		return b.String()
	}
	replaceTokens(&b, before, global)
	writeBlock(&b, body, posts, global)
	replaceTokens(&b, after, global)
	return b.String()
}

// writeBlock renders body for each post. Walking the registry backwards
// gives the same order as prepending each rendered block.
func writeBlock(b *strings.Builder, body string, posts []blog.Post, global lookupFunc) {
	for i := len(posts) - 1; i >= 0; i-- {
		replaceTokens(b, body, chain(postLookup(posts[i]), global))
	}
}

// splitBlock locates the first begin marker and the first end marker after
// it. An unterminated block is reported as absent.
func splitBlock(template string) (before, body, after string, ok bool) {
	begin := strings.Index(template, IterBegin)
	if begin < 0 {
		return "", "", "", false
	}
	rest := template[begin+len(IterBegin):]
	end := strings.Index(rest, IterEnd)
	if end < 0 {
		return "", "", "", false
	}
	return template[:begin], rest[:end], rest[end+len(IterEnd):], true
}

// replaceTokens copies template to b, replacing every "%%NAME%%" span that
// lookup knows. Values are written verbatim. For an unknown span the opening
// sigil and name are copied and scanning resumes at the closing sigil, which
// may open the next token. An unknown span that opens with a run of three or
// more percent signs is retried one byte later, so "100%%%TOKEN%%" still
// finds the token.
func replaceTokens(b *strings.Builder, template string, lookup lookupFunc) {
	for {
		start := strings.Index(template, Sigil)
		if start < 0 {
			break
		}
		closing := strings.Index(template[start+len(Sigil):], Sigil)
		if closing < 0 {
			break
		}
		closing += start + len(Sigil)

		token := template[start : closing+len(Sigil)]
		if val, ok := lookup(token); ok {
			b.WriteString(template[:start])
			b.WriteString(val)
			template = template[closing+len(Sigil):]
			continue
		}
		if template[start+len(Sigil)] == '%' {
			b.WriteString(template[:start+1])
			template = template[start+1:]
			continue
		}
		b.WriteString(template[:closing])
		template = template[closing:]
	}
	b.WriteString(template)
}
