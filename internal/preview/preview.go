// Package preview renders post sources for reading in the terminal.
package preview

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/sahilm/fuzzy"

	"github.com/gorewood/tiny/internal/blog"
	"github.com/gorewood/tiny/internal/markdown"
)

// DefaultWidth is the word wrap width used when none is given.
const DefaultWidth = 80

var (
	// ErrNoPosts is returned when the registry is empty.
	ErrNoPosts = errors.New("blog has no posts")
	// ErrNoMatch is returned when no post title matches the query.
	ErrNoMatch = errors.New("no post matches")
)

// Find picks a post by fuzzy match against titles and file ids. An empty
// query returns the most recent post.
func Find(posts []blog.Post, query string) (blog.Post, error) {
	if len(posts) == 0 {
		return blog.Post{}, ErrNoPosts
	}
	if query == "" {
		return posts[len(posts)-1], nil
	}

	targets := make([]string, len(posts))
	for i, p := range posts {
		targets[i] = p.Title + " " + p.FileID
	}
	matches := fuzzy.Find(query, targets)
	if len(matches) == 0 {
		return blog.Post{}, fmt.Errorf("%w %q", ErrNoMatch, query)
	}
	return posts[matches[0].Index], nil
}

// Renderer turns Markdown into styled terminal text.
type Renderer struct {
	term *glamour.TermRenderer
}

// NewRenderer creates a Renderer. Styled output picks a dark or light
// theme from the terminal; otherwise plain text is produced.
func NewRenderer(styled bool, width int) (*Renderer, error) {
	if width <= 0 {
		width = DefaultWidth
	}
	style := glamour.WithStandardStyle("notty")
	if styled {
		style = glamour.WithAutoStyle()
	}

	term, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return nil, fmt.Errorf("creating markdown renderer: %w", err)
	}
	return &Renderer{term: term}, nil
}

// Render strips front matter from a post source and renders the body.
func (r *Renderer) Render(src string) (string, error) {
	doc, err := markdown.Parse(src)
	if err != nil {
		return "", err
	}
	out, err := r.term.Render(doc.Body)
	if err != nil {
		return "", fmt.Errorf("rendering preview: %w", err)
	}
	return out, nil
}
