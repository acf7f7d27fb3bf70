// Package markdown converts post sources to HTML.
//
// A post source is Markdown, optionally preceded by YAML front matter:
//
//	---
//	subtitle: Notes from the road
//	---
//	# Day one
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	fences "github.com/stefanfritsch/goldmark-fences"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v3"
)

// CodeStyle is the chroma style used for fenced code blocks.
const CodeStyle = "github"

// Meta is the front matter of a post source.
type Meta struct {
	Subtitle string `yaml:"subtitle"`
}

// Document is a post source split into front matter and Markdown body.
type Document struct {
	Meta Meta
	Body string
}

// Parse splits src into front matter and body.
func Parse(src string) (*Document, error) {
	front, body := splitFrontmatter(src)

	doc := &Document{Body: body}
	if front != "" {
		if err := yaml.Unmarshal([]byte(front), &doc.Meta); err != nil {
			return nil, fmt.Errorf("invalid front matter: %w", err)
		}
	}
	return doc, nil
}

// splitFrontmatter separates a leading "---" delimited block from the rest.
// Sources without a closing delimiter have no front matter.
func splitFrontmatter(raw string) (frontmatter, body string) {
	trimmed := strings.TrimPrefix(raw, "\ufeff")
	trimmed = strings.ReplaceAll(trimmed, "\r\n", "\n")
	if !strings.HasPrefix(trimmed, "---\n") {
		return "", raw
	}

	rest := trimmed[len("---"):]
	before, after, ok := strings.Cut(rest, "\n---")
	if !ok {
		return "", raw
	}
	// Drop the rest of the closing delimiter line.
	if _, tail, found := strings.Cut(after, "\n"); found {
		after = tail
	} else {
		after = ""
	}
	return strings.TrimSpace(before), after
}

// Converter renders Markdown to HTML with GitHub-flavored extensions,
// footnotes, fenced divs and highlighted code blocks. Raw HTML in the
// source is passed through.
type Converter struct {
	md goldmark.Markdown
}

// NewConverter creates a Converter.
func NewConverter() *Converter {
	return &Converter{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Footnote,
				highlighting.NewHighlighting(
					highlighting.WithStyle(CodeStyle),
					highlighting.WithFormatOptions(chromahtml.TabWidth(4)),
				),
				&fences.Extender{},
			),
			goldmark.WithRendererOptions(goldmarkhtml.WithUnsafe()),
		),
	}
}

// Convert renders src to HTML.
func (c *Converter) Convert(src string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.String(), nil
}
