package publish

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorewood/tiny/internal/blog"
	"github.com/gorewood/tiny/internal/content"
	"github.com/gorewood/tiny/internal/git"
	"github.com/gorewood/tiny/internal/markdown"
	"github.com/gorewood/tiny/internal/output"
	"github.com/gorewood/tiny/internal/prompt"
	"github.com/gorewood/tiny/internal/render"
	"github.com/gorewood/tiny/internal/scaffold"
)

// IndexPath is the output name of the post listing.
const IndexPath = "index.html"

// CommitQuestion is asked before committing published pages.
const CommitQuestion = "Commit Message"

// Assembler renders a page body against a descriptor.
type Assembler interface {
	Assemble(cfg *blog.Config, body content.Ref, extra map[string]string) (string, error)
}

// Resolver maps content refs to text.
type Resolver interface {
	Resolve(ref content.Ref) (string, error)
}

// VCS records published files.
type VCS interface {
	Add(ctx context.Context, paths ...string) error
	Commit(ctx context.Context, message string) error
	Push(ctx context.Context, remote string) error
}

// PageSpec describes one page to publish.
type PageSpec struct {
	Path    string
	Content content.Ref
	Extra   map[string]string
}

// Page is a rendered page ready to be written.
type Page struct {
	Path string
	Text string
}

// Result summarizes a publish run.
type Result struct {
	Written   []string `json:"written"`
	Committed bool     `json:"committed"`
	Pushed    bool     `json:"pushed"`
}

// Publisher renders and writes a blog.
type Publisher struct {
	Assembler Assembler
	Resolver  Resolver
	Markdown  *markdown.Converter
	// Dir is where pages are written.
	Dir string
	// VCS is used when the descriptor has a remote. Nil skips the step.
	VCS     VCS
	Asker   prompt.Asker
	Printer *output.Printer
	Now     func() time.Time
}

// Publish runs all three phases and the version control step.
func (p *Publisher) Publish(ctx context.Context, cfg *blog.Config) (*Result, error) {
	specs, listing, err := p.Specs(cfg)
	if err != nil {
		return nil, err
	}

	pages, err := p.Render(listing, specs)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	result.Written, err = p.Write(pages)
	if err != nil {
		return result, err
	}

	if cfg.HasRemote() && p.VCS != nil {
		result.Committed, result.Pushed = p.record(ctx, result.Written)
	}
	return result, nil
}

// Specs builds the index spec followed by one spec per post, in registry
// order. The returned listing is a copy of cfg whose posts carry front
// matter subtitles where the descriptor has none. Two pages with the same
// output path are a content error.
func (p *Publisher) Specs(cfg *blog.Config) ([]PageSpec, *blog.Config, error) {
	listing := *cfg
	listing.Posts = append([]blog.Post(nil), cfg.Posts...)

	index := cfg.Index
	if index.IsZero() {
		text, err := scaffold.DefaultIndex()
		if err != nil {
			return nil, nil, output.NewContentError("loading default index", err)
		}
		index = content.Embed(text)
	}
	specs := []PageSpec{{Path: IndexPath, Content: index}}
	// Keys are lower-cased output paths.
	owners := map[string]string{IndexPath: "the index"}

	for i, post := range cfg.Posts {
		path := post.OutputName()
		key := strings.ToLower(path)
		if owner, ok := owners[key]; ok {
			return nil, nil, output.NewContentError(fmt.Sprintf("post %q and %s both publish to %s", post.Title, owner, path), nil)
		}
		owners[key] = fmt.Sprintf("post %q", post.Title)

		src, err := p.Resolver.Resolve(post.Content)
		if err != nil {
			return nil, nil, output.NewContentError(fmt.Sprintf("resolving post %q", post.Title), err)
		}
		doc, err := markdown.Parse(src)
		if err != nil {
			return nil, nil, output.NewContentError(fmt.Sprintf("parsing post %q", post.Title), err)
		}
		html, err := p.Markdown.Convert(doc.Body)
		if err != nil {
			return nil, nil, output.NewContentError(fmt.Sprintf("converting post %q", post.Title), err)
		}

		subtitle := post.Subtitle
		if subtitle == "" {
			subtitle = doc.Meta.Subtitle
		}
		listing.Posts[i].Subtitle = subtitle

		specs = append(specs, PageSpec{
			Path:    path,
			Content: cfg.Post,
			Extra: map[string]string{
				render.TokenPostTitle:    post.Title,
				render.TokenPostSubtitle: subtitle,
				render.TokenPostContent:  html,
				render.TokenPostDate:     render.HTTPDate(post.Date),
			},
		})
	}
	return specs, &listing, nil
}

// Render assembles every spec. Nothing is written.
func (p *Publisher) Render(cfg *blog.Config, specs []PageSpec) ([]Page, error) {
	pages := make([]Page, 0, len(specs))
	for _, spec := range specs {
		text, err := p.Assembler.Assemble(cfg, spec.Content, spec.Extra)
		if err != nil {
			return nil, output.NewContentError("rendering "+spec.Path, err)
		}
		pages = append(pages, Page{Path: spec.Path, Text: text})
	}
	return pages, nil
}

// Write stores pages under Dir and returns the paths written, relative to
// Dir. It stops at the first failure.
func (p *Publisher) Write(pages []Page) ([]string, error) {
	written := make([]string, 0, len(pages))
	for _, page := range pages {
		if err := blog.WriteFileAtomic(filepath.Join(p.Dir, page.Path), []byte(page.Text)); err != nil {
			return written, output.NewSystemErrorWithCause("writing "+page.Path, err)
		}
		written = append(written, page.Path)
	}
	return written, nil
}

// record commits and pushes the written pages with the descriptor.
func (p *Publisher) record(ctx context.Context, written []string) (committed, pushed bool) {
	message := p.defaultMessage()
	if p.Asker != nil {
		answer, err := p.Asker.Ask(CommitQuestion)
		if err != nil {
			p.Printer.Warn("could not read commit message, using %q", message)
		} else if answer != "" {
			message = answer
		}
	}

	paths := append(append([]string(nil), written...), blog.DescriptorName)
	if err := p.VCS.Add(ctx, paths...); err != nil {
		p.Printer.Warn("pages were written but not committed: %v", err)
		return false, false
	}
	if err := p.VCS.Commit(ctx, message); err != nil {
		p.Printer.Warn("pages were written but not committed: %v", err)
		return false, false
	}
	if err := p.VCS.Push(ctx, git.DefaultRemote); err != nil {
		p.Printer.Warn("commit was made but not pushed: %v", err)
		return true, false
	}
	return true, true
}

func (p *Publisher) defaultMessage() string {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	return "publish: " + now().Format(time.DateOnly)
}
