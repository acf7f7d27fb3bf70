package app

import (
	"context"

	"github.com/gorewood/tiny/internal/blog"
	"github.com/gorewood/tiny/internal/content"
	"github.com/gorewood/tiny/internal/git"
	"github.com/gorewood/tiny/internal/markdown"
	"github.com/gorewood/tiny/internal/publish"
	"github.com/gorewood/tiny/internal/render"
)

// Publish renders every page into the blog root.
func (a *App) Publish(ctx context.Context) (*publish.Result, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}

	resolver := content.NewResolver(a.path(blog.IncludesDir))
	p := &publish.Publisher{
		Assembler: render.NewAssembler(resolver, a.now),
		Resolver:  resolver,
		Markdown:  markdown.NewConverter(),
		Dir:       a.Dir,
		Asker:     a.Asker,
		Printer:   a.Printer,
		Now:       a.now,
	}
	if a.Runner != nil {
		p.VCS = git.New(a.Runner, a.Dir)
	}
	return p.Publish(ctx, cfg)
}
