package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/gorewood/tiny/internal/blog"
	"github.com/gorewood/tiny/internal/content"
	"github.com/gorewood/tiny/internal/output"
	"github.com/gorewood/tiny/internal/preview"
	"github.com/gorewood/tiny/internal/serve"
)

// List returns the registered posts in registry order.
func (a *App) List() ([]blog.Post, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}
	return cfg.Posts, nil
}

// Preview renders one post's source to Stdout. An empty query picks the
// most recent post.
func (a *App) Preview(query string, width int) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	post, err := preview.Find(cfg.Posts, query)
	if err != nil {
		if errors.Is(err, preview.ErrNoPosts) {
			return output.NewUsageError("no posts yet; run 'tiny blog' first")
		}
		return output.NewUsageError(err.Error())
	}

	src, err := content.NewResolver(a.path(blog.IncludesDir)).Resolve(post.Content)
	if err != nil {
		return output.NewContentError(fmt.Sprintf("resolving post %q", post.Title), err)
	}

	renderer, err := preview.NewRenderer(a.Styled, width)
	if err != nil {
		return output.NewSystemErrorWithCause("preparing preview", err)
	}
	text, err := renderer.Render(src)
	if err != nil {
		return output.NewContentError(fmt.Sprintf("rendering post %q", post.Title), err)
	}

	if a.Printer.IsJSON() {
		return a.Printer.WriteJSON(map[string]any{
			"title":   post.Title,
			"fileId":  post.FileID,
			"preview": text,
		})
	}
	_, err = fmt.Fprint(a.stdout(), text)
	return err
}

// Serve serves the blog root over HTTP until ctx is cancelled.
func (a *App) Serve(ctx context.Context, addr string) error {
	if addr == "" {
		addr = serve.DefaultAddr
	}
	if !a.Printer.IsJSON() {
		a.Printer.Print("Serving %s on http://%s (Ctrl-C to stop)\n", a.Dir, addr)
	}
	if err := serve.New(a.Dir, a.stdout()).ListenAndServe(ctx, addr); err != nil {
		return output.NewSystemErrorWithCause("preview server failed", err)
	}
	return nil
}
