package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gorewood/tiny/internal/blog"
	"github.com/gorewood/tiny/internal/content"
	"github.com/gorewood/tiny/internal/editor"
	"github.com/gorewood/tiny/internal/output"
	"github.com/gorewood/tiny/internal/publish"
)

// Blog registers a new post and opens its source in the editor.
func (a *App) Blog(ctx context.Context) (*blog.Post, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}

	title, err := a.ask(QuestionTitle)
	if err != nil {
		return nil, err
	}
	if title == "" {
		return nil, output.NewUsageError("a post title is required")
	}
	subtitle, err := a.ask(QuestionSubtitle)
	if err != nil {
		return nil, err
	}

	post := blog.NewPost(title, subtitle, a.now())
	if post.FileID == "" {
		return nil, output.NewUsageError(fmt.Sprintf("title %q has no characters usable in a file name", title))
	}
	if err := checkOutputName(cfg, post); err != nil {
		return nil, err
	}
	if err := cfg.AddPost(post); err != nil {
		if errors.Is(err, blog.ErrDuplicatePost) {
			return nil, output.NewConflictError(fmt.Sprintf("a post with file id %q already exists", post.FileID))
		}
		return nil, err
	}
	if err := a.saveConfig(cfg); err != nil {
		return nil, err
	}

	source, err := a.createSource(post)
	if err != nil {
		return nil, err
	}

	if a.Runner != nil {
		if err := editor.New(a.Runner, a.Editor).Open(ctx, source); err != nil {
			a.Printer.Warn("post registered but the editor failed: %v", err)
		}
	}
	return &post, nil
}

// checkOutputName rejects a post whose page would overwrite the index
// or another post's page. Names are compared without regard to case.
func checkOutputName(cfg *blog.Config, post blog.Post) error {
	name := post.OutputName()
	if strings.EqualFold(name, publish.IndexPath) {
		return output.NewConflictError(fmt.Sprintf("file id %q would overwrite %s", post.FileID, publish.IndexPath))
	}
	for _, existing := range cfg.Posts {
		if existing.FileID != post.FileID && strings.EqualFold(existing.OutputName(), name) {
			return output.NewConflictError(fmt.Sprintf("post %q already publishes to %s", existing.Title, name))
		}
	}
	return nil
}

// createSource writes a heading into the post's Markdown file unless the
// file already exists, and returns its path.
func (a *App) createSource(post blog.Post) (string, error) {
	path, err := content.NewResolver(a.path(blog.IncludesDir)).Path(post.Content.Name)
	if err != nil {
		return "", output.NewContentError("invalid post source", err)
	}
	if _, statErr := os.Stat(path); statErr == nil {
		return path, nil
	}
	if err := os.MkdirAll(a.path(blog.IncludesDir), 0o755); err != nil {
		return "", output.NewSystemErrorWithCause("creating "+blog.IncludesDir, err)
	}
	if err := os.WriteFile(path, []byte("# "+post.Title+"\n\n"), 0o644); err != nil {
		return "", output.NewSystemErrorWithCause("writing "+path, err)
	}
	return path, nil
}
