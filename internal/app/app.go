// Package app wires tiny's actions to their collaborators.
//
// An App holds everything an action touches: the blog directory, the
// terminal printer, the question asker and the process runner used for the
// editor and git. Run dispatches one Action and reports its outcome.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/gorewood/tiny/internal/blog"
	"github.com/gorewood/tiny/internal/output"
	"github.com/gorewood/tiny/internal/process"
	"github.com/gorewood/tiny/internal/prompt"
)

// Questions asked by the interactive actions.
const (
	QuestionBlogName  = "Blog Name"
	QuestionAuthor    = "Author"
	QuestionGitRemote = "Git Remote"
	QuestionTitle     = "Post Title"
	QuestionSubtitle  = "Subtitle"
)

// App runs actions against one blog directory.
type App struct {
	// Dir is the blog root holding tiny.json and includes/.
	Dir     string
	Printer *output.Printer
	Asker   prompt.Asker
	// Runner spawns the editor and git. Nil disables both.
	Runner process.Runner
	// Editor is the EDITOR value; empty falls back to vi.
	Editor string
	// Stdout receives previews and the serve request log.
	Stdout io.Writer
	// Styled enables colored previews.
	Styled bool
	Now    func() time.Time
}

// Options carries per-action flags.
type Options struct {
	// Query selects the post to preview.
	Query string
	// Addr is the serve listen address.
	Addr string
	// Width is the preview wrap width.
	Width int
}

// Run performs action and reports the result through the printer.
func (a *App) Run(ctx context.Context, action Action, opts Options) error {
	switch action {
	case ActionInit:
		res, err := a.Init(ctx)
		if err != nil {
			return err
		}
		return a.reportInit(res)
	case ActionBlog:
		post, err := a.Blog(ctx)
		if err != nil {
			return err
		}
		return a.reportBlog(post)
	case ActionPublish:
		res, err := a.Publish(ctx)
		if err != nil {
			return err
		}
		return a.reportPublish(res)
	case ActionList:
		posts, err := a.List()
		if err != nil {
			return err
		}
		return a.reportList(posts)
	case ActionPreview:
		return a.Preview(opts.Query, opts.Width)
	case ActionServe:
		return a.Serve(ctx, opts.Addr)
	default:
		return output.NewUsageError(UsageMessage)
	}
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) path(name string) string {
	return filepath.Join(a.Dir, name)
}

func (a *App) stdout() io.Writer {
	if a.Stdout != nil {
		return a.Stdout
	}
	return io.Discard
}

func (a *App) ask(question string) (string, error) {
	answer, err := a.Asker.Ask(question)
	if err != nil {
		return "", output.NewSystemErrorWithCause("could not read "+question, err)
	}
	return answer, nil
}

// loadConfig reads tiny.json, mapping failures to config errors.
func (a *App) loadConfig() (*blog.Config, error) {
	cfg, err := blog.Load(a.path(blog.DescriptorName))
	switch {
	case err == nil:
		return cfg, nil
	case errors.Is(err, blog.ErrConfigMissing):
		return nil, output.NewConfigError(fmt.Sprintf("no %s in %s; run 'tiny init' first", blog.DescriptorName, a.Dir), err)
	case errors.Is(err, blog.ErrConfigParse):
		return nil, output.NewConfigError(blog.DescriptorName+" is malformed", err)
	default:
		return nil, output.NewSystemErrorWithCause("reading "+blog.DescriptorName, err)
	}
}

func (a *App) saveConfig(cfg *blog.Config) error {
	if err := blog.Save(a.path(blog.DescriptorName), cfg); err != nil {
		return output.NewSystemErrorWithCause("writing "+blog.DescriptorName, err)
	}
	return nil
}
