package app

import (
	"context"

	"github.com/gorewood/tiny/internal/blog"
	"github.com/gorewood/tiny/internal/git"
	"github.com/gorewood/tiny/internal/output"
	"github.com/gorewood/tiny/internal/scaffold"
)

// InitResult describes a freshly scaffolded blog.
type InitResult struct {
	Config    *blog.Config `json:"-"`
	Templates []string     `json:"templates"`
	// Git is true when the repository and remote were both set up.
	Git bool `json:"git"`
}

// Init creates tiny.json and the default includes. It refuses to touch a
// directory that already has a descriptor.
func (a *App) Init(ctx context.Context) (*InitResult, error) {
	if blog.Exists(a.path(blog.DescriptorName)) {
		return nil, output.NewConflictError(blog.DescriptorName + " already exists in " + a.Dir)
	}

	name, err := a.ask(QuestionBlogName)
	if err != nil {
		return nil, err
	}
	author, err := a.ask(QuestionAuthor)
	if err != nil {
		return nil, err
	}
	remote, err := a.ask(QuestionGitRemote)
	if err != nil {
		return nil, err
	}

	cfg := blog.New(name, author, remote, a.now())
	if err := a.saveConfig(cfg); err != nil {
		return nil, err
	}

	written, err := scaffold.WriteDefaults(a.path(blog.IncludesDir))
	if err != nil {
		return nil, output.NewSystemErrorWithCause("writing default templates", err)
	}

	res := &InitResult{Config: cfg, Templates: written}
	if cfg.HasRemote() && a.Runner != nil {
		res.Git = a.initGit(ctx, cfg.GitRemote)
	}
	return res, nil
}

// initGit sets up the repository and origin, reusing either when the blog
// directory already has it. Failures only warn.
func (a *App) initGit(ctx context.Context, remote string) bool {
	client := git.New(a.Runner, a.Dir)
	if !client.IsRepoRoot(ctx) {
		if err := client.Init(ctx); err != nil {
			a.Printer.Warn("blog created without a git repository: %v", err)
			return false
		}
	}
	if client.HasRemote(ctx, git.DefaultRemote) {
		return true
	}
	if err := client.AddRemote(ctx, git.DefaultRemote, remote); err != nil {
		a.Printer.Warn("could not add git remote %s: %v", remote, err)
		return false
	}
	return true
}
