package git

import (
	"context"
	"errors"
	"strings"

	"github.com/gorewood/tiny/internal/output"
	"github.com/gorewood/tiny/internal/process"
)

// DefaultRemote is the remote name tiny registers and pushes to.
const DefaultRemote = "origin"

// Client runs git in a working directory.
type Client struct {
	runner process.Runner
	dir    string
}

// New creates a Client running git in dir through runner.
func New(runner process.Runner, dir string) *Client {
	return &Client{runner: runner, dir: dir}
}

// Run executes a git command and returns its trimmed stdout.
func (c *Client) Run(ctx context.Context, args ...string) (string, error) {
	res, err := c.runner.Run(ctx, process.Command{Name: "git", Args: args, Dir: c.dir})
	if err == nil {
		return res.Stdout, nil
	}
	if errors.Is(err, process.ErrNotFound) {
		return "", output.NewSystemErrorWithCause("git not found: ensure git is installed and in PATH", err)
	}

	msg := strings.TrimSpace(res.Stderr)
	if msg == "" {
		msg = strings.TrimSpace(res.Stdout)
	}
	if msg == "" {
		msg = err.Error()
	}
	return "", output.NewSystemErrorWithCause("git "+firstArg(args)+" failed: "+msg, err)
}

// IsRepoRoot reports whether the working directory is the top level of a
// git repository. A directory nested inside another repository is not.
func (c *Client) IsRepoRoot(ctx context.Context) bool {
	prefix, err := c.Run(ctx, "rev-parse", "--show-prefix")
	return err == nil && prefix == ""
}

// HasRemote reports whether a remote with the given name is configured.
func (c *Client) HasRemote(ctx context.Context, name string) bool {
	_, err := c.Run(ctx, "remote", "get-url", name)
	return err == nil
}

// Init creates a repository in the working directory.
func (c *Client) Init(ctx context.Context) error {
	_, err := c.Run(ctx, "init", ".")
	return err
}

// AddRemote registers url under name.
func (c *Client) AddRemote(ctx context.Context, name, url string) error {
	_, err := c.Run(ctx, "remote", "add", name, url)
	return err
}

// Add stages the given paths.
func (c *Client) Add(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	_, err := c.Run(ctx, append([]string{"add", "--"}, paths...)...)
	return err
}

// Commit records the staged changes.
func (c *Client) Commit(ctx context.Context, message string) error {
	_, err := c.Run(ctx, "commit", "-m", message)
	return err
}

// Push pushes the current branch to remote.
func (c *Client) Push(ctx context.Context, remote string) error {
	_, err := c.Run(ctx, "push", remote, "HEAD")
	return err
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
