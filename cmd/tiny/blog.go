package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/tiny/internal/app"
)

// newBlogCmd creates the blog command.
func newBlogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "blog",
		Short: "Draft a new post",
		Long: `Draft a new post.

Asks for a title and an optional subtitle, registers the post in tiny.json
and opens includes/<file id>.md in $EDITOR (vi when unset).

The file id is the title with spaces turned into dashes and everything
outside letters, digits, dash and underscore removed.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAction(cmd, app.ActionBlog, app.Options{})
		},
	}
}
