package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/tiny/internal/app"
)

// newPublishCmd creates the publish command.
func newPublishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "publish",
		Short: "Render every page",
		Long: `Render index.html and one page per post.

Pages are rendered in memory first; nothing is written if any template or
post cannot be read. When tiny.json names a git remote, the pages and
tiny.json are committed and pushed afterwards. Git problems are reported as
warnings.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAction(cmd, app.ActionPublish, app.Options{})
		},
	}
}
