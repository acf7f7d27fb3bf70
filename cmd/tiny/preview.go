package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/tiny/internal/app"
	"github.com/gorewood/tiny/internal/preview"
)

// newPreviewCmd creates the preview command.
func newPreviewCmd() *cobra.Command {
	opts := app.Options{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Read a post in the terminal",
		Long: `Render a post's Markdown in the terminal.

The post is picked by fuzzy match on its title or file id. Without --post
the most recent post is shown.

Examples:
  tiny preview
  tiny preview --post "road trip"`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAction(cmd, app.ActionPreview, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Query, "post", "", "Post title or file id to preview")
	cmd.Flags().IntVar(&opts.Width, "width", preview.DefaultWidth, "Word wrap width")

	return cmd
}
