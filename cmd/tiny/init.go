package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/tiny/internal/app"
)

// newInitCmd creates the init command.
func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Scaffold a new blog in the current directory",
		Long: `Scaffold a new blog.

Asks for the blog name, the author and an optional git remote, then writes
tiny.json and the default templates into includes/. Existing templates are
kept. With a remote, a git repository is created and origin is set.

Refuses to run where tiny.json already exists.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAction(cmd, app.ActionInit, app.Options{})
		},
	}
}
