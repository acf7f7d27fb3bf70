package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/tiny/internal/app"
)

// newListCmd creates the list command.
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered posts",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAction(cmd, app.ActionList, app.Options{})
		},
	}
}
