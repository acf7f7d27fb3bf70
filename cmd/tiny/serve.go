package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/tiny/internal/app"
	"github.com/gorewood/tiny/internal/serve"
)

// newServeCmd creates the serve command.
func newServeCmd() *cobra.Command {
	opts := app.Options{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the published pages locally",
		Long: `Serve the blog directory over HTTP for a local look at the published
pages. Run tiny publish first. Stops on Ctrl-C.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAction(cmd, app.ActionServe, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", serve.DefaultAddr, "Listen address")

	return cmd
}
