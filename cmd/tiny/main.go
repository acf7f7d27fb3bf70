// Package main provides the entry point for the tiny CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/tiny/internal/app"
	"github.com/gorewood/tiny/internal/config"
	"github.com/gorewood/tiny/internal/envfile"
	"github.com/gorewood/tiny/internal/output"
)

// Build info set via ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd()
	err := fang.Execute(ctx, cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the tiny CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tiny",
		Short: "A minimal static blog generator",
		Long: `tiny - write and publish a blog from the terminal.

A blog is a directory holding tiny.json and an includes/ folder of
templates and Markdown posts:
  tiny init      scaffold a new blog
  tiny blog      draft a new post in $EDITOR
  tiny publish   render every page, then commit and push if a remote is set

Templates use %%TINY_*%% tokens; see includes/ after tiny init.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := app.ParseAction(args)
			if err == nil {
				err = output.NewUsageError(app.UsageMessage)
			}
			newPrinter(cmd).Error(err)
			return err
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		loadEnvFiles(blogDir(cmd))
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always, never")
	cmd.PersistentFlags().String("dir", ".", "Blog directory")

	lipgloss.SetHasDarkBackground(true)

	cmd.AddGroup(&cobra.Group{ID: "write", Title: "Writing Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "read", Title: "Reading Commands:"})

	addGroupedCommand(cmd, newInitCmd(), "write")
	addGroupedCommand(cmd, newBlogCmd(), "write")
	addGroupedCommand(cmd, newPublishCmd(), "write")
	addGroupedCommand(cmd, newListCmd(), "read")
	addGroupedCommand(cmd, newPreviewCmd(), "read")
	addGroupedCommand(cmd, newServeCmd(), "read")

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; variables already in the environment always take
// precedence.
//
// Resolution order:
//  1. <dir>/.env.local
//  2. <dir>/.env
//  3. <config dir>/env
func loadEnvFiles(dir string) {
	_ = envfile.Load(
		filepath.Join(dir, ".env.local"),
		filepath.Join(dir, ".env"),
		config.EnvFile(),
	)
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
