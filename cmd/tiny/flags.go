package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gorewood/tiny/internal/app"
	"github.com/gorewood/tiny/internal/output"
	"github.com/gorewood/tiny/internal/process"
	"github.com/gorewood/tiny/internal/prompt"
)

// lookupFlag finds a flag on cmd, falling back to the root's persistent flags.
func lookupFlag(cmd *cobra.Command, name string) string {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup(name)
	}
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}

func isJSONMode(cmd *cobra.Command) bool {
	return lookupFlag(cmd, "json") == "true"
}

func useColor(cmd *cobra.Command) bool {
	return output.ResolveColorMode(lookupFlag(cmd, "color"), output.IsTTY(cmd.OutOrStdout()))
}

func blogDir(cmd *cobra.Command) string {
	if dir := lookupFlag(cmd, "dir"); dir != "" {
		return dir
	}
	return "."
}

func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())
}

// noArgs rejects positional arguments with a usage error.
func noArgs(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return output.NewUsageError(app.UsageMessage)
	}
	return nil
}

// newApp builds an App wired to the command's streams. Questions go to
// stderr so --json output stays parseable.
func newApp(cmd *cobra.Command) *app.App {
	runner := process.NewExecRunner()
	runner.Stdin = cmd.InOrStdin()
	runner.Stdout = cmd.OutOrStdout()
	runner.Stderr = cmd.ErrOrStderr()

	return &app.App{
		Dir:     blogDir(cmd),
		Printer: newPrinter(cmd),
		Asker:   prompt.NewLineAsker(cmd.InOrStdin(), cmd.ErrOrStderr()),
		Runner:  runner,
		Editor:  os.Getenv("EDITOR"),
		Stdout:  cmd.OutOrStdout(),
		Styled:  useColor(cmd),
		Now:     time.Now,
	}
}

// runAction runs one action and prints any failure.
func runAction(cmd *cobra.Command, action app.Action, opts app.Options) error {
	a := newApp(cmd)
	if err := a.Run(cmd.Context(), action, opts); err != nil {
		a.Printer.Error(err)
		return err
	}
	return nil
}
