// Package output provides structured output handling for the tiny CLI.
//
// Every command writes through a Printer, which renders either styled,
// human-readable text or JSON objects when --json is set:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//	printer.Success(map[string]any{"message": "Published 3 pages"})
//	printer.Warn("git push failed: %v", err)
//	printer.Error(err)
//
// Styling uses lipgloss and is disabled when output is not a terminal or
// when --color never is given.
//
// # Exit Codes
//
//	output.ExitSuccess  // 0
//	output.ExitUsage    // 1: bad arguments, unknown action, empty title
//	output.ExitSystem   // 2: I/O failure, git not installed
//	output.ExitConflict // 3: descriptor already exists, duplicate post
//	output.ExitConfig   // 4: descriptor missing or malformed
//	output.ExitContent  // 5: include not found, unknown content kind
//
// Errors built with the New*Error constructors carry their code, which is
// used both for the JSON error object and for the process exit status.
package output
