// Package editor opens files in the user's editor and waits for it to exit.
package editor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gorewood/tiny/internal/process"
)

// Fallback is used when EDITOR is unset or blank.
const Fallback = "vi"

// Command splits an EDITOR value into a program and its arguments.
// EDITOR may carry flags, e.g. "code --wait".
func Command(value string) (string, []string) {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return Fallback, nil
	}
	return fields[0], fields[1:]
}

// Editor spawns the configured editor through a process.Runner.
type Editor struct {
	runner process.Runner
	value  string
}

// New creates an Editor for the given EDITOR value.
func New(runner process.Runner, value string) *Editor {
	return &Editor{runner: runner, value: value}
}

// FromEnv creates an Editor using $EDITOR.
func FromEnv(runner process.Runner) *Editor {
	return New(runner, os.Getenv("EDITOR"))
}

// Open edits path and blocks until the editor exits.
func (e *Editor) Open(ctx context.Context, path string) error {
	name, args := Command(e.value)
	cmd := process.Command{Name: name, Args: append(args, path), Interactive: true}
	if _, err := e.runner.Run(ctx, cmd); err != nil {
		return fmt.Errorf("running editor %s: %w", name, err)
	}
	return nil
}
