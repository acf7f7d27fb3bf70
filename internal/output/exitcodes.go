package output

import "errors"

// Process exit codes.
const (
	ExitSuccess  = 0
	ExitUsage    = 1
	ExitSystem   = 2
	ExitConflict = 3
	ExitConfig   = 4
	ExitContent  = 5
)

// ExitError is an error that carries an exit code for the CLI.
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewUsageError creates an error for bad invocations (exit code 1).
func NewUsageError(message string) *ExitError {
	return &ExitError{Code: ExitUsage, Message: message}
}

// NewSystemError creates an error for system failures (exit code 2).
// Use for: page or descriptor writes, missing executables.
func NewSystemError(message string) *ExitError {
	return &ExitError{Code: ExitSystem, Message: message}
}

// NewSystemErrorWithCause creates a system error wrapping an underlying cause.
func NewSystemErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{Code: ExitSystem, Message: message, Cause: cause}
}

// NewConflictError creates an error for state conflicts (exit code 3).
func NewConflictError(message string) *ExitError {
	return &ExitError{Code: ExitConflict, Message: message}
}

// NewConfigError creates an error for an unreadable or malformed
// descriptor (exit code 4).
func NewConfigError(message string, cause error) *ExitError {
	return &ExitError{Code: ExitConfig, Message: message, Cause: cause}
}

// NewContentError creates an error for content references that cannot be
// resolved (exit code 5).
func NewContentError(message string, cause error) *ExitError {
	return &ExitError{Code: ExitContent, Message: message, Cause: cause}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil, ExitUsage for non-ExitError errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUsage
}
