package output

import (
	"errors"
	"fmt"
)

// Exit codes owned by desigit. Any other code comes from git itself and is
// passed through unchanged.
// 0 = Success, no-op, or informational output
// 1 = Failure (unknown alias, git missing, internal fault)
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// ToolMissingMessage is printed when the git executable cannot be started.
const ToolMissingMessage = "git is not installed or not in PATH"

// ExitError is an error that carries an exit code for the CLI.
type ExitError struct {
	Code    int
	Message string
	Cause   error
	// Reported is set when the user has already seen everything there is to
	// say. The top-level handler exits with Code and prints nothing.
	Reported bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewUserError creates an error for bad input (exit code 1).
func NewUserError(message string) *ExitError {
	return &ExitError{
		Code:    ExitFailure,
		Message: message,
	}
}

// NewToolMissingError reports that git could not be found.
func NewToolMissingError(cause error) *ExitError {
	return &ExitError{
		Code:    ExitFailure,
		Message: ToolMissingMessage,
		Cause:   cause,
	}
}

// NewInternalError wraps an unexpected failure (exit code 1).
func NewInternalError(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitFailure,
		Message: message,
		Cause:   cause,
	}
}

// NewReportedError carries an exit code whose output has already been
// written, such as a relayed git failure or a rendered suggestion list.
func NewReportedError(code int) *ExitError {
	return &ExitError{
		Code:     code,
		Reported: true,
	}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil, ExitFailure for non-ExitError errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitFailure
}

// IsReported reports whether err has already been rendered to the user.
func IsReported(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr) && exitErr.Reported
}
