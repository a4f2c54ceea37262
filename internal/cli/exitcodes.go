package cli

import (
	"errors"
	"fmt"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	// Use for: Normal, successful command execution.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Storage errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Ticket not found, or any case where a resource ID or name doesn't exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Invalid backup documents, corrupted stored data, or data that cannot be processed.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Invalid priority values, invalid status, a full column,
	// or any case where input fails validation rules.
	ExitValidation = 5
)

// CommandError is a failed command carrying the exit code the process
// should end with and a stable machine-readable code for JSON output
type CommandError struct {
	ExitCode   int
	Code       string
	Message    string
	Suggestion string
	Err        error
}

func (e *CommandError) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Fail builds a CommandError
func Fail(exitCode int, code, message string) *CommandError {
	return &CommandError{ExitCode: exitCode, Code: code, Message: message}
}

// WithSuggestion attaches a hint shown under the error message
func (e *CommandError) WithSuggestion(s string) *CommandError {
	e.Suggestion = s
	return e
}

// Wrap records the underlying cause
func (e *CommandError) Wrap(err error) *CommandError {
	e.Err = err
	return e
}

// ExitCodeOf maps an error returned by a command to a process exit code
func ExitCodeOf(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.ExitCode
	}
	return ExitError
}
