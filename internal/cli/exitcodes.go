package cli

import "errors"

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, file errors, unexpected failures.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Unknown sort fields, unknown export formats, missing flags.
	ExitUsage = 2

	// ExitNotFound indicates a requested registration was not found.
	ExitNotFound = 3

	// ExitBusy indicates another regatta process holds the write lock.
	ExitBusy = 4

	// ExitValidation indicates a validation error.
	// Use for: Malformed boat numbers, invalid fees or seat counts.
	ExitValidation = 5
)

// CodedError carries the process exit code for a failed command.
type CodedError struct {
	Code int
	Err  error
}

func (e *CodedError) Error() string { return e.Err.Error() }

func (e *CodedError) Unwrap() error { return e.Err }

// WithExitCode attaches code to err. A nil err stays nil.
func WithExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &CodedError{Code: code, Err: err}
}

// ExitCode returns the code attached by WithExitCode, ExitError for any
// other error and ExitSuccess for nil.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *CodedError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}
