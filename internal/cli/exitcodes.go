package cli

import (
	"errors"

	"github.com/thenoetrevino/todoey/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneral indicates a general error occurred.
	// Use for: unexpected failures that don't fit the specific categories below.
	ExitGeneral = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags or malformed flag values.
	ExitUsage = 2

	// ExitNotFound indicates a requested category or item does not exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed input data.
	ExitDataErr = 4

	// ExitValidation indicates input failed validation rules.
	// Use for: Empty, over-long or non-UTF-8 names and titles.
	ExitValidation = 5

	// ExitStorage indicates the storage medium could not be read or written.
	ExitStorage = 6
)

// ExitError carries the process exit code for a failure that has already
// been reported to the user
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code a command error should produce
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	code, _ := classify(err)
	return code
}

// classify maps an error to an exit code and a machine-readable error code
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrValidation):
		return ExitValidation, "VALIDATION_ERROR"
	case errors.Is(err, models.ErrNotFound):
		return ExitNotFound, "NOT_FOUND"
	case errors.Is(err, models.ErrStorage):
		return ExitStorage, "STORAGE_ERROR"
	default:
		return ExitGeneral, "ERROR"
	}
}
