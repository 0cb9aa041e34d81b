package errors

import (
	"errors"
	"fmt"
)

// Exit codes for scripting integration.
const (
	// ExitSuccess indicates the command completed.
	ExitSuccess = 0

	// ExitPartialFailure indicates a session ran to the end but some events
	// named controls or options the page does not have.
	ExitPartialFailure = 1

	// ExitFailure indicates the listing could not be loaded, a filter pass was
	// aborted or output could not be written.
	ExitFailure = 2

	// ExitConfigError indicates an unreadable or invalid configuration file.
	ExitConfigError = 3
)

// ExitError represents a command termination with a specific exit code.
//
// Fields:
//   - Code: Exit code (one of the Exit* constants)
//   - Message: Human-readable error message, preferred over Err's
//   - Err: Underlying error, may be nil
//
// Example:
//
//	return &ExitError{
//	    Code:    ExitConfigError,
//	    Message: "invalid configuration: selectors.card: must not be empty",
//	    Err:     err,
//	}
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error returns Message, else the underlying error's message, else the code.
func (e *ExitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given code and underlying error.
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// NewExitErrorf creates an ExitError with the given code and formatted message.
//
// Example:
//
//	err := errors.NewExitErrorf(errors.ExitPartialFailure, "%d of %d events failed", failed, total)
func NewExitErrorf(code int, format string, args ...interface{}) *ExitError {
	return &ExitError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// GetExitCode extracts the exit code from an error.
//
// Parameters:
//   - err: The error returned by a command
//
// Returns:
//   - int: ExitSuccess for nil, the ExitError's code when err wraps one,
//     ExitFailure otherwise
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

// IsExitError checks if err is an ExitError and returns it.
func IsExitError(err error) (*ExitError, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr, true
	}
	return nil, false
}
