package cli

import (
	"errors"

	"github.com/thenoetrevino/jot/internal/services/note"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures, or any error that
	// doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags or invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested note was not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or unreadable input data (e.g. stdin).
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Title or description outside their length bounds, empty user.
	ExitValidation = 5
)

// ErrUsage marks errors caused by how a command was invoked
var ErrUsage = errors.New("usage error")

// ErrInput marks errors reading user-supplied data
var ErrInput = errors.New("input error")

// ExitCodeFor maps an error returned by a command to a process exit code
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, note.ErrNoteNotFound):
		return ExitNotFound
	case errors.Is(err, note.ErrInvalidTitle),
		errors.Is(err, note.ErrInvalidDescription),
		errors.Is(err, note.ErrEmptyUserID),
		errors.Is(err, note.ErrInvalidNoteID):
		return ExitValidation
	case errors.Is(err, ErrUsage):
		return ExitUsage
	case errors.Is(err, ErrInput):
		return ExitDataErr
	default:
		return ExitError
	}
}

// reportedError marks an error the formatter has already shown to the user
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error {
	return e.error
}

// MarkReported wraps err so the entrypoint does not print it a second time
func MarkReported(err error) error {
	if err == nil {
		return nil
	}
	return reportedError{err}
}

// IsReported reports whether err passed through MarkReported
func IsReported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}
