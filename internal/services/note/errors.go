package note

import "errors"

// Validation errors
var (
	ErrEmptyUserID        = errors.New("user ID cannot be empty")
	ErrInvalidTitle       = errors.New("title must be between 3 and 15 characters")
	ErrInvalidDescription = errors.New("description must be between 8 and 200 characters")
	ErrInvalidNoteID      = errors.New("invalid note ID")
)

// Not found errors
var (
	ErrNoteNotFound = errors.New("note not found")
)
