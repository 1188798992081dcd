package models

import (
	"time"

	"github.com/thenoetrevino/jot/internal/types"
)

// Note represents a persisted note owned by a single user
type Note struct {
	ID          types.NoteID `json:"id"`
	UUID        string       `json:"uuid"` // Public reference, stable across exports
	UserID      string       `json:"user_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// GetID lets the CLI output formatter print just the ID in quiet mode
func (n *Note) GetID() int {
	return n.ID.ToInt()
}

// NoteDraft is the unsaved content of the add note dialog.
// It only lives while the dialog is open.
type NoteDraft struct {
	Title       string
	Description string
}

// Value returns the draft value for the given field
func (d NoteDraft) Value(field NoteField) string {
	switch field {
	case FieldTitle:
		return d.Title
	case FieldDescription:
		return d.Description
	}
	return ""
}

// With returns a copy of the draft with one field replaced
func (d NoteDraft) With(field NoteField, value string) NoteDraft {
	switch field {
	case FieldTitle:
		d.Title = value
	case FieldDescription:
		d.Description = value
	}
	return d
}

// IsEmpty reports whether nothing has been typed into the draft
func (d NoteDraft) IsEmpty() bool {
	return d.Title == "" && d.Description == ""
}
