package state

import (
	"log/slog"

	"github.com/thenoetrevino/jot/internal/models"
)

// SubmitFunc receives a validated note. It is called at most once per
// successful submission and its outcome is not awaited.
type SubmitFunc func(userID, title, description string)

// AddNoteState is the form controller behind the add note dialog.
// It owns the draft and a validation entry per field. A change event
// re-validates only the field that changed, so the other entry keeps
// whatever it held before.
type AddNoteState struct {
	draft      models.NoteDraft
	validation map[models.NoteField]models.FieldValidation
}

// NewAddNoteState returns a controller with an empty draft and both fields
// marked invalid without a message.
func NewAddNoteState() *AddNoteState {
	s := &AddNoteState{}
	s.Reset()
	return s
}

// Draft returns the current draft.
func (s *AddNoteState) Draft() models.NoteDraft {
	return s.draft
}

// Validation returns the last computed validation for a field.
func (s *AddNoteState) Validation(field models.NoteField) models.FieldValidation {
	if v, ok := s.validation[field]; ok {
		return v
	}
	return models.PristineValidation
}

// Change records a new value for one field and re-validates that field.
func (s *AddNoteState) Change(field models.NoteField, value string) {
	s.draft = s.draft.With(field, value)
	s.validation[field] = models.ValidateField(field, value)
}

// CanSubmit reports whether the submit control should be enabled: true only
// when neither field is flagged invalid.
func (s *AddNoteState) CanSubmit() bool {
	for _, field := range models.NoteFields {
		if s.Validation(field).Invalid {
			return false
		}
	}
	return true
}

// Submit re-checks the draft against the bounds, independent of the
// per-field flags. On success it hands the note to submit exactly once and
// resets. Otherwise nothing happens and false is returned.
func (s *AddNoteState) Submit(userID string, submit SubmitFunc) bool {
	if !s.draft.Valid() {
		slog.Debug("add note submit suppressed", "user_id", userID)
		return false
	}

	d := s.draft
	if submit != nil {
		submit(userID, d.Title, d.Description)
	}
	s.Reset()
	return true
}

// Reset clears the draft and returns both fields to invalid with no message.
func (s *AddNoteState) Reset() {
	s.draft = models.NoteDraft{}
	s.validation = map[models.NoteField]models.FieldValidation{
		models.FieldTitle:       models.PristineValidation,
		models.FieldDescription: models.PristineValidation,
	}
}
