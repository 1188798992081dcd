package models

import "unicode/utf8"

// NoteField names one of the two inputs of a note form
type NoteField string

const (
	FieldTitle       NoteField = "title"
	FieldDescription NoteField = "description"
)

// NoteFields lists the form fields in focus order
var NoteFields = []NoteField{FieldTitle, FieldDescription}

// Length bounds are inclusive and counted in characters (runes).
const (
	TitleMinLength       = 3
	TitleMaxLength       = 15
	DescriptionMinLength = 8
	DescriptionMaxLength = 200
)

const (
	TitleLengthMessage       = "Title must be between 3 and 15 characters"
	DescriptionLengthMessage = "Description must be between 8 and 200 characters"
)

// FieldValidation is the validity of a single form field.
// The zero message with Invalid set is the pristine state of an untouched field.
type FieldValidation struct {
	Invalid bool
	Message string
}

// PristineValidation is the state both fields start in and return to on reset:
// flagged invalid so the form cannot be submitted, but with no message shown.
var PristineValidation = FieldValidation{Invalid: true, Message: ""}

// ValidField is the state of a field whose value is within bounds
var ValidField = FieldValidation{Invalid: false, Message: ""}

// ValidateField checks a single value against the bounds of its field.
// Every guard in the application (submit button, submit handler, note
// service, CLI prompt) goes through this function.
func ValidateField(field NoteField, value string) FieldValidation {
	n := utf8.RuneCountInString(value)
	switch field {
	case FieldTitle:
		if n < TitleMinLength || n > TitleMaxLength {
			return FieldValidation{Invalid: true, Message: TitleLengthMessage}
		}
	case FieldDescription:
		if n < DescriptionMinLength || n > DescriptionMaxLength {
			return FieldValidation{Invalid: true, Message: DescriptionLengthMessage}
		}
	default:
		return FieldValidation{Invalid: true, Message: "unknown field " + string(field)}
	}
	return ValidField
}

// ValidateDraft validates every field of the draft
func ValidateDraft(d NoteDraft) map[NoteField]FieldValidation {
	result := make(map[NoteField]FieldValidation, len(NoteFields))
	for _, field := range NoteFields {
		result[field] = ValidateField(field, d.Value(field))
	}
	return result
}

// Valid reports whether the draft passes every bound
func (d NoteDraft) Valid() bool {
	for _, v := range ValidateDraft(d) {
		if v.Invalid {
			return false
		}
	}
	return true
}
