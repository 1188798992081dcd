package huhforms

import (
	"errors"

	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"

	"github.com/thenoetrevino/jot/internal/models"
)

// CreateNoteForm creates a huh form that prompts for a new note.
// Both inputs are checked with the same bounds as the add note dialog.
// Values are written through the pointers as the user types.
func CreateNoteForm(title, description *string) *huh.Form {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key(string(models.FieldTitle)).
				Title("Note Title").
				Description("This will be the note title").
				Placeholder("Groceries").
				CharLimit(models.TitleMaxLength).
				Value(title).
				Validate(fieldValidator(models.FieldTitle)),
			huh.NewText().
				Key(string(models.FieldDescription)).
				Title("Note Description").
				Description("This will be the note description").
				CharLimit(models.DescriptionMaxLength).
				Lines(5).
				Value(description).
				Validate(fieldValidator(models.FieldDescription)),
		),
	)
	return form.WithKeyMap(noteKeyMap())
}

// fieldValidator adapts models.ValidateField to huh's validator signature
func fieldValidator(field models.NoteField) func(string) error {
	return func(s string) error {
		if v := models.ValidateField(field, s); v.Invalid {
			return errors.New(v.Message)
		}
		return nil
	}
}

// noteKeyMap lets shift+enter add description lines and esc abandon the
// prompt, matching the add note dialog.
func noteKeyMap() *huh.KeyMap {
	keymap := huh.NewDefaultKeyMap()

	keymap.Text.NewLine = key.NewBinding(
		key.WithKeys("shift+enter", "alt+enter", "ctrl+j"),
		key.WithHelp("shift+enter", "new line"),
	)
	keymap.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"))

	return keymap
}
