// Package addnote implements the modal dialog that collects a new note.
package addnote

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"

	"github.com/thenoetrevino/jot/internal/models"
	"github.com/thenoetrevino/jot/internal/tui/forms"
	"github.com/thenoetrevino/jot/internal/tui/state"
	"github.com/thenoetrevino/jot/internal/tui/theme"
)

const (
	keyTitle       = string(models.FieldTitle)
	keyDescription = string(models.FieldDescription)
	keyCancel      = "cancel"
	keySubmit      = "submit"
)

const (
	titleHelper       = "This will be the note title"
	descriptionHelper = "This will be the note description"
)

// Props are supplied by the owner of the dialog.
type Props struct {
	// UserID is handed to SubmitNote untouched
	UserID string
	// OnClose is called once whenever the dialog closes itself
	OnClose func()
	// SubmitNote dispatches a validated note. The returned command is run by
	// the event loop; the dialog does not wait for it.
	SubmitNote func(userID, title, description string) tea.Cmd
}

// Dialog is the add note modal. It reacts to open/close transitions and owns
// a form controller that it resets on every close.
type Dialog struct {
	props Props
	keys  KeyMap
	ctrl  *state.AddNoteState
	open  bool

	form        *forms.Form
	title       *forms.TextInput
	description *forms.TextArea
	cancel      *forms.Button
	submit      *forms.Button
}

// New creates a closed dialog
func New(props Props, keys KeyMap) *Dialog {
	d := &Dialog{
		props: props,
		keys:  keys,
		ctrl:  state.NewAddNoteState(),
	}

	d.title = forms.NewTextInput(keyTitle, "Note Title", "Groceries", models.TitleMaxLength)
	d.description = forms.NewTextArea(keyDescription, "Note Description", "What is this note about?", models.DescriptionMaxLength)
	d.cancel = forms.NewButton(keyCancel, "Cancel", func() string { return theme.Delete })
	d.submit = forms.NewButton(keySubmit, "Add", func() string { return theme.Create })
	d.form = forms.NewForm(d.title, d.description, d.cancel, d.submit)

	d.SetWidth(dialogInnerWidth)
	d.sync()
	return d
}

// SetOpen applies the owner's visibility. Opening focuses the title field.
// Closing from outside resets the form without calling OnClose.
func (d *Dialog) SetOpen(isOpen bool) tea.Cmd {
	switch {
	case isOpen && !d.open:
		d.open = true
		return d.form.Init()
	case !isOpen && d.open:
		d.reset()
		d.open = false
	}
	return nil
}

// IsOpen reports whether the dialog is showing
func (d *Dialog) IsOpen() bool {
	return d.open
}

// SetUserID updates the identity passed to SubmitNote
func (d *Dialog) SetUserID(userID string) {
	d.props.UserID = userID
}

// SetWidth sets the width available to the inputs
func (d *Dialog) SetWidth(w int) {
	d.title.SetWidth(w)
	d.description.SetWidth(w)
}

// Draft returns the text typed so far
func (d *Dialog) Draft() models.NoteDraft {
	return d.ctrl.Draft()
}

// Validation returns the validation state shown for a field
func (d *Dialog) Validation(field models.NoteField) models.FieldValidation {
	return d.ctrl.Validation(field)
}

// SubmitEnabled reports whether the Add button accepts input
func (d *Dialog) SubmitEnabled() bool {
	return !d.submit.Disabled()
}

// FocusedField returns the key of the focused control
func (d *Dialog) FocusedField() string {
	return d.form.FocusedKey()
}

// Update handles a message while the dialog is open
func (d *Dialog) Update(msg tea.Msg) tea.Cmd {
	if !d.open {
		return nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch {
		case key.Matches(keyMsg, d.keys.Close):
			d.Close()
			return nil
		case key.Matches(keyMsg, d.keys.Submit):
			return d.trySubmit()
		case key.Matches(keyMsg, d.keys.NextField):
			return d.form.FocusNext()
		case key.Matches(keyMsg, d.keys.PrevField):
			return d.form.FocusPrev()
		case key.Matches(keyMsg, d.keys.Confirm):
			switch d.form.FocusedKey() {
			case keyTitle:
				return d.trySubmit()
			case keyCancel:
				d.Close()
				return nil
			case keySubmit:
				if d.submit.Disabled() {
					return nil
				}
				return d.trySubmit()
			}
			// enter in the description is a newline
		}
	}

	return d.forward(msg)
}

// Close resets the form and notifies the owner. Cancel and the close key
// both end up here.
func (d *Dialog) Close() {
	if !d.open {
		return
	}
	d.reset()
	d.open = false
	if d.props.OnClose != nil {
		d.props.OnClose()
	}
}

// forward passes msg to the focused input and re-validates it if its value changed
func (d *Dialog) forward(msg tea.Msg) tea.Cmd {
	field := models.NoteField(d.form.FocusedKey())
	before, tracked := d.value(field)

	cmd := d.form.Update(msg)

	if after, _ := d.value(field); tracked && after != before {
		d.ctrl.Change(field, after)
		d.sync()
	}
	return cmd
}

func (d *Dialog) value(field models.NoteField) (string, bool) {
	switch field {
	case models.FieldTitle:
		return d.title.Value(), true
	case models.FieldDescription:
		return d.description.Value(), true
	}
	return "", false
}

// trySubmit runs the controller's authoritative submit. On success the
// dialog closes through the same path as cancel.
func (d *Dialog) trySubmit() tea.Cmd {
	var cmd tea.Cmd
	submitted := d.ctrl.Submit(d.props.UserID, func(userID, title, description string) {
		if d.props.SubmitNote != nil {
			cmd = d.props.SubmitNote(userID, title, description)
		}
	})
	if !submitted {
		return nil
	}
	d.Close()
	return cmd
}

func (d *Dialog) reset() {
	d.ctrl.Reset()
	d.form.Reset()
	d.sync()
}

// sync pushes controller state into the widgets
func (d *Dialog) sync() {
	setHint(d.title, d.ctrl.Validation(models.FieldTitle), titleHelper)
	setHint(d.description, d.ctrl.Validation(models.FieldDescription), descriptionHelper)
	d.submit.SetDisabled(!d.ctrl.CanSubmit())
}

type hinted interface {
	SetHint(text string, isError bool)
}

// setHint shows the validation message while a field is invalid (blank for
// an untouched field) and the helper text once it is valid
func setHint(f hinted, v models.FieldValidation, helper string) {
	if v.Invalid {
		f.SetHint(v.Message, true)
		return
	}
	f.SetHint(helper, false)
}
