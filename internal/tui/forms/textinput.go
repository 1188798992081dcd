package forms

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInput is a single-line text input field with a label and a hint line
type TextInput struct {
	key       string
	label     string
	hint      string
	hintError bool
	input     textinput.Model
}

// NewTextInput creates a new text input field. A charLimit of 0 means unlimited.
func NewTextInput(key, label, placeholder string, charLimit int) *TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = charLimit

	return &TextInput{
		key:   key,
		label: label,
		input: ti,
	}
}

// Update handles messages
func (t *TextInput) Update(msg tea.Msg) (Field, tea.Cmd) {
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

// View renders the label, input and hint
func (t *TextInput) View() string {
	return labelStyle().Render(t.label) + "\n" +
		t.input.View() + "\n" +
		renderHint(t.hint, t.hintError)
}

// SetHint sets the text shown under the input
func (t *TextInput) SetHint(text string, isError bool) {
	t.hint = text
	t.hintError = isError
}

// SetWidth sets the visible width of the input
func (t *TextInput) SetWidth(w int) {
	t.input.SetWidth(w)
}

// Focus focuses the text input
func (t *TextInput) Focus() tea.Cmd {
	return t.input.Focus()
}

// Blur removes focus
func (t *TextInput) Blur() {
	t.input.Blur()
}

// Focused returns whether the input is focused
func (t *TextInput) Focused() bool {
	return t.input.Focused()
}

// Key returns the field key
func (t *TextInput) Key() string {
	return t.key
}

// Value returns the current value
func (t *TextInput) Value() string {
	return t.input.Value()
}

// SetValue replaces the current value
func (t *TextInput) SetValue(s string) {
	t.input.SetValue(s)
}

// Reset clears the value
func (t *TextInput) Reset() {
	t.input.Reset()
}
