package forms

import (
	"unicode/utf8"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// TextArea is a multi-line text input field with a label and a hint line
type TextArea struct {
	key       string
	label     string
	hint      string
	hintError bool
	charLimit int // in runes, newlines included; 0 means no limit
	textarea  textarea.Model
}

// NewTextArea creates a new text area field. charLimit counts runes the way
// utf8.RuneCountInString does; the bubbles limit counts cell width and lets
// newlines through, so it stays off and the field clamps after each update.
func NewTextArea(key, label, placeholder string, charLimit int) *TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.SetHeight(5)

	return &TextArea{
		key:       key,
		label:     label,
		charLimit: charLimit,
		textarea:  ta,
	}
}

// Update handles messages. Input past the limit is cut from the end.
func (t *TextArea) Update(msg tea.Msg) (Field, tea.Cmd) {
	var cmd tea.Cmd
	t.textarea, cmd = t.textarea.Update(msg)
	t.clamp()
	return t, cmd
}

func (t *TextArea) clamp() {
	v := t.textarea.Value()
	if t.charLimit <= 0 || utf8.RuneCountInString(v) <= t.charLimit {
		return
	}
	t.textarea.SetValue(string([]rune(v)[:t.charLimit]))
}

// View renders the label, text area and hint
func (t *TextArea) View() string {
	return labelStyle().Render(t.label) + "\n" +
		t.textarea.View() + "\n" +
		renderHint(t.hint, t.hintError)
}

// SetHint sets the text shown under the text area
func (t *TextArea) SetHint(text string, isError bool) {
	t.hint = text
	t.hintError = isError
}

// SetWidth sets the visible width of the text area
func (t *TextArea) SetWidth(w int) {
	t.textarea.SetWidth(w)
}

// Focus focuses the text area
func (t *TextArea) Focus() tea.Cmd {
	return t.textarea.Focus()
}

// Blur removes focus
func (t *TextArea) Blur() {
	t.textarea.Blur()
}

// Focused returns whether the textarea is focused
func (t *TextArea) Focused() bool {
	return t.textarea.Focused()
}

// Key returns the field key
func (t *TextArea) Key() string {
	return t.key
}

// Value returns the current value
func (t *TextArea) Value() string {
	return t.textarea.Value()
}

// SetValue replaces the current value, clamped to the limit
func (t *TextArea) SetValue(s string) {
	t.textarea.SetValue(s)
	t.clamp()
}

// Reset clears the value
func (t *TextArea) Reset() {
	t.textarea.Reset()
}
