package forms

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/jot/internal/tui/theme"
)

func typeText(f *Form, s string) {
	for _, r := range s {
		f.Update(tea.KeyPressMsg(tea.Key{Code: r, Text: string(r)}))
	}
}

func newTestForm() (*Form, *TextInput, *TextArea, *Button) {
	title := NewTextInput("title", "Title", "", 5)
	body := NewTextArea("body", "Body", "", 0)
	ok := NewButton("ok", "OK", func() string { return theme.Create })
	return NewForm(title, body, ok), title, body, ok
}

func TestFocusCycleWraps(t *testing.T) {
	f, title, _, ok := newTestForm()
	f.Init()
	assert.Equal(t, "title", f.FocusedKey())
	assert.True(t, title.Focused())

	f.FocusNext()
	assert.Equal(t, "body", f.FocusedKey())
	assert.False(t, title.Focused())

	f.FocusNext()
	assert.Equal(t, "ok", f.FocusedKey())
	assert.True(t, ok.Focused())

	f.FocusNext()
	assert.Equal(t, "title", f.FocusedKey())

	f.FocusPrev()
	assert.Equal(t, "ok", f.FocusedKey())
}

func TestUpdateGoesToFocusedField(t *testing.T) {
	f, title, body, _ := newTestForm()
	f.Init()

	typeText(f, "hello world")
	assert.Equal(t, "hello", title.Value(), "char limit applies")
	assert.Empty(t, body.Value())

	f.FocusNext()
	typeText(f, "note body")
	assert.Equal(t, "note body", body.Value())
}

func TestResetClearsValuesAndFocus(t *testing.T) {
	f, title, body, _ := newTestForm()
	f.Init()
	title.SetValue("abc")
	body.SetValue("some text")
	f.FocusNext()

	f.Reset()

	assert.Empty(t, title.Value())
	assert.Empty(t, body.Value())
	assert.False(t, body.Focused())
	assert.Equal(t, "title", f.FocusedKey())
}

func TestGet(t *testing.T) {
	f, title, _, _ := newTestForm()
	require.NotNil(t, f.Get("title"))
	assert.Same(t, title, f.Get("title"))
	assert.Nil(t, f.Get("missing"))
}

func TestHintRendering(t *testing.T) {
	ti := NewTextInput("title", "Note Title", "", 0)
	ti.SetHint("This will be the note title", false)
	assert.Contains(t, ti.View(), "This will be the note title")
	assert.Contains(t, ti.View(), "Note Title")

	ti.SetHint("Title must be between 3 and 15 characters", true)
	assert.Contains(t, ti.View(), "Title must be between 3 and 15 characters")
}

func TestButtonDisabled(t *testing.T) {
	b := NewButton("add", "Add", nil)
	assert.False(t, b.Disabled())

	b.SetDisabled(true)
	assert.True(t, b.Disabled())
	assert.Contains(t, b.View(), "Add")
}

func TestEmptyForm(t *testing.T) {
	f := NewForm()
	assert.Nil(t, f.Init())
	assert.Nil(t, f.Update(tea.KeyPressMsg(tea.Key{Code: 'a', Text: "a"})))
	assert.Equal(t, "", f.FocusedKey())
}

func TestTextAreaLimitIsInRunes(t *testing.T) {
	body := NewTextArea("body", "Body", "", 4)
	body.Focus()

	for _, r := range "日本語のテキスト" {
		body.Update(tea.KeyPressMsg(tea.Key{Code: r, Text: string(r)}))
	}
	assert.Equal(t, "日本語の", body.Value())

	body.SetValue("ab\ncd\nef")
	assert.Equal(t, "ab\nc", body.Value(), "newlines count toward the limit")
}
