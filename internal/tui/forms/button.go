package forms

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/jot/internal/tui/theme"
)

// Button is a focusable action. Activation is handled by the owner of the
// form, which checks FocusedKey and Disabled on enter.
type Button struct {
	key      string
	label    string
	color    func() string
	focused  bool
	disabled bool
}

// NewButton creates a button whose accent is read from color at render time
func NewButton(key, label string, color func() string) *Button {
	return &Button{key: key, label: label, color: color}
}

// Update is a no-op; buttons hold no editable state
func (b *Button) Update(tea.Msg) (Field, tea.Cmd) {
	return b, nil
}

// View renders the button
func (b *Button) View() string {
	accent := theme.Highlight
	if b.color != nil {
		accent = b.color()
	}

	style := lipgloss.NewStyle().
		Padding(0, 2).
		Border(lipgloss.RoundedBorder())

	switch {
	case b.disabled:
		style = style.
			Foreground(lipgloss.Color(theme.Subtle)).
			BorderForeground(lipgloss.Color(theme.Subtle)).
			Faint(true)
	case b.focused:
		style = style.
			Bold(true).
			Foreground(lipgloss.Color(theme.Normal)).
			Background(lipgloss.Color(accent)).
			BorderForeground(lipgloss.Color(accent))
	default:
		style = style.
			Foreground(lipgloss.Color(accent)).
			BorderForeground(lipgloss.Color(accent))
	}
	return style.Render(b.label)
}

// Focus focuses the button
func (b *Button) Focus() tea.Cmd {
	b.focused = true
	return nil
}

// Blur removes focus
func (b *Button) Blur() {
	b.focused = false
}

// Focused returns whether the button is focused
func (b *Button) Focused() bool {
	return b.focused
}

// Key returns the field key
func (b *Button) Key() string {
	return b.key
}

// Reset is a no-op; disabled state is driven by the owner
func (b *Button) Reset() {}

// SetDisabled enables or disables the button
func (b *Button) SetDisabled(disabled bool) {
	b.disabled = disabled
}

// Disabled reports whether the button is disabled
func (b *Button) Disabled() bool {
	return b.disabled
}
