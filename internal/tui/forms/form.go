package forms

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

// Field is the interface that all form fields must implement
type Field interface {
	// Update handles messages and updates the field
	Update(tea.Msg) (Field, tea.Cmd)

	// View renders the field
	View() string

	// Focus focuses the field
	Focus() tea.Cmd

	// Blur removes focus from the field
	Blur()

	// Focused returns whether the field is focused
	Focused() bool

	// Key returns the field's key (used to retrieve values)
	Key() string

	// Reset clears the field's value
	Reset()
}

// Form manages focus across a collection of fields. Key handling beyond
// forwarding is left to the owner so it can bind its own keys.
type Form struct {
	fields       []Field
	focusedIndex int
}

// NewForm creates a new form with the given fields
func NewForm(fields ...Field) *Form {
	return &Form{fields: fields}
}

// Init focuses the first field
func (f *Form) Init() tea.Cmd {
	return f.FocusIndex(0)
}

// Update forwards a message to the focused field
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	var cmd tea.Cmd
	f.fields[f.focusedIndex], cmd = f.fields[f.focusedIndex].Update(msg)
	return cmd
}

// FocusNext moves focus forward, wrapping past the last field
func (f *Form) FocusNext() tea.Cmd {
	return f.FocusIndex(f.focusedIndex + 1)
}

// FocusPrev moves focus backward, wrapping before the first field
func (f *Form) FocusPrev() tea.Cmd {
	return f.FocusIndex(f.focusedIndex - 1)
}

// FocusIndex blurs every field and focuses the one at i (wrapped into range)
func (f *Form) FocusIndex(i int) tea.Cmd {
	n := len(f.fields)
	if n == 0 {
		return nil
	}
	f.focusedIndex = ((i % n) + n) % n

	for _, field := range f.fields {
		field.Blur()
	}
	return f.fields[f.focusedIndex].Focus()
}

// FocusedKey returns the key of the focused field, or "" for an empty form
func (f *Form) FocusedKey() string {
	if len(f.fields) == 0 {
		return ""
	}
	return f.fields[f.focusedIndex].Key()
}

// Blur removes focus from every field
func (f *Form) Blur() {
	for _, field := range f.fields {
		field.Blur()
	}
}

// Reset clears every field and points focus back at the first one
func (f *Form) Reset() {
	for _, field := range f.fields {
		field.Reset()
		field.Blur()
	}
	f.focusedIndex = 0
}

// Get retrieves a field by key
func (f *Form) Get(key string) Field {
	for _, field := range f.fields {
		if field.Key() == key {
			return field
		}
	}
	return nil
}

// View renders the fields top to bottom
func (f *Form) View() string {
	views := make([]string, 0, len(f.fields))
	for _, field := range f.fields {
		views = append(views, field.View())
	}
	return strings.Join(views, "\n\n")
}
