package addnote

import (
	"charm.land/bubbles/v2/key"

	"github.com/thenoetrevino/jot/internal/config"
)

// KeyMap holds the dialog's key bindings
type KeyMap struct {
	Submit    key.Binding
	Close     key.Binding
	NextField key.Binding
	PrevField key.Binding
	Confirm   key.Binding
}

// NewKeyMap builds the dialog bindings from the user's key mappings
func NewKeyMap(km config.KeyMappings) KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys(km.SubmitForm),
			key.WithHelp(km.SubmitForm, "add note"),
		),
		Close: key.NewBinding(
			key.WithKeys(km.CloseForm),
			key.WithHelp(km.CloseForm, "cancel"),
		),
		NextField: key.NewBinding(
			key.WithKeys(km.NextField),
			key.WithHelp(km.NextField, "next"),
		),
		PrevField: key.NewBinding(
			key.WithKeys(km.PrevField),
			key.WithHelp(km.PrevField, "prev"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
	}
}

// ShortHelp lists the bindings shown in the dialog footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Submit, k.Close}
}
