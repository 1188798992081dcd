package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Notes
	AddNote    string `yaml:"add_note"`
	DeleteNote string `yaml:"delete_note"`

	// Add note dialog
	SubmitForm string `yaml:"submit_form"`
	NextField  string `yaml:"next_field"`
	PrevField  string `yaml:"prev_field"`
	CloseForm  string `yaml:"close_form"`

	// Navigation
	PrevNote string `yaml:"prev_note"`
	NextNote string `yaml:"next_note"`

	// Other
	Quit string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddNote:    "n",
		DeleteNote: "d",

		SubmitForm: "ctrl+s",
		NextField:  "tab",
		PrevField:  "shift+tab",
		CloseForm:  "esc",

		PrevNote: "k",
		NextNote: "j",

		Quit: "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddNote == "" {
		k.AddNote = defaults.AddNote
	}
	if k.DeleteNote == "" {
		k.DeleteNote = defaults.DeleteNote
	}
	if k.SubmitForm == "" {
		k.SubmitForm = defaults.SubmitForm
	}
	if k.NextField == "" {
		k.NextField = defaults.NextField
	}
	if k.PrevField == "" {
		k.PrevField = defaults.PrevField
	}
	if k.CloseForm == "" {
		k.CloseForm = defaults.CloseForm
	}
	if k.PrevNote == "" {
		k.PrevNote = defaults.PrevNote
	}
	if k.NextNote == "" {
		k.NextNote = defaults.NextNote
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
