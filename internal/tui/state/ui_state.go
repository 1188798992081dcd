package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode  Mode = iota // Browsing the notes list
	AddNoteMode             // The add note dialog is open
)

func (m Mode) String() string {
	switch m {
	case AddNoteMode:
		return "add-note"
	default:
		return "normal"
	}
}

// UIState manages the user interface state: terminal dimensions and the
// current interaction mode.
type UIState struct {
	width  int
	height int
	mode   Mode
}

// NewUIState creates a new UIState in NormalMode.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

// Width returns the terminal width in characters.
func (s *UIState) Width() int { return s.width }

// Height returns the terminal height in characters.
func (s *UIState) Height() int { return s.height }

// SetSize records new terminal dimensions. Negative values are clamped to zero.
func (s *UIState) SetSize(width, height int) {
	s.width = max(width, 0)
	s.height = max(height, 0)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode { return s.mode }

// SetMode switches the interaction mode.
func (s *UIState) SetMode(mode Mode) { s.mode = mode }
