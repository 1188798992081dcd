package components

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/jot/internal/tui/theme"
)

const (
	// noteItemPreviewLines caps how much of the description a list row shows
	noteItemPreviewLines = 2
	noteItemPadding      = 2

	// NoteItemHeight is the number of lines every list row takes
	NoteItemHeight = 1 + noteItemPreviewLines
)

func subtleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
}
