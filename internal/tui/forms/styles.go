package forms

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/jot/internal/tui/theme"
)

func labelStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Title))
}

// hintStyle renders helper text, or error text in the delete color
func hintStyle(isError bool) lipgloss.Style {
	if isError {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Delete))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
}

func renderHint(text string, isError bool) string {
	// Keep the line even when empty so the layout doesn't jump
	if text == "" {
		return " "
	}
	return hintStyle(isError).Render(text)
}
