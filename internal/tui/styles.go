package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/jot/internal/tui/theme"
)

const (
	listWidthDivisor = 3
	minListWidth     = 24
	statusBarHeight  = 1
	paneBorderHeight = 2

	// listIndicatorLines reserves the "more above" and "more below" lines
	listIndicatorLines = 2
)

func paneStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Border))
}

func emptyStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Italic(true)
}

func indicatorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
}
