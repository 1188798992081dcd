package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

type StatusBarProps struct {
	Width int
	Left  string
	Right string
}

// RenderStatusBar renders a status bar with left and right aligned text
func RenderStatusBar(props StatusBarProps) string {
	leftRendered := subtleStyle().Render(props.Left)
	rightRendered := subtleStyle().Render(props.Right)

	gapWidth := max(props.Width-lipgloss.Width(leftRendered)-lipgloss.Width(rightRendered), 1)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, strings.Repeat(" ", gapWidth), rightRendered)
}
