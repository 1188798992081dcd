// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Returns nil if content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x, y := CenterOffset(content, screenWidth, screenHeight)
	return lipgloss.NewLayer(content).X(x).Y(y)
}

// CenterOffset returns the top-left position that centers content on the
// screen, clamped to the screen origin.
func CenterOffset(content string, screenWidth int, screenHeight int) (int, int) {
	x := (screenWidth - lipgloss.Width(content)) / 2
	y := (screenHeight - lipgloss.Height(content)) / 2
	return max(x, 0), max(y, 0)
}

// Compose stacks the base view and any overlay layers into one canvas.
// Nil overlays are skipped.
func Compose(base string, overlays ...*lipgloss.Layer) string {
	all := []*lipgloss.Layer{lipgloss.NewLayer(base)}
	for _, l := range overlays {
		if l != nil {
			all = append(all, l)
		}
	}
	return lipgloss.NewCanvas(all...).Render()
}
