// Package notifications holds transient user-facing messages and renders them
// as floating banners.
package notifications

import "charm.land/lipgloss/v2"

// Level represents the severity of a notification.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

// Notification is a single message with a severity level.
type Notification struct {
	Level   Level
	Message string
}

// State manages notification display state.
type State struct {
	items        []Notification
	windowWidth  int
	windowHeight int
}

// NewState creates a State with no notifications.
func NewState() *State {
	return &State{}
}

// Add appends a notification.
func (s *State) Add(level Level, message string) {
	s.items = append(s.items, Notification{Level: level, Message: message})
}

// Clear removes all notifications.
func (s *State) Clear() {
	s.items = nil
}

// All returns all current notifications.
func (s *State) All() []Notification {
	return s.items
}

// HasAny returns true if there are any notifications.
func (s *State) HasAny() bool {
	return len(s.items) > 0
}

// SetWindowSize updates the window dimensions used for positioning.
func (s *State) SetWindowSize(width, height int) {
	s.windowWidth = width
	s.windowHeight = height
}

// Layers renders every notification as a layer stacked down the top-right
// corner. Banners that would run off the bottom of the screen are dropped.
func (s *State) Layers() []*lipgloss.Layer {
	var out []*lipgloss.Layer
	if s.windowWidth == 0 {
		return out
	}

	row := 0
	for _, n := range s.items {
		view := Render(n)
		height := lipgloss.Height(view)
		if row+height >= s.windowHeight {
			break
		}

		col := max(s.windowWidth-lipgloss.Width(view)-1, 0)
		out = append(out, lipgloss.NewLayer(view).X(col).Y(row))
		row += height + 1
	}
	return out
}
