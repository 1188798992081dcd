package notifications

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddAndClear(t *testing.T) {
	s := NewState()
	assert.False(t, s.HasAny())

	s.Add(LevelError, "Error creating note")
	s.Add(LevelInfo, "Note deleted")
	assert.Len(t, s.All(), 2)
	assert.Equal(t, LevelError, s.All()[0].Level)

	s.Clear()
	assert.False(t, s.HasAny())
}

func TestLayersNeedWindowSize(t *testing.T) {
	s := NewState()
	s.Add(LevelInfo, "hello")
	assert.Empty(t, s.Layers())

	s.SetWindowSize(80, 24)
	assert.Len(t, s.Layers(), 1)
}

func TestLayersDropOffscreenBanners(t *testing.T) {
	s := NewState()
	s.SetWindowSize(80, 6)
	for range 5 {
		s.Add(LevelWarning, "careful")
	}
	// Each banner is four rows tall, so only one fits in six rows
	assert.Len(t, s.Layers(), 1)
}

func TestRenderContainsMessage(t *testing.T) {
	out := Render(Notification{Level: LevelError, Message: "store unavailable"})
	assert.Contains(t, out, "store unavailable")
	assert.Contains(t, out, "Error")
}
