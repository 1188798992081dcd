package events

import (
	"errors"
	"log/slog"
)

// Publish sends an event if a publisher is configured.
// Delivery problems are logged, never returned: a missed refresh must not
// fail the write that caused it.
func Publish(client EventPublisher, event Event) {
	if client == nil {
		return // No bus (e.g., in tests or one-shot CLI commands)
	}

	err := client.SendEvent(event)
	switch {
	case err == nil:
	case errors.Is(err, ErrListenerFull):
		slog.Debug("event dropped by slow listener",
			"event_type", event.Type,
			"note_id", event.NoteID)
	default:
		slog.Warn("event publish failed",
			"event_type", event.Type,
			"note_id", event.NoteID,
			"error", err)
	}
}
