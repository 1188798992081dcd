package events

import (
	"time"

	"github.com/thenoetrevino/jot/internal/types"
)

// EventType indicates what kind of change occurred
type EventType string

const (
	EventNoteCreated EventType = "note_created"
	EventNoteDeleted EventType = "note_deleted"
)

// Event represents a note store change notification
type Event struct {
	Type       EventType    `json:"type"`
	NoteID     types.NoteID `json:"note_id"`
	UserID     string       `json:"user_id"`     // For filtering - whose notes were modified
	Timestamp  time.Time    `json:"timestamp"`   // When the event occurred
	SequenceID int64        `json:"sequence_id"` // Monotonically increasing sequence number for ordering
}

// ProtocolVersion is the version of the socket wire format
const ProtocolVersion = 1

// Message wraps an event for the socket wire protocol, one JSON object per line
type Message struct {
	Version int    `json:"version,omitempty"`
	Type    string `json:"type"` // "event"
	Event   *Event `json:"event,omitempty"`
}
