package events

import "context"

// EventPublisher defines the interface for sending and receiving events.
// Services publish through it; the TUI listens to refresh its note list.
type EventPublisher interface {
	// SendEvent delivers an event to every current listener
	SendEvent(event Event) error

	// Listen registers a listener that receives events until ctx is done
	Listen(ctx context.Context) (<-chan Event, error)

	// Close stops delivery and closes every listener channel
	Close() error
}

// Compile-time verification that *Bus implements EventPublisher
var _ EventPublisher = (*Bus)(nil)
