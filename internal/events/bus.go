package events

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultBufferSize is the per-listener channel capacity
const DefaultBufferSize = 16

// Bus is an in-process EventPublisher. Each listener gets a buffered
// channel; a listener whose buffer is full misses the event instead of
// blocking the publisher.
type Bus struct {
	mu         sync.RWMutex
	listeners  map[chan Event]struct{}
	bufferSize int
	closed     bool
	done       chan struct{} // closed by Close
	sequence   atomic.Int64
}

// NewBus creates an event bus. bufferSize <= 0 uses DefaultBufferSize.
func NewBus(bufferSize int) *Bus {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &Bus{
		listeners:  make(map[chan Event]struct{}),
		bufferSize: bufferSize,
		done:       make(chan struct{}),
	}
}

// SendEvent stamps the event with a sequence ID (and a timestamp if unset)
// and fans it out to all listeners without blocking.
func (b *Bus) SendEvent(event Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrBusClosed
	}

	event.SequenceID = b.sequence.Add(1)
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	var dropped bool
	for ch := range b.listeners {
		select {
		case ch <- event:
		default:
			dropped = true
		}
	}
	if dropped {
		return ErrListenerFull
	}
	return nil
}

// Listen returns a channel receiving every event sent after the call.
// The channel is closed when ctx is done or the bus is closed.
func (b *Bus) Listen(ctx context.Context) (<-chan Event, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrBusClosed
	}

	ch := make(chan Event, b.bufferSize)
	b.listeners[ch] = struct{}{}

	go func() {
		select {
		case <-ctx.Done():
			b.unsubscribe(ch)
		case <-b.done:
		}
	}()

	return ch, nil
}

func (b *Bus) unsubscribe(ch chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.listeners[ch]; ok {
		delete(b.listeners, ch)
		close(ch)
	}
}

// Close closes every listener channel. Further sends fail with ErrBusClosed.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	close(b.done)
	for ch := range b.listeners {
		delete(b.listeners, ch)
		close(ch)
	}
	return nil
}
