package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"
)

const writeTimeout = 5 * time.Second

// Client connects to the event socket served by a running TUI. Events sent
// through it reach that TUI's bus; Listen receives everything the bus
// relays back, including this client's own events.
type Client struct {
	socketPath string

	mu        sync.Mutex
	conn      net.Conn
	encoder   *json.Encoder
	closed    bool
	listening bool

	lastSequence int64
}

// Compile-time verification that *Client implements EventPublisher
var _ EventPublisher = (*Client)(nil)

// NewClient creates a client for socketPath but does not connect.
func NewClient(socketPath string) *Client {
	return &Client{socketPath: socketPath}
}

// Connect dials the socket. It fails fast when no TUI is serving events.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	dialer := net.Dialer{}
	conn, err := dialer.DialContext(ctx, "unix", c.socketPath)
	if err != nil {
		return fmt.Errorf("failed to dial event socket: %w", err)
	}

	c.conn = conn
	c.encoder = json.NewEncoder(conn)
	c.closed = false
	return nil
}

// SendEvent writes the event to the socket. The write is synchronous, so an
// event sent before Close is delivered.
func (c *Client) SendEvent(event Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil || c.closed {
		return ErrNotConnected
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	// Short write deadline to detect a dead server
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return fmt.Errorf("connection error: %w", err)
	}
	return c.encoder.Encode(Message{
		Version: ProtocolVersion,
		Type:    "event",
		Event:   &event,
	})
}

// Listen returns a channel of events relayed by the server. It closes when
// ctx is done, the connection drops, or the client is closed. A client
// supports one listener.
func (c *Client) Listen(ctx context.Context) (<-chan Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil || c.closed {
		return nil, ErrNotConnected
	}
	if c.listening {
		return nil, ErrAlreadyListening
	}
	c.listening = true

	conn := c.conn
	eventChan := make(chan Event, DefaultBufferSize)

	// Unblock the decoder when the caller goes away
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetReadDeadline(time.Now())
	})

	go func() {
		defer close(eventChan)
		defer stop()
		c.readEvents(ctx, json.NewDecoder(conn), eventChan)
	}()

	return eventChan, nil
}

func (c *Client) readEvents(ctx context.Context, decoder *json.Decoder, eventChan chan<- Event) {
	for {
		var msg Message
		if err := decoder.Decode(&msg); err != nil {
			if ctx.Err() == nil && !c.isClosed() {
				slog.Warn("event socket connection lost", "error", err)
			}
			return
		}

		if msg.Version != 0 && msg.Version != ProtocolVersion {
			slog.Warn("event message with unexpected protocol version",
				"version", msg.Version, "expected", ProtocolVersion)
		}
		if msg.Type != "event" || msg.Event == nil {
			continue
		}

		// Drop duplicates and anything out of order
		if msg.Event.SequenceID <= c.lastSequence {
			continue
		}
		c.lastSequence = msg.Event.SequenceID

		select {
		case eventChan <- *msg.Event:
		case <-ctx.Done():
			return
		}
	}
}

func (c *Client) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Close closes the connection. Safe to call more than once.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.conn == nil {
		c.closed = true
		return nil
	}
	c.closed = true
	return c.conn.Close()
}
