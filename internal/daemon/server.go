// Package daemon relays note events between jot processes. The TUI hosts a
// Server on a Unix socket in front of its event bus, so notes written by
// `jot note` commands refresh an open TUI.
package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/thenoetrevino/jot/internal/events"
)

// ErrAlreadyRunning is returned when another process already serves the socket
var ErrAlreadyRunning = errors.New("another jot process is serving events")

const (
	clientBufferSize = 16
	dialTimeout     = 500 * time.Millisecond
)

// client represents a connected socket client
type client struct {
	conn      net.Conn
	send      chan events.Message
	closeOnce sync.Once // Ensures send channel is closed only once
}

// Server relays events between socket clients and an events.Bus
type Server struct {
	socketPath string
	listener   net.Listener
	bus        *events.Bus
	metrics    *Metrics

	mu      sync.RWMutex
	clients map[*client]struct{}

	shutdownOnce sync.Once
}

// NewServer listens on socketPath. A stale socket file left by a crashed
// process is replaced; a live one yields ErrAlreadyRunning.
func NewServer(socketPath string, bus *events.Bus) (*Server, error) {
	if err := os.MkdirAll(filepath.Dir(socketPath), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create socket directory: %w", err)
	}

	if _, err := os.Stat(socketPath); err == nil {
		conn, dialErr := net.DialTimeout("unix", socketPath, dialTimeout)
		if dialErr == nil {
			_ = conn.Close()
			return nil, ErrAlreadyRunning
		}
		if err := os.Remove(socketPath); err != nil {
			return nil, fmt.Errorf("failed to remove stale socket: %w", err)
		}
	}

	lc := net.ListenConfig{}
	listener, err := lc.Listen(context.Background(), "unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create socket listener: %w", err)
	}

	return &Server{
		socketPath: socketPath,
		listener:   listener,
		bus:        bus,
		metrics:    NewMetrics(),
		clients:    make(map[*client]struct{}),
	}, nil
}

// Metrics returns the server's counters
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Start accepts clients and forwards bus events to them until ctx is done
// or the bus closes, then shuts down.
func (s *Server) Start(ctx context.Context) error {
	busEvents, err := s.bus.Listen(ctx)
	if err != nil {
		_ = s.Shutdown()
		return fmt.Errorf("failed to listen on event bus: %w", err)
	}

	slog.Info("event relay listening", "socket", s.socketPath)
	go s.acceptLoop()

	for {
		select {
		case <-ctx.Done():
			return s.Shutdown()
		case event, ok := <-busEvents:
			if !ok {
				return s.Shutdown()
			}
			s.broadcast(event)
		}
	}
}

// acceptLoop accepts incoming client connections until the listener closes
func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if !errors.Is(err, net.ErrClosed) {
				slog.Error("event relay accept failed", "error", err)
			}
			return
		}

		c := &client{
			conn: conn,
			send: make(chan events.Message, clientBufferSize),
		}

		s.mu.Lock()
		s.clients[c] = struct{}{}
		s.metrics.ConnectedClients.Store(int32(len(s.clients)))
		s.mu.Unlock()

		slog.Debug("event client connected", "clients", s.metrics.ConnectedClients.Load())

		go s.handleClient(c)
		go s.clientWriter(c)
	}
}

// broadcast queues an event for every client without blocking
func (s *Server) broadcast(event events.Event) {
	msg := events.Message{
		Version: events.ProtocolVersion,
		Type:    "event",
		Event:   &event,
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for c := range s.clients {
		select {
		case c.send <- msg:
			s.metrics.EventsSent.Add(1)
		default:
			s.metrics.EventsDropped.Add(1)
		}
	}
}

// handleClient reads events from a client and publishes them on the bus
func (s *Server) handleClient(c *client) {
	defer s.removeClient(c)

	decoder := json.NewDecoder(c.conn)
	for {
		var msg events.Message
		if err := decoder.Decode(&msg); err != nil {
			return
		}

		if msg.Version != 0 && msg.Version != events.ProtocolVersion {
			slog.Warn("event message with unexpected protocol version",
				"version", msg.Version, "expected", events.ProtocolVersion)
		}
		if msg.Type != "event" || msg.Event == nil {
			continue
		}

		s.metrics.EventsReceived.Add(1)
		events.Publish(s.bus, *msg.Event)
	}
}

// clientWriter sends queued messages to a client
func (s *Server) clientWriter(c *client) {
	encoder := json.NewEncoder(c.conn)
	for msg := range c.send {
		if err := encoder.Encode(msg); err != nil {
			return
		}
	}
}

// removeClient safely removes a client from the server
func (s *Server) removeClient(c *client) {
	s.mu.Lock()
	delete(s.clients, c)
	s.metrics.ConnectedClients.Store(int32(len(s.clients)))
	s.mu.Unlock()

	_ = c.conn.Close()
	c.closeOnce.Do(func() { close(c.send) })
}

// Shutdown closes the listener and every client and removes the socket file.
// Safe to call more than once.
func (s *Server) Shutdown() error {
	var err error
	s.shutdownOnce.Do(func() {
		if closeErr := s.listener.Close(); closeErr != nil && !errors.Is(closeErr, net.ErrClosed) {
			err = fmt.Errorf("failed to close listener: %w", closeErr)
		}

		s.mu.Lock()
		for c := range s.clients {
			_ = c.conn.Close()
			c.closeOnce.Do(func() { close(c.send) })
		}
		s.clients = make(map[*client]struct{})
		s.metrics.ConnectedClients.Store(0)
		s.mu.Unlock()

		if removeErr := os.Remove(s.socketPath); removeErr != nil && !os.IsNotExist(removeErr) {
			slog.Warn("failed to remove socket file", "error", removeErr)
		}

		slog.Info("event relay stopped", s.metrics.LogAttrs()...)
	})
	return err
}
