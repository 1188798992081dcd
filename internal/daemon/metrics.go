package daemon

import (
	"sync/atomic"
	"time"
)

// Metrics tracks relay statistics using atomic operations for thread-safety
type Metrics struct {
	EventsReceived   atomic.Int64 // from socket clients
	EventsSent       atomic.Int64 // to socket clients
	EventsDropped    atomic.Int64 // client send queue full
	ConnectedClients atomic.Int32
	StartTime        time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{StartTime: time.Now()}
}

// LogAttrs returns the counters as slog key/value pairs
func (m *Metrics) LogAttrs() []any {
	return []any{
		"events_received", m.EventsReceived.Load(),
		"events_sent", m.EventsSent.Load(),
		"events_dropped", m.EventsDropped.Load(),
		"uptime", time.Since(m.StartTime).Round(time.Second),
	}
}
