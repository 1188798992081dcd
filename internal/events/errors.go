package events

import "errors"

var (
	// ErrBusClosed is returned when sending to or listening on a closed bus
	ErrBusClosed = errors.New("event bus is closed")

	// ErrListenerFull reports that at least one listener dropped the event
	// because its buffer was full. Other listeners still received it.
	ErrListenerFull = errors.New("event dropped by a slow listener")
)

var (
	// ErrNotConnected is returned by a Client used before Connect or after Close
	ErrNotConnected = errors.New("not connected to the jot event socket")

	// ErrAlreadyListening is returned when a Client is asked for a second listener
	ErrAlreadyListening = errors.New("client already has a listener")
)
