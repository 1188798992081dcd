package events

import (
	"context"
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/jot/internal/types"
)

func receive(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case ev, ok := <-ch:
		require.True(t, ok, "listener channel closed unexpectedly")
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
	return Event{}
}

func TestBus_DeliversToAllListeners(t *testing.T) {
	bus := NewBus(0)
	defer bus.Close()

	ctx := context.Background()
	a, err := bus.Listen(ctx)
	require.NoError(t, err)
	b, err := bus.Listen(ctx)
	require.NoError(t, err)

	require.NoError(t, bus.SendEvent(Event{Type: EventNoteCreated, NoteID: types.NoteID(7), UserID: "u1"}))

	for _, ch := range []<-chan Event{a, b} {
		ev := receive(t, ch)
		assert.Equal(t, EventNoteCreated, ev.Type)
		assert.Equal(t, types.NoteID(7), ev.NoteID)
		assert.Equal(t, "u1", ev.UserID)
		assert.False(t, ev.Timestamp.IsZero(), "timestamp should be stamped")
	}
}

func TestBus_SequenceIsMonotonic(t *testing.T) {
	bus := NewBus(4)
	defer bus.Close()

	ch, err := bus.Listen(context.Background())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, bus.SendEvent(Event{Type: EventNoteCreated}))
	}

	var last int64
	for i := 0; i < 3; i++ {
		ev := receive(t, ch)
		assert.Greater(t, ev.SequenceID, last)
		last = ev.SequenceID
	}
}

func TestBus_SlowListenerDropsInsteadOfBlocking(t *testing.T) {
	bus := NewBus(1)
	defer bus.Close()

	_, err := bus.Listen(context.Background())
	require.NoError(t, err)

	require.NoError(t, bus.SendEvent(Event{Type: EventNoteCreated}))

	done := make(chan error, 1)
	go func() { done <- bus.SendEvent(Event{Type: EventNoteDeleted}) }()

	select {
	case err := <-done:
		assert.True(t, errors.Is(err, ErrListenerFull), "expected ErrListenerFull, got %v", err)
	case <-time.After(time.Second):
		t.Fatal("SendEvent blocked on a full listener")
	}
}

func TestBus_ListenerClosedWhenContextDone(t *testing.T) {
	bus := NewBus(0)
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := bus.Listen(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok, "channel should be closed after cancel")
	case <-time.After(time.Second):
		t.Fatal("listener channel not closed after context cancel")
	}
}

func TestBus_Close(t *testing.T) {
	bus := NewBus(0)

	ch, err := bus.Listen(context.Background())
	require.NoError(t, err)

	require.NoError(t, bus.Close())
	require.NoError(t, bus.Close(), "second Close should be a no-op")

	_, ok := <-ch
	assert.False(t, ok, "listener should be closed with the bus")

	assert.ErrorIs(t, bus.SendEvent(Event{Type: EventNoteCreated}), ErrBusClosed)

	_, err = bus.Listen(context.Background())
	assert.ErrorIs(t, err, ErrBusClosed)
}

func TestPublish_NilClientIsNoop(t *testing.T) {
	// must not panic
	Publish(nil, Event{Type: EventNoteCreated})
}

func TestPublish_SendsThroughClient(t *testing.T) {
	bus := NewBus(0)
	defer bus.Close()

	ch, err := bus.Listen(context.Background())
	require.NoError(t, err)

	Publish(bus, Event{Type: EventNoteDeleted, NoteID: types.NoteID(3)})

	ev := receive(t, ch)
	assert.Equal(t, EventNoteDeleted, ev.Type)
	assert.Equal(t, types.NoteID(3), ev.NoteID)
}

func TestBus_CloseReleasesListenerGoroutines(t *testing.T) {
	bus := NewBus(0)
	before := runtime.NumGoroutine()

	// contexts that are never cancelled
	for range 20 {
		_, err := bus.Listen(context.Background())
		require.NoError(t, err)
	}
	require.GreaterOrEqual(t, runtime.NumGoroutine(), before+20)

	require.NoError(t, bus.Close())
	assert.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= before
	}, 2*time.Second, 10*time.Millisecond)
}
