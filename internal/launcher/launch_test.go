package launcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/jot/internal/events"
)

func TestStartEvents_HostsThenJoins(t *testing.T) {
	dir, err := os.MkdirTemp("", "jot")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	socketPath := filepath.Join(dir, "jot.sock")
	t.Setenv(events.SocketEnv, socketPath)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	host, stopHost := startEvents(ctx)
	require.IsType(t, &events.Bus{}, host)

	joined, stopJoined := startEvents(ctx)
	require.IsType(t, &events.Client{}, joined)
	stopJoined()

	watched, err := host.Listen(ctx)
	require.NoError(t, err)
	require.NoError(t, joined.SendEvent(events.Event{Type: events.EventNoteCreated, UserID: "u1"}))

	select {
	case ev := <-watched:
		assert.Equal(t, "u1", ev.UserID)
	case <-time.After(2 * time.Second):
		t.Fatal("event from the joined TUI never reached the host bus")
	}

	require.NoError(t, joined.Close())
	require.NoError(t, host.Close())
	stopHost()
	_, statErr := os.Stat(socketPath)
	assert.True(t, os.IsNotExist(statErr), "socket file should be removed")
}
