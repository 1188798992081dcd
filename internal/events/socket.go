package events

import (
	"os"
	"path/filepath"
)

// SocketEnv overrides the event socket location
const SocketEnv = "JOT_SOCKET"

// SocketPath returns where the running TUI serves note events:
// $JOT_SOCKET, or ~/.jot/jot.sock.
func SocketPath() (string, error) {
	if p := os.Getenv(SocketEnv); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".jot", "jot.sock"), nil
}
