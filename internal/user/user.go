package user

import (
	"os"
	"os/user"
)

// OverrideEnv lets the note owner be set explicitly, e.g. when several people
// share one OS account.
const OverrideEnv = "JOT_USER"

// GetCurrentUsername returns the identity notes are filed under.
// It tries, in order:
// 1. JOT_USER environment variable
// 2. user.Current() - the OS username
// 3. USER environment variable - fallback for restricted environments
// 4. "unknown" - final fallback to ensure a non-empty value
func GetCurrentUsername() string {
	if override := os.Getenv(OverrideEnv); override != "" {
		return override
	}

	currentUser, err := user.Current()
	if err != nil || currentUser.Username == "" {
		username := os.Getenv("USER")
		if username == "" {
			return "unknown"
		}
		return username
	}
	return currentUser.Username
}
