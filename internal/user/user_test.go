package user

import (
	"testing"
)

func TestGetCurrentUsername(t *testing.T) {
	t.Setenv(OverrideEnv, "")

	if username := GetCurrentUsername(); username == "" {
		t.Error("GetCurrentUsername() should never return an empty string")
	}
}

func TestGetCurrentUsernameOverride(t *testing.T) {
	t.Setenv(OverrideEnv, "u1")

	if got := GetCurrentUsername(); got != "u1" {
		t.Errorf("GetCurrentUsername() = %q, want u1", got)
	}
}
