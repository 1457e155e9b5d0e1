// Package idle reports how long the user has been inactive, using the
// platform's last-input facilities.
package idle

import (
	"errors"
	"time"
)

// ErrUnavailable is returned when no idle source works on this system
// (e.g. Wayland session without the Mutter idle monitor and without
// xprintidle). Callers should fall back to manual activation only.
var ErrUnavailable = errors.New("idle detection unavailable on this system")

// Provider returns the duration since the last user keyboard/mouse input.
type Provider interface {
	IdleDuration() (time.Duration, error)
}

// NewProvider returns the idle provider for the current platform.
func NewProvider() Provider {
	return newProvider()
}
