// Package startup registers and unregisters the application as a
// start-at-login item.
package startup

import (
	"fmt"
	"os"
)

// Enable registers the current executable to start at login.
func Enable() error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to resolve executable path: %w", err)
	}
	return enable(exe)
}

// Disable removes the start-at-login registration. Removing a registration
// that does not exist is not an error.
func Disable() error {
	return disable()
}

// Enabled reports whether a start-at-login registration exists.
func Enabled() (bool, error) {
	return enabled()
}
