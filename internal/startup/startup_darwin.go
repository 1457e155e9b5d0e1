//go:build darwin

package startup

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/restmode/restmode/internal/constants"
)

func enable(exe string) error {
	script := fmt.Sprintf(
		`tell application "System Events" to make login item at end with properties {path:"%s", hidden:true, name:"%s"}`,
		exe, constants.AppName)
	if out, err := exec.Command("osascript", "-e", script).CombinedOutput(); err != nil {
		return fmt.Errorf("failed to add login item: %w: %s", err, out)
	}
	return nil
}

func disable() error {
	script := fmt.Sprintf(
		`tell application "System Events" to delete login item "%s"`, constants.AppName)
	if out, err := exec.Command("osascript", "-e", script).CombinedOutput(); err != nil {
		// Deleting a missing login item errors; treat as already disabled
		if strings.Contains(string(out), "Can't get login item") {
			return nil
		}
		return fmt.Errorf("failed to delete login item: %w: %s", err, out)
	}
	return nil
}

func enabled() (bool, error) {
	out, err := exec.Command("osascript", "-e",
		`tell application "System Events" to get the name of every login item`).Output()
	if err != nil {
		return false, fmt.Errorf("failed to list login items: %w", err)
	}
	for _, name := range strings.Split(string(out), ",") {
		if strings.TrimSpace(name) == constants.AppName {
			return true, nil
		}
	}
	return false, nil
}
