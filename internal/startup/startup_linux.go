//go:build linux

package startup

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/restmode/restmode/internal/constants"
)

const desktopEntryTemplate = `[Desktop Entry]
Type=Application
Name=%s
Exec=%s --minimized
X-GNOME-Autostart-enabled=true
Comment=Desktop time and date screensaver
`

func autostartPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}
	return filepath.Join(configDir, "autostart", "restmode.desktop"), nil
}

func enable(exe string) error {
	path, err := autostartPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create autostart directory: %w", err)
	}
	entry := fmt.Sprintf(desktopEntryTemplate, constants.AppName, exe)
	if err := os.WriteFile(path, []byte(entry), 0644); err != nil {
		return fmt.Errorf("failed to write desktop entry: %w", err)
	}
	return nil
}

func disable() error {
	path, err := autostartPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove desktop entry: %w", err)
	}
	return nil
}

func enabled() (bool, error) {
	path, err := autostartPath()
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
