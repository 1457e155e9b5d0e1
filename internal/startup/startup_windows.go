//go:build windows

package startup

import (
	"fmt"

	"golang.org/x/sys/windows/registry"

	"github.com/restmode/restmode/internal/constants"
)

const runKeyPath = `Software\Microsoft\Windows\CurrentVersion\Run`

func enable(exe string) error {
	key, _, err := registry.CreateKey(registry.CURRENT_USER, runKeyPath, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("failed to open Run key: %w", err)
	}
	defer key.Close()

	if err := key.SetStringValue(constants.AppName, fmt.Sprintf(`"%s" --minimized`, exe)); err != nil {
		return fmt.Errorf("failed to set Run value: %w", err)
	}
	return nil
}

func disable() error {
	key, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.SET_VALUE)
	if err != nil {
		if err == registry.ErrNotExist {
			return nil
		}
		return fmt.Errorf("failed to open Run key: %w", err)
	}
	defer key.Close()

	if err := key.DeleteValue(constants.AppName); err != nil && err != registry.ErrNotExist {
		return fmt.Errorf("failed to delete Run value: %w", err)
	}
	return nil
}

func enabled() (bool, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.QUERY_VALUE)
	if err != nil {
		if err == registry.ErrNotExist {
			return false, nil
		}
		return false, fmt.Errorf("failed to open Run key: %w", err)
	}
	defer key.Close()

	if _, _, err := key.GetStringValue(constants.AppName); err != nil {
		if err == registry.ErrNotExist {
			return false, nil
		}
		return false, fmt.Errorf("failed to read Run value: %w", err)
	}
	return true, nil
}
