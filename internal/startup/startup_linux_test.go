//go:build linux

package startup

import (
	"os"
	"strings"
	"testing"
)

func TestEnableDisableRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	on, err := Enabled()
	if err != nil {
		t.Fatalf("Enabled failed: %v", err)
	}
	if on {
		t.Fatal("Expected startup to be disabled initially")
	}

	if err := Enable(); err != nil {
		t.Fatalf("Enable failed: %v", err)
	}

	on, err = Enabled()
	if err != nil {
		t.Fatalf("Enabled failed: %v", err)
	}
	if !on {
		t.Fatal("Expected startup to be enabled after Enable")
	}

	path, err := autostartPath()
	if err != nil {
		t.Fatalf("autostartPath failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read desktop entry: %v", err)
	}
	if !strings.Contains(string(data), "Type=Application") {
		t.Errorf("Desktop entry missing Type: %s", data)
	}
	if !strings.Contains(string(data), "Name=Restmode") {
		t.Errorf("Desktop entry missing Name: %s", data)
	}

	if err := Disable(); err != nil {
		t.Fatalf("Disable failed: %v", err)
	}
	on, _ = Enabled()
	if on {
		t.Fatal("Expected startup to be disabled after Disable")
	}

	// Disabling twice is not an error
	if err := Disable(); err != nil {
		t.Fatalf("Second Disable failed: %v", err)
	}
}
