package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/restmode/restmode/internal/events"
	"github.com/restmode/restmode/internal/logging"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "restmode.conf")

	cfg := New()
	if err := Save(cfg, configPath); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	store := NewStore(cfg)
	bus := events.NewEventBus(10)
	defer bus.Close()
	ch := bus.Subscribe(events.EventConfigChanged)

	w, err := NewWatcher(configPath, store, bus, logging.NewDefaultCLILogger())
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	w.Start()
	defer w.Stop()

	// External edit: bump the delay and write the file back
	edited := New()
	edited.Activation.DelayMinutes = 42
	if err := Save(edited, configPath); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	select {
	case ev := <-ch:
		cc, ok := ev.(*events.ConfigChangedEvent)
		if !ok {
			t.Fatal("Expected ConfigChangedEvent")
		}
		if cc.Source != "file_watch" {
			t.Errorf("Expected source file_watch, got %s", cc.Source)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Timeout waiting for config change event")
	}

	if got := store.Get().Activation.DelayMinutes; got != 42 {
		t.Errorf("Expected reloaded DelayMinutes=42, got %d", got)
	}
}
