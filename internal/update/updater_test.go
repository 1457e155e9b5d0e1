package update

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/restmode/restmode/internal/events"
	"github.com/restmode/restmode/internal/logging"
)

func newTestUpdater(t *testing.T, handler http.HandlerFunc) *Updater {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	u := NewUpdater(server.URL, "stable", events.NewEventBus(8), logging.NewDefaultCLILogger())
	u.current = "v1.2.0"
	u.stagingDir = t.TempDir()
	return u
}

func TestIsNewer(t *testing.T) {
	tests := []struct {
		candidate string
		current   string
		want      bool
	}{
		{"v1.3.0", "v1.2.0", true},
		{"1.3.0", "v1.2.0", true},
		{"v2.0.0", "v1.9.9", true},
		{"v1.2.1", "v1.2.0", true},
		{"v1.2.0", "v1.2.0", false},
		{"v1.1.9", "v1.2.0", false},
		{"v1.3.0-beta.1", "v1.2.0", true},
		{"garbage", "v1.2.0", false},
		{"v1.3", "v1.2.0", false},
		{"v1.0.1", "dev", true},
	}

	for _, tt := range tests {
		if got := IsNewer(tt.candidate, tt.current); got != tt.want {
			t.Errorf("IsNewer(%q, %q) = %v, want %v", tt.candidate, tt.current, got, tt.want)
		}
	}
}

func TestCheckNewerRelease(t *testing.T) {
	u := newTestUpdater(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("channel"); got != "stable" {
			t.Errorf("Expected channel=stable, got %q", got)
		}
		json.NewEncoder(w).Encode(Release{Version: "v1.3.0", URL: "https://example.com/restmode.tar.gz"})
	})

	release, err := u.Check(context.Background())
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if release == nil || release.Version != "v1.3.0" {
		t.Fatalf("Expected v1.3.0 release, got %+v", release)
	}
}

func TestCheckUpToDate(t *testing.T) {
	u := newTestUpdater(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Release{Version: "v1.2.0"})
	})

	release, err := u.Check(context.Background())
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if release != nil {
		t.Errorf("Expected no release when up to date, got %+v", release)
	}
}

func TestCheckNoContent(t *testing.T) {
	u := newTestUpdater(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	release, err := u.Check(context.Background())
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if release != nil {
		t.Errorf("Expected nil release on 204, got %+v", release)
	}
}

func TestDownloadVerifiesChecksum(t *testing.T) {
	payload := []byte("installer bytes")
	sum := sha256.Sum256(payload)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer server.Close()

	u := NewUpdater("", "stable", nil, logging.NewDefaultCLILogger())
	u.stagingDir = t.TempDir()

	release := &Release{
		Version: "v1.3.0",
		URL:     server.URL + "/restmode-1.3.0.bin",
		SHA256:  hex.EncodeToString(sum[:]),
	}

	path, err := u.Download(context.Background(), release)
	if err != nil {
		t.Fatalf("Download failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read staged file: %v", err)
	}
	if string(data) != string(payload) {
		t.Error("Staged file content mismatch")
	}
	if filepath.Base(path) != "restmode-1.3.0.bin" {
		t.Errorf("Unexpected staged file name: %s", filepath.Base(path))
	}
}

func TestDownloadChecksumMismatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("tampered bytes"))
	}))
	defer server.Close()

	u := NewUpdater("", "stable", nil, logging.NewDefaultCLILogger())
	u.stagingDir = t.TempDir()

	release := &Release{
		Version: "v1.3.0",
		URL:     server.URL + "/restmode-1.3.0.bin",
		SHA256:  "deadbeef",
	}

	if _, err := u.Download(context.Background(), release); err == nil {
		t.Fatal("Expected checksum mismatch error")
	}
	entries, err := os.ReadDir(u.stagingDir)
	if err != nil {
		t.Fatalf("Failed to read staging dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected failed download to be removed, found %d files", len(entries))
	}
}

func TestCheckPublishesEvent(t *testing.T) {
	u := newTestUpdater(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Release{Version: "v9.0.0", URL: "https://example.com/x"})
	})
	ch := u.bus.Subscribe(events.EventUpdateAvailable)

	u.checkAndPublish(context.Background())

	select {
	case ev := <-ch:
		upd, ok := ev.(*events.UpdateAvailableEvent)
		if !ok {
			t.Fatalf("Expected UpdateAvailableEvent, got %T", ev)
		}
		if upd.Version != "v9.0.0" {
			t.Errorf("Expected version v9.0.0, got %q", upd.Version)
		}
	default:
		t.Fatal("Expected an update event to be published")
	}
}
