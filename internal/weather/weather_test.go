package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/restmode/restmode/internal/logging"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c := NewClient("test-key", logging.NewDefaultCLILogger())
	c.apiURL = server.URL
	return c, server
}

func TestFetch(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "Oslo" {
			t.Errorf("Expected q=Oslo, got %q", got)
		}
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("Expected key=test-key, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"current":{"temp_c":21.0,"temp_f":69.8,"condition":{"text":"Sunny"}}}`))
	})

	cond, err := c.Fetch(context.Background(), "Oslo")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if cond.TempC != 21.0 {
		t.Errorf("Expected TempC=21, got %f", cond.TempC)
	}
	if cond.Text != "Sunny" {
		t.Errorf("Expected Text=Sunny, got %s", cond.Text)
	}

	if c.Cached() == nil {
		t.Error("Expected conditions to be cached after Fetch")
	}
}

func TestFetchEmptyLocation(t *testing.T) {
	c := NewClient("", logging.NewDefaultCLILogger())
	if _, err := c.Fetch(context.Background(), ""); err == nil {
		t.Error("Expected error for empty location")
	}
}

func TestFetchServerError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	if _, err := c.Fetch(context.Background(), "Nowhere"); err == nil {
		t.Error("Expected error for non-200 response")
	}
	if c.Cached() != nil {
		t.Error("Failed fetch must not populate the cache")
	}
}

func TestDisplayLine(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"current":{"temp_c":-3.4,"temp_f":25.9,"condition":{"text":"Light snow"}}}`))
	})

	if got := c.DisplayLine("metric"); got != "" {
		t.Errorf("Expected empty line before any fetch, got %q", got)
	}

	if _, err := c.Fetch(context.Background(), "Oslo"); err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if got := c.DisplayLine("metric"); got != "❄️ -3°C  Light snow" {
		t.Errorf("Unexpected metric line: %q", got)
	}
	if got := c.DisplayLine("imperial"); got != "❄️ 26°F  Light snow" {
		t.Errorf("Unexpected imperial line: %q", got)
	}
}

func TestEmoji(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Sunny", "☀️"},
		{"Clear", "☀️"},
		{"Partly cloudy", "☁️"},
		{"Patchy rain possible", "🌧️"},
		{"Light drizzle", "🌧️"},
		{"Blowing snow", "❄️"},
		{"Thundery outbreaks possible", "⛈️"},
		{"Freezing fog", "🌫️"},
		{"Volcanic ash", "❓"},
	}

	for _, tt := range tests {
		if got := Emoji(tt.text); got != tt.want {
			t.Errorf("Emoji(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}
