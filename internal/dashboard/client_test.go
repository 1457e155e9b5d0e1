package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/google/uuid"

	"github.com/restmode/restmode/internal/config"
	"github.com/restmode/restmode/internal/constants"
	"github.com/restmode/restmode/internal/httpclient"
	"github.com/restmode/restmode/internal/logging"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := logging.NewDefaultCLILogger()
	return &Client{
		httpClient: httpclient.New(logger, constants.HTTPTimeout),
		baseURL:    server.URL,
		installID:  "test-install-id",
		logger:     logger,
	}
}

func isolateConfigDir(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", t.TempDir())
		return
	}
	t.Setenv("HOME", t.TempDir())
}

func TestLoginStoresToken(t *testing.T) {
	isolateConfigDir(t)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/login" {
			t.Errorf("Expected path /login, got %s", r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("Failed to decode request body: %v", err)
		}
		if body["email"] != "user@example.com" {
			t.Errorf("Expected email in body, got %q", body["email"])
		}
		if body["install_id"] != "test-install-id" {
			t.Errorf("Expected install_id in body, got %q", body["install_id"])
		}
		json.NewEncoder(w).Encode(Session{
			Token: "session-token",
			User:  User{ID: "u1", Email: "user@example.com"},
		})
	})

	session, err := c.Login(context.Background(), "user@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if session.Token != "session-token" {
		t.Errorf("Expected session-token, got %q", session.Token)
	}
	if !c.LoggedIn() {
		t.Error("Expected client to be logged in")
	}

	tokenPath, err := config.TokenPath()
	if err != nil {
		t.Fatalf("TokenPath failed: %v", err)
	}
	saved, err := config.ReadTokenFile(tokenPath)
	if err != nil {
		t.Fatalf("ReadTokenFile failed: %v", err)
	}
	if saved != "session-token" {
		t.Errorf("Expected persisted token, got %q", saved)
	}
}

func TestGetUserSendsBearerToken(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(User{ID: "u1", Name: "Test User"})
	})
	c.token = "abc123"

	user, err := c.GetUser(context.Background())
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if gotAuth != "Bearer abc123" {
		t.Errorf("Expected Bearer header, got %q", gotAuth)
	}
	if user.Name != "Test User" {
		t.Errorf("Unexpected user name: %q", user.Name)
	}
}

func TestUnauthorized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	if _, err := c.GetUser(context.Background()); err == nil {
		t.Error("Expected error on 401 response")
	}
}

func TestApplyRemoteSettings(t *testing.T) {
	cfg := config.New()
	cfg.Activation.DelayMinutes = 10

	remote := &RemoteSettings{
		Theme:        "ocean",
		DelayMinutes: 3,
		ShowWeather:  true,
		TodoItems:    []string{"stretch", "drink water"},
	}
	remote.Apply(cfg)

	if cfg.Display.Theme != "ocean" {
		t.Errorf("Expected theme ocean, got %q", cfg.Display.Theme)
	}
	if cfg.Activation.DelayMinutes != 3 {
		t.Errorf("Expected delay 3, got %d", cfg.Activation.DelayMinutes)
	}
	if !cfg.Display.ShowWeather {
		t.Error("Expected show_weather to be enabled")
	}
	if len(cfg.Todo.Items) != 2 {
		t.Errorf("Expected 2 todo items, got %d", len(cfg.Todo.Items))
	}
	// Zero-value fields must not clobber local settings
	if cfg.Display.TimeFormat == "" {
		t.Error("Expected time format to keep its local value")
	}
}

func TestApplyClampsDelay(t *testing.T) {
	cfg := config.New()
	remote := &RemoteSettings{DelayMinutes: 10000}
	remote.Apply(cfg)
	if cfg.Activation.DelayMinutes != 1440 {
		t.Errorf("Expected delay clamped to 1440, got %d", cfg.Activation.DelayMinutes)
	}
}

func TestEnsureInstallID(t *testing.T) {
	isolateConfigDir(t)

	id1, err := ensureInstallID()
	if err != nil {
		t.Fatalf("ensureInstallID failed: %v", err)
	}
	if _, err := uuid.Parse(id1); err != nil {
		t.Errorf("Expected a valid UUID, got %q", id1)
	}

	id2, err := ensureInstallID()
	if err != nil {
		t.Fatalf("Second ensureInstallID failed: %v", err)
	}
	if id1 != id2 {
		t.Errorf("Expected stable install ID, got %q then %q", id1, id2)
	}
}

func TestDashboardURL(t *testing.T) {
	c := &Client{baseURL: "https://dashboard.restmode.app/api"}
	if got := c.DashboardURL(); got != "https://dashboard.restmode.app/dashboard" {
		t.Errorf("Unexpected dashboard URL: %q", got)
	}
}
