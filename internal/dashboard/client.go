// Package dashboard implements the remote dashboard API client: account
// registration and login, and pulling display settings managed centrally.
package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/restmode/restmode/internal/config"
	"github.com/restmode/restmode/internal/constants"
	"github.com/restmode/restmode/internal/httpclient"
	"github.com/restmode/restmode/internal/logging"
)

// User is the dashboard account record.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Session is the response to register/login.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// RemoteSettings is the subset of display settings managed on the dashboard.
type RemoteSettings struct {
	Theme        string   `json:"theme"`
	TimeFormat   string   `json:"time_format"`
	DateFormat   string   `json:"date_format"`
	DelayMinutes int      `json:"delay_minutes"`
	ShowWeather  bool     `json:"show_weather"`
	TodoItems    []string `json:"todo_items"`
}

// Client is the dashboard API client.
type Client struct {
	httpClient *nethttp.Client
	baseURL    string
	token      string
	installID  string
	logger     *logging.Logger
}

// NewClient creates a dashboard client. The session token, if previously
// saved, is loaded from the config dir.
func NewClient(cfg *config.DashboardConfig, logger *logging.Logger) (*Client, error) {
	baseURL := strings.TrimSuffix(cfg.APIURL, "/")
	if baseURL == "" {
		baseURL = strings.TrimSuffix(constants.DefaultDashboardURL, "/")
	}

	c := &Client{
		httpClient: httpclient.New(logger, constants.HTTPTimeout),
		baseURL:    baseURL,
		logger:     logger,
	}

	if tokenPath, err := config.TokenPath(); err == nil {
		if token, err := config.ReadTokenFile(tokenPath); err == nil {
			c.token = token
		}
	}

	installID, err := ensureInstallID()
	if err != nil {
		return nil, fmt.Errorf("failed to establish install ID: %w", err)
	}
	c.installID = installID

	return c, nil
}

// LoggedIn reports whether a session token is present.
func (c *Client) LoggedIn() bool {
	return c.token != ""
}

// DashboardURL returns the browser-facing dashboard address derived from the
// API base URL.
func (c *Client) DashboardURL() string {
	return strings.Replace(c.baseURL, "/api", "/dashboard", 1)
}

// Register creates a dashboard account and stores the session token.
func (c *Client) Register(ctx context.Context, email, password, name, location string) (*Session, error) {
	body := map[string]string{
		"email":      email,
		"password":   password,
		"name":       name,
		"location":   location,
		"install_id": c.installID,
	}
	var session Session
	if err := c.doJSON(ctx, nethttp.MethodPost, "/register", body, &session); err != nil {
		return nil, fmt.Errorf("register failed: %w", err)
	}
	if err := c.saveToken(session.Token); err != nil {
		return nil, err
	}
	return &session, nil
}

// Login authenticates and stores the session token.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{
		"email":      email,
		"password":   password,
		"install_id": c.installID,
	}
	var session Session
	if err := c.doJSON(ctx, nethttp.MethodPost, "/login", body, &session); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	if err := c.saveToken(session.Token); err != nil {
		return nil, err
	}
	return &session, nil
}

// Logout discards the stored session token.
func (c *Client) Logout() error {
	c.token = ""
	tokenPath, err := config.TokenPath()
	if err != nil {
		return err
	}
	if err := os.Remove(tokenPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}

// GetUser fetches the account for the current session.
func (c *Client) GetUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.doJSON(ctx, nethttp.MethodGet, "/user", nil, &user); err != nil {
		return nil, fmt.Errorf("get user failed: %w", err)
	}
	return &user, nil
}

// FetchSettings pulls the remotely managed display settings.
func (c *Client) FetchSettings(ctx context.Context) (*RemoteSettings, error) {
	var settings RemoteSettings
	if err := c.doJSON(ctx, nethttp.MethodGet, "/settings", nil, &settings); err != nil {
		return nil, fmt.Errorf("fetch settings failed: %w", err)
	}
	return &settings, nil
}

// Apply merges remote settings into cfg, clamping out-of-range values.
// Zero values in the remote payload leave the local setting untouched.
func (s *RemoteSettings) Apply(cfg *config.Config) {
	if s.Theme != "" {
		cfg.Display.Theme = s.Theme
	}
	if s.TimeFormat != "" {
		cfg.Display.TimeFormat = s.TimeFormat
	}
	if s.DateFormat != "" {
		cfg.Display.DateFormat = s.DateFormat
	}
	if s.DelayMinutes > 0 {
		cfg.Activation.DelayMinutes = s.DelayMinutes
	}
	cfg.Display.ShowWeather = s.ShowWeather
	if s.TodoItems != nil {
		cfg.Todo.Items = s.TodoItems
	}
	cfg.Clamp()
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == nethttp.StatusUnauthorized {
		return fmt.Errorf("not logged in (status 401)")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("dashboard returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) saveToken(token string) error {
	c.token = token
	tokenPath, err := config.TokenPath()
	if err != nil {
		return fmt.Errorf("failed to determine token path: %w", err)
	}
	if err := config.WriteTokenFile(tokenPath, token); err != nil {
		return err
	}
	return nil
}

// ensureInstallID reads the per-install UUID, generating and persisting one
// on first run. The ID lets the dashboard tell installs apart without any
// account.
func ensureInstallID() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, constants.InstallIDFileName)

	data, err := os.ReadFile(path)
	if err == nil {
		id := strings.TrimSpace(string(data))
		if _, parseErr := uuid.Parse(id); parseErr == nil {
			return id, nil
		}
		// Corrupt file: fall through and regenerate
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to read install ID: %w", err)
	}

	id := uuid.NewString()
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(id+"\n"), 0600); err != nil {
		return "", fmt.Errorf("failed to persist install ID: %w", err)
	}
	return id, nil
}
