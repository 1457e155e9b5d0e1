// Package weather fetches current conditions for the overlay's weather line.
// Results are cached so the overlay redraw never blocks on the network.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/restmode/restmode/internal/constants"
	"github.com/restmode/restmode/internal/httpclient"
	"github.com/restmode/restmode/internal/logging"
)

// defaultAPIKey is the shared application key for weatherapi.com; users can
// override it with their own key in [weather] api_key.
const defaultAPIKey = "8aa65584f01d432f9f5133344251906"

// Conditions is the subset of the provider response the overlay shows.
type Conditions struct {
	TempC     float64
	TempF     float64
	Text      string
	FetchedAt time.Time
}

// response mirrors the weatherapi.com current.json payload.
type response struct {
	Current struct {
		TempC     float64 `json:"temp_c"`
		TempF     float64 `json:"temp_f"`
		Condition struct {
			Text string `json:"text"`
		} `json:"condition"`
	} `json:"current"`
}

// Client fetches current conditions.
type Client struct {
	httpClient *nethttp.Client
	apiURL     string
	apiKey     string
	logger     *logging.Logger

	mu     sync.RWMutex
	cached *Conditions
}

// NewClient creates a weather client. An empty apiKey selects the built-in
// application key.
func NewClient(apiKey string, logger *logging.Logger) *Client {
	if apiKey == "" {
		apiKey = defaultAPIKey
	}
	return &Client{
		httpClient: httpclient.New(logger, constants.HTTPTimeout),
		apiURL:     constants.WeatherAPIURL,
		apiKey:     apiKey,
		logger:     logger,
	}
}

// Fetch retrieves current conditions for the location and updates the cache.
func (c *Client) Fetch(ctx context.Context, location string) (*Conditions, error) {
	if location == "" {
		return nil, fmt.Errorf("weather location not configured")
	}

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("q", location)
	params.Set("aqi", "no")

	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodGet, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != nethttp.StatusOK {
		return nil, fmt.Errorf("weather provider returned status %d", resp.StatusCode)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode weather response: %w", err)
	}

	cond := &Conditions{
		TempC:     body.Current.TempC,
		TempF:     body.Current.TempF,
		Text:      body.Current.Condition.Text,
		FetchedAt: time.Now(),
	}

	c.mu.Lock()
	c.cached = cond
	c.mu.Unlock()

	return cond, nil
}

// Cached returns the last fetched conditions, or nil when nothing has been
// fetched yet.
func (c *Client) Cached() *Conditions {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cached
}

// Run refreshes the cache on an interval until ctx is cancelled. Fetch
// failures are logged and the stale cache is kept.
func (c *Client) Run(ctx context.Context, location func() string, interval time.Duration) {
	// Prime the cache right away so the first overlay shows weather
	if loc := location(); loc != "" {
		if _, err := c.Fetch(ctx, loc); err != nil {
			c.logger.Warn().Err(err).Msg("Initial weather fetch failed")
		}
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			loc := location()
			if loc == "" {
				continue
			}
			if _, err := c.Fetch(ctx, loc); err != nil {
				c.logger.Warn().Err(err).Msg("Weather refresh failed, keeping cached conditions")
			}
		case <-ctx.Done():
			return
		}
	}
}

// DisplayLine renders cached conditions for the overlay, e.g. "☀️ 21°C  Sunny".
// Returns "" when nothing is cached.
func (c *Client) DisplayLine(units string) string {
	cond := c.Cached()
	if cond == nil {
		return ""
	}
	temp := fmt.Sprintf("%.0f°C", cond.TempC)
	if units == "imperial" {
		temp = fmt.Sprintf("%.0f°F", cond.TempF)
	}
	return fmt.Sprintf("%s %s  %s", Emoji(cond.Text), temp, cond.Text)
}

// Emoji maps a condition description to a weather emoji.
func Emoji(text string) string {
	desc := strings.ToLower(text)
	switch {
	case strings.Contains(desc, "sun"), strings.Contains(desc, "clear"):
		return "☀️"
	case strings.Contains(desc, "storm"), strings.Contains(desc, "thunder"):
		return "⛈️"
	case strings.Contains(desc, "rain"), strings.Contains(desc, "drizzle"):
		return "🌧️"
	case strings.Contains(desc, "snow"):
		return "❄️"
	case strings.Contains(desc, "fog"), strings.Contains(desc, "mist"):
		return "🌫️"
	case strings.Contains(desc, "cloud"), strings.Contains(desc, "overcast"):
		return "☁️"
	default:
		return "❓"
	}
}
