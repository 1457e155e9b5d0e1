package constants

import (
	"time"
)

// Application identity
const (
	// AppName is the user-visible application name.
	AppName = "Restmode"

	// AppID is the reverse-DNS identifier used by the GUI toolkit.
	AppID = "com.restmode.app"

	// ConfigFileName is the name of the INI configuration file inside the config dir.
	ConfigFileName = "restmode.conf"

	// TokenFileName stores the dashboard session token inside the config dir.
	TokenFileName = "token"

	// InstallIDFileName stores the per-install UUID inside the config dir.
	InstallIDFileName = "install-id"
)

// Activation defaults and bounds
const (
	// DefaultIdleDelay - inactivity before the overlay activates (5 minutes)
	DefaultIdleDelay = 5 * time.Minute

	// MinIdleDelay / MaxIdleDelay - clamp bounds for the idle delay
	MinIdleDelay = 1 * time.Minute
	MaxIdleDelay = 24 * time.Hour

	// DefaultCheckInterval - how often the controller polls the idle source.
	// One second keeps deactivation latency invisible to the user while the
	// idle query itself is a cheap OS call.
	DefaultCheckInterval = 1 * time.Second

	// MinCheckInterval / MaxCheckInterval - clamp bounds for the poll interval
	MinCheckInterval = 1 * time.Second
	MaxCheckInterval = 5 * time.Minute

	// SuppressionCheckInterval - fullscreen video detection is more expensive
	// than the idle query (window enumeration, exec), so it is rechecked on
	// this cadence and the last result reused between checks.
	SuppressionCheckInterval = 10 * time.Second
)

// Overlay refresh intervals
const (
	// OverlayRefreshInterval - clock redraw cadence when seconds are shown
	OverlayRefreshInterval = 1 * time.Second

	// OverlayLowPowerRefreshInterval - clock redraw cadence in low power mode
	OverlayLowPowerRefreshInterval = 5 * time.Second
)

// Remote services
const (
	// DefaultDashboardURL is the dashboard API base URL.
	DefaultDashboardURL = "https://dashboard.restmode.app/api"

	// WeatherAPIURL is the weather provider's current-conditions endpoint.
	WeatherAPIURL = "https://api.weatherapi.com/v1/current.json"

	// WeatherRefreshInterval - how often cached weather is refreshed
	WeatherRefreshInterval = 10 * time.Minute

	// UpdateCheckInterval - how often the updater polls for a new release
	UpdateCheckInterval = 6 * time.Hour

	// HTTPTimeout - per-request timeout for dashboard/weather/update calls
	HTTPTimeout = 15 * time.Second
)
