// Package config provides configuration management for Restmode.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/ini.v1"

	"github.com/restmode/restmode/internal/constants"
)

// Config is the application configuration.
//
// Config file location:
//   - Windows: %APPDATA%\Restmode\restmode.conf
//   - Unix: ~/.config/restmode/restmode.conf
//
// INI format:
//
//	[activation]
//	enabled = true
//	delay_minutes = 5
//	check_interval_seconds = 1
//
//	[display]
//	theme = dark
//	time_format = 24h
//	date_format = full
//	font_size = 120
//	opacity = 0.9
//	show_seconds = true
//	show_date = true
//	show_weather = false
//	show_todo = true
//	low_power_mode = true
//	multi_monitor = true
//
//	[system]
//	startup_enabled = false
//	tray_enabled = true
//	turn_off_screen_delay_minutes = 0
//
//	[weather]
//	location =
//	units = metric
//
//	[dashboard]
//	enabled = false
//	api_url = https://dashboard.restmode.app/api
//
//	[update]
//	auto_check = true
//	channel = stable
//
//	[todo]
//	items = Buy groceries,Call Alice
type Config struct {
	Activation ActivationConfig
	Display    DisplayConfig
	System     SystemConfig
	Weather    WeatherConfig
	Dashboard  DashboardConfig
	Update     UpdateConfig
	Todo       TodoConfig
}

// ActivationConfig controls the idle monitor and activation controller.
type ActivationConfig struct {
	// Enabled turns automatic activation on or off.
	// Manual activation via tray/CLI works regardless.
	// Default: true
	Enabled bool `ini:"enabled"`

	// DelayMinutes is the inactivity threshold in minutes.
	// Minimum: 1, Maximum: 1440 (24 hours), Default: 5
	DelayMinutes int `ini:"delay_minutes"`

	// CheckIntervalSeconds is the idle polling interval in seconds.
	// Minimum: 1, Maximum: 300, Default: 1
	CheckIntervalSeconds int `ini:"check_interval_seconds"`
}

// DisplayConfig controls the overlay appearance.
type DisplayConfig struct {
	// Theme is one of: dark, light, blue, green, purple. Default: dark
	Theme string `ini:"theme"`

	// TimeFormat is "24h" or "12h". Default: 24h
	TimeFormat string `ini:"time_format"`

	// DateFormat is "full", "short", or "iso". Default: full
	DateFormat string `ini:"date_format"`

	// FontSize is the clock text size in points. Default: 120
	FontSize int `ini:"font_size"`

	// Opacity is the overlay window opacity, 0.1 to 1.0. Default: 0.9
	Opacity float64 `ini:"opacity"`

	// ShowSeconds includes seconds in the clock. Default: true
	ShowSeconds bool `ini:"show_seconds"`

	// ShowDate displays the date line under the clock. Default: true
	ShowDate bool `ini:"show_date"`

	// ShowWeather displays current conditions under the clock.
	// Requires a weather location. Default: false
	ShowWeather bool `ini:"show_weather"`

	// ShowTodo displays the to-do card in the bottom-right corner. Default: true
	ShowTodo bool `ini:"show_todo"`

	// LowPowerMode refreshes the clock every 5s instead of every second.
	// Default: true
	LowPowerMode bool `ini:"low_power_mode"`

	// MultiMonitor opens the overlay on every attached display. Default: true
	MultiMonitor bool `ini:"multi_monitor"`
}

// SystemConfig controls OS integration.
type SystemConfig struct {
	// StartupEnabled registers the application to start at login.
	// Default: false
	StartupEnabled bool `ini:"startup_enabled"`

	// TrayEnabled shows the system tray icon. Default: true
	TrayEnabled bool `ini:"tray_enabled"`

	// TurnOffScreenDelayMinutes powers the display down after the overlay has
	// been showing for this long. 0 disables the screen-off timer.
	// Minimum: 0, Maximum: 1440, Default: 0
	TurnOffScreenDelayMinutes int `ini:"turn_off_screen_delay_minutes"`

	// NotificationsEnabled allows desktop notifications. Default: true
	NotificationsEnabled bool `ini:"notifications_enabled"`
}

// WeatherConfig configures the weather provider.
type WeatherConfig struct {
	// Location is a city name, postcode, or "lat,lon". Empty disables weather.
	Location string `ini:"location"`

	// Units is "metric" or "imperial". Default: metric
	Units string `ini:"units"`

	// APIKey overrides the built-in weather API key.
	APIKey string `ini:"api_key"`
}

// DashboardConfig configures the remote dashboard client.
type DashboardConfig struct {
	// Enabled turns dashboard sync and the tray menu entry on. Default: false
	Enabled bool `ini:"enabled"`

	// APIURL is the dashboard API base URL.
	APIURL string `ini:"api_url"`

	// SyncSettings pulls display settings from the dashboard on startup.
	// Default: false
	SyncSettings bool `ini:"sync_settings"`
}

// UpdateConfig configures the auto-updater.
type UpdateConfig struct {
	// AutoCheck polls for new releases in the background. Default: true
	AutoCheck bool `ini:"auto_check"`

	// Channel is "stable" or "beta". Default: stable
	Channel string `ini:"channel"`
}

// TodoConfig holds the to-do items shown on the overlay card.
type TodoConfig struct {
	// Items is the comma-separated list of to-do entries.
	Items []string `ini:"items"`
}

// Validation errors
var (
	ErrInvalidDelay          = errors.New("delay_minutes must be between 1 and 1440")
	ErrInvalidCheckInterval  = errors.New("check_interval_seconds must be between 1 and 300")
	ErrInvalidOpacity        = errors.New("opacity must be between 0.1 and 1.0")
	ErrInvalidTimeFormat     = errors.New(`time_format must be "24h" or "12h"`)
	ErrInvalidDateFormat     = errors.New(`date_format must be "full", "short", or "iso"`)
	ErrInvalidScreenOffDelay = errors.New("turn_off_screen_delay_minutes must be between 0 and 1440")
)

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Activation: ActivationConfig{
			Enabled:              true,
			DelayMinutes:         5,
			CheckIntervalSeconds: 1,
		},
		Display: DisplayConfig{
			Theme:        "dark",
			TimeFormat:   "24h",
			DateFormat:   "full",
			FontSize:     120,
			Opacity:      0.9,
			ShowSeconds:  true,
			ShowDate:     true,
			ShowWeather:  false,
			ShowTodo:     true,
			LowPowerMode: true,
			MultiMonitor: true,
		},
		System: SystemConfig{
			StartupEnabled:            false,
			TrayEnabled:               true,
			TurnOffScreenDelayMinutes: 0,
			NotificationsEnabled:      true,
		},
		Weather: WeatherConfig{
			Location: "",
			Units:    "metric",
		},
		Dashboard: DashboardConfig{
			Enabled: false,
			APIURL:  constants.DefaultDashboardURL,
		},
		Update: UpdateConfig{
			AutoCheck: true,
			Channel:   "stable",
		},
		Todo: TodoConfig{},
	}
}

// Load loads configuration from the restmode.conf file.
// If path is empty, uses the default path.
// If the file doesn't exist, returns a config with default values and no error.
// If the file exists but is invalid, returns an error.
func Load(path string) (*Config, error) {
	cfg := New()

	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return cfg, nil // Return defaults if we can't determine path
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // Return defaults if config doesn't exist
	}

	iniFile, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load restmode.conf: %w", err)
	}

	act := iniFile.Section("activation")
	cfg.Activation.Enabled = act.Key("enabled").MustBool(true)
	cfg.Activation.DelayMinutes = act.Key("delay_minutes").MustInt(5)
	cfg.Activation.CheckIntervalSeconds = act.Key("check_interval_seconds").MustInt(1)

	disp := iniFile.Section("display")
	cfg.Display.Theme = disp.Key("theme").MustString("dark")
	cfg.Display.TimeFormat = disp.Key("time_format").MustString("24h")
	cfg.Display.DateFormat = disp.Key("date_format").MustString("full")
	cfg.Display.FontSize = disp.Key("font_size").MustInt(120)
	cfg.Display.Opacity = disp.Key("opacity").MustFloat64(0.9)
	cfg.Display.ShowSeconds = disp.Key("show_seconds").MustBool(true)
	cfg.Display.ShowDate = disp.Key("show_date").MustBool(true)
	cfg.Display.ShowWeather = disp.Key("show_weather").MustBool(false)
	cfg.Display.ShowTodo = disp.Key("show_todo").MustBool(true)
	cfg.Display.LowPowerMode = disp.Key("low_power_mode").MustBool(true)
	cfg.Display.MultiMonitor = disp.Key("multi_monitor").MustBool(true)

	sys := iniFile.Section("system")
	cfg.System.StartupEnabled = sys.Key("startup_enabled").MustBool(false)
	cfg.System.TrayEnabled = sys.Key("tray_enabled").MustBool(true)
	cfg.System.TurnOffScreenDelayMinutes = sys.Key("turn_off_screen_delay_minutes").MustInt(0)
	cfg.System.NotificationsEnabled = sys.Key("notifications_enabled").MustBool(true)

	wx := iniFile.Section("weather")
	cfg.Weather.Location = wx.Key("location").String()
	cfg.Weather.Units = wx.Key("units").MustString("metric")
	cfg.Weather.APIKey = wx.Key("api_key").String()

	dash := iniFile.Section("dashboard")
	cfg.Dashboard.Enabled = dash.Key("enabled").MustBool(false)
	cfg.Dashboard.APIURL = dash.Key("api_url").MustString(constants.DefaultDashboardURL)
	cfg.Dashboard.SyncSettings = dash.Key("sync_settings").MustBool(false)

	upd := iniFile.Section("update")
	cfg.Update.AutoCheck = upd.Key("auto_check").MustBool(true)
	cfg.Update.Channel = upd.Key("channel").MustString("stable")

	todo := iniFile.Section("todo")
	cfg.Todo.Items = todo.Key("items").Strings(",")

	return cfg, nil
}

// Save saves configuration to the restmode.conf file.
// If path is empty, uses the default path.
// Creates parent directories if they don't exist.
func Save(cfg *Config, path string) error {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return fmt.Errorf("failed to determine config path: %w", err)
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	iniFile := ini.Empty()
	if err := iniFile.Section("activation").ReflectFrom(&cfg.Activation); err != nil {
		return fmt.Errorf("failed to serialize [activation]: %w", err)
	}
	if err := iniFile.Section("display").ReflectFrom(&cfg.Display); err != nil {
		return fmt.Errorf("failed to serialize [display]: %w", err)
	}
	if err := iniFile.Section("system").ReflectFrom(&cfg.System); err != nil {
		return fmt.Errorf("failed to serialize [system]: %w", err)
	}
	if err := iniFile.Section("weather").ReflectFrom(&cfg.Weather); err != nil {
		return fmt.Errorf("failed to serialize [weather]: %w", err)
	}
	if err := iniFile.Section("dashboard").ReflectFrom(&cfg.Dashboard); err != nil {
		return fmt.Errorf("failed to serialize [dashboard]: %w", err)
	}
	if err := iniFile.Section("update").ReflectFrom(&cfg.Update); err != nil {
		return fmt.Errorf("failed to serialize [update]: %w", err)
	}
	if err := iniFile.Section("todo").ReflectFrom(&cfg.Todo); err != nil {
		return fmt.Errorf("failed to serialize [todo]: %w", err)
	}

	if err := iniFile.SaveTo(path); err != nil {
		return fmt.Errorf("failed to save restmode.conf: %w", err)
	}
	return nil
}

// Validate checks the configuration for invalid values.
// Returns the first validation error found, or nil.
func (c *Config) Validate() error {
	if c.Activation.DelayMinutes < 1 || c.Activation.DelayMinutes > 1440 {
		return ErrInvalidDelay
	}
	if c.Activation.CheckIntervalSeconds < 1 || c.Activation.CheckIntervalSeconds > 300 {
		return ErrInvalidCheckInterval
	}
	if c.Display.Opacity < 0.1 || c.Display.Opacity > 1.0 {
		return ErrInvalidOpacity
	}
	switch c.Display.TimeFormat {
	case "24h", "12h":
	default:
		return ErrInvalidTimeFormat
	}
	switch c.Display.DateFormat {
	case "full", "short", "iso":
	default:
		return ErrInvalidDateFormat
	}
	if c.System.TurnOffScreenDelayMinutes < 0 || c.System.TurnOffScreenDelayMinutes > 1440 {
		return ErrInvalidScreenOffDelay
	}
	return nil
}

// Clamp coerces out-of-range values back into their valid ranges instead of
// failing. Used when applying remote (dashboard) settings, where a bad value
// should degrade gracefully rather than break activation.
func (c *Config) Clamp() {
	if c.Activation.DelayMinutes < 1 {
		c.Activation.DelayMinutes = 1
	}
	if c.Activation.DelayMinutes > 1440 {
		c.Activation.DelayMinutes = 1440
	}
	if c.Activation.CheckIntervalSeconds < 1 {
		c.Activation.CheckIntervalSeconds = 1
	}
	if c.Activation.CheckIntervalSeconds > 300 {
		c.Activation.CheckIntervalSeconds = 300
	}
	if c.Display.Opacity < 0.1 {
		c.Display.Opacity = 0.1
	}
	if c.Display.Opacity > 1.0 {
		c.Display.Opacity = 1.0
	}
	if c.System.TurnOffScreenDelayMinutes < 0 {
		c.System.TurnOffScreenDelayMinutes = 0
	}
	if c.System.TurnOffScreenDelayMinutes > 1440 {
		c.System.TurnOffScreenDelayMinutes = 1440
	}
}

// IdleDelay returns the activation threshold as a duration.
func (c *Config) IdleDelay() time.Duration {
	return time.Duration(c.Activation.DelayMinutes) * time.Minute
}

// CheckInterval returns the idle poll interval as a duration.
func (c *Config) CheckInterval() time.Duration {
	return time.Duration(c.Activation.CheckIntervalSeconds) * time.Second
}

// ScreenOffDelay returns the screen-off timer duration; 0 means disabled.
func (c *Config) ScreenOffDelay() time.Duration {
	return time.Duration(c.System.TurnOffScreenDelayMinutes) * time.Minute
}
