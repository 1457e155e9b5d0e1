// Package app assembles the tray application: config, event bus, idle
// monitor, overlay, tray menu, weather, dashboard sync, and updater.
package app

import (
	"context"
	"fmt"
	"os"
	"runtime"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"

	"github.com/restmode/restmode/internal/config"
	"github.com/restmode/restmode/internal/constants"
	"github.com/restmode/restmode/internal/dashboard"
	"github.com/restmode/restmode/internal/events"
	"github.com/restmode/restmode/internal/fullscreen"
	"github.com/restmode/restmode/internal/gui"
	"github.com/restmode/restmode/internal/idle"
	"github.com/restmode/restmode/internal/logging"
	"github.com/restmode/restmode/internal/monitor"
	"github.com/restmode/restmode/internal/notify"
	"github.com/restmode/restmode/internal/overlay"
	"github.com/restmode/restmode/internal/theme"
	"github.com/restmode/restmode/internal/tray"
	"github.com/restmode/restmode/internal/update"
	"github.com/restmode/restmode/internal/version"
	"github.com/restmode/restmode/internal/weather"
)

// Run starts the tray application and blocks until quit.
func Run(configPath string) error {
	logger := logging.NewLogger("gui")
	if os.Getenv("RESTMODE_DEBUG") != "" {
		logging.SetGlobalLevel(zerolog.DebugLevel)
		logger.Info().Msg("Debug logging enabled via RESTMODE_DEBUG")
	}

	if runtime.GOOS == "linux" {
		if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
			return fmt.Errorf("tray mode requires a display; DISPLAY and WAYLAND_DISPLAY are not set\n" +
				"Use the restmode subcommands for terminal use")
		}
	}

	if configPath == "" {
		var err error
		configPath, err = config.DefaultPath()
		if err != nil {
			return fmt.Errorf("failed to determine config path: %w", err)
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		logger.Warn().Err(err).Msg("Configuration invalid, clamping to valid ranges")
		cfg.Clamp()
	}
	store := config.NewStore(cfg)
	bus := events.NewEventBus(64)
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fyneApp := fyneapp.NewWithID(constants.AppID)
	fyneApp.Settings().SetTheme(&theme.AppTheme{})

	// First run: write the defaults so the watcher has a file to watch and
	// the user has something to edit
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		if err := config.Save(cfg, configPath); err != nil {
			logger.Warn().Err(err).Msg("Failed to write initial config file")
		}
	}
	watcher, err := config.NewWatcher(configPath, store, bus, logger)
	if err != nil {
		logger.Warn().Err(err).Msg("Config file watching unavailable")
	} else {
		watcher.Start()
		defer watcher.Stop()
	}

	notifier := notify.NewNotifier(cfg.System.NotificationsEnabled, logger)

	wxClient := weather.NewClient(cfg.Weather.APIKey, logger)
	go wxClient.Run(ctx, func() string {
		c := store.Get()
		if !c.Display.ShowWeather {
			return ""
		}
		return c.Weather.Location
	}, constants.WeatherRefreshInterval)

	var dash *dashboard.Client
	if cfg.Dashboard.Enabled {
		dash, err = dashboard.NewClient(&cfg.Dashboard, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("Dashboard client unavailable")
		} else if cfg.Dashboard.SyncSettings && dash.LoggedIn() {
			go syncDashboardSettings(ctx, dash, store, configPath, bus, notifier, logger)
		}
	}

	// The overlay needs the controller for dismissal and the controller needs
	// the overlay as its display, so the dismiss callback closes over the
	// controller variable.
	var controller *monitor.Controller
	ov := overlay.New(fyneApp, store, wxClient, func() {
		if controller != nil {
			controller.Deactivate()
		}
	}, logger)
	controller = monitor.NewController(idle.NewProvider(), fullscreen.NewDetector(), ov, store, bus, logger)
	go controller.Run(ctx)

	if cfg.Update.AutoCheck {
		updater := update.NewUpdater(cfg.Dashboard.APIURL, cfg.Update.Channel, bus, logger)
		go updater.Run(ctx, constants.UpdateCheckInterval)
	}

	go forwardNotifications(ctx, bus, store, notifier)

	settings := gui.NewSettings(fyneApp, store, configPath, bus, logger)
	if cfg.System.TrayEnabled {
		t := tray.New(fyneApp, controller, settings, dash, store, bus, logger)
		if !t.Setup(ctx) {
			// No tray on this desktop; open settings so the app is reachable
			settings.Show()
		}
	} else {
		settings.Show()
	}

	logger.Info().Str("version", version.Version).Str("config", configPath).Msg("Restmode started")
	fyneApp.Run()
	return nil
}

// syncDashboardSettings pulls remote settings once at startup and persists
// them locally.
func syncDashboardSettings(ctx context.Context, dash *dashboard.Client, store *config.Store, configPath string, bus *events.EventBus, notifier *notify.Notifier, logger *logging.Logger) {
	remote, err := dash.FetchSettings(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("Dashboard settings sync failed")
		return
	}
	next := store.Update(func(cfg *config.Config) {
		remote.Apply(cfg)
	})
	if err := config.Save(next, configPath); err != nil {
		logger.Warn().Err(err).Msg("Failed to persist synced settings")
	}
	bus.Publish(events.NewConfigChanged("dashboard_sync"))
	notifier.DashboardSynced()
	logger.Info().Msg("Settings synced from dashboard")
}

// forwardNotifications turns bus events into desktop notifications and keeps
// the notifier's enabled flag in sync with config changes.
func forwardNotifications(ctx context.Context, bus *events.EventBus, store *config.Store, notifier *notify.Notifier) {
	ch := bus.SubscribeAll()
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return
			}
			switch e := ev.(type) {
			case *events.UpdateAvailableEvent:
				notifier.UpdateAvailable(e.Version)
			case *events.SuppressionEvent:
				if e.Reason == monitor.ReasonManualPause {
					notifier.Paused(e.Suppressed)
				}
			case *events.ConfigChangedEvent:
				notifier.SetEnabled(store.Get().System.NotificationsEnabled)
			}
		case <-ctx.Done():
			return
		}
	}
}
