// Restmode Tray Companion - lightweight tray-only build.
//
// Runs the idle monitor without the GUI overlay: when the idle threshold is
// crossed it sends a desktop notification instead of taking over the screen.
// Useful on desktops where the full-screen overlay is unwanted (remote
// sessions, kiosk-adjacent setups) while keeping the pause/screen-off
// behavior.
//
// Build:
//
//	go build ./cmd/restmode-tray
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"fyne.io/systray"

	"github.com/restmode/restmode/internal/config"
	"github.com/restmode/restmode/internal/constants"
	"github.com/restmode/restmode/internal/events"
	"github.com/restmode/restmode/internal/fullscreen"
	"github.com/restmode/restmode/internal/idle"
	"github.com/restmode/restmode/internal/logging"
	"github.com/restmode/restmode/internal/monitor"
	"github.com/restmode/restmode/internal/notify"
	"github.com/restmode/restmode/internal/version"
)

// trayApp holds the companion state shared between menu handlers.
type trayApp struct {
	controller *monitor.Controller
	bus        *events.EventBus
	logger     *logging.Logger
	cancel     context.CancelFunc

	mStatus *systray.MenuItem
	mPause  *systray.MenuItem
	mQuit   *systray.MenuItem
}

var app *trayApp

func main() {
	logger := logging.NewLogger("gui")

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.Warn().Err(err).Msg("Configuration invalid, clamping to valid ranges")
		cfg.Clamp()
	}

	store := config.NewStore(cfg)
	bus := events.NewEventBus(16)
	notifier := notify.NewNotifier(cfg.System.NotificationsEnabled, logger)

	ctx, cancel := context.WithCancel(context.Background())

	display := &notifyDisplay{notifier: notifier}
	controller := monitor.NewController(idle.NewProvider(), fullscreen.NewDetector(), display, store, bus, logger)
	go controller.Run(ctx)

	app = &trayApp{
		controller: controller,
		bus:        bus,
		logger:     logger,
		cancel:     cancel,
	}

	systray.Run(onReady, onExit)
}

func onReady() {
	systray.SetIcon(iconData())
	systray.SetTitle(constants.AppName)
	systray.SetTooltip(fmt.Sprintf("%s %s (notification mode)", constants.AppName, version.Version))

	app.mStatus = systray.AddMenuItem("Status: watching for idle", "Monitor status")
	app.mStatus.Disable()

	systray.AddSeparator()

	app.mPause = systray.AddMenuItem("Pause reminders", "Pause idle reminders")

	systray.AddSeparator()

	app.mQuit = systray.AddMenuItem("Quit", "Exit the tray companion")

	go app.handleMenuClicks()
	go app.watchEvents()
}

func onExit() {
	if app != nil {
		app.cancel()
	}
}

func (a *trayApp) handleMenuClicks() {
	for {
		select {
		case <-a.mPause.ClickedCh:
			paused := !a.controller.Paused()
			a.controller.SetPaused(paused)
			if paused {
				a.mPause.SetTitle("Resume reminders")
			} else {
				a.mPause.SetTitle("Pause reminders")
			}
		case <-a.mQuit.ClickedCh:
			systray.Quit()
			return
		}
	}
}

// watchEvents keeps the status item in sync with the controller.
func (a *trayApp) watchEvents() {
	ch := a.bus.Subscribe(events.EventStateChange)
	for ev := range ch {
		sc, ok := ev.(*events.StateChangeEvent)
		if !ok {
			continue
		}
		switch monitor.State(sc.NewState) {
		case monitor.StateDisplaying:
			a.mStatus.SetTitle("Status: rest reminder active")
		case monitor.StatePending:
			a.mStatus.SetTitle("Status: waiting (suppressed)")
		default:
			a.mStatus.SetTitle("Status: watching for idle")
		}
	}
}

// notifyDisplay satisfies the controller's Display interface with a desktop
// notification instead of a window. Hide is a no-op; the notification is
// transient.
type notifyDisplay struct {
	notifier *notify.Notifier

	lastShown time.Time
}

func (d *notifyDisplay) Show() {
	// Rate limit in case the controller re-activates quickly
	if time.Since(d.lastShown) < time.Minute {
		return
	}
	d.lastShown = time.Now()
	d.notifier.RestReminder()
}

func (d *notifyDisplay) Hide() {}
