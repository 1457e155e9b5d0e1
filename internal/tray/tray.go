// Package tray wires the system tray menu to the activation controller.
package tray

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/pkg/browser"

	"github.com/restmode/restmode/internal/config"
	"github.com/restmode/restmode/internal/constants"
	"github.com/restmode/restmode/internal/dashboard"
	"github.com/restmode/restmode/internal/events"
	"github.com/restmode/restmode/internal/gui"
	"github.com/restmode/restmode/internal/logging"
	"github.com/restmode/restmode/internal/monitor"
	"github.com/restmode/restmode/internal/version"
)

// Tray manages the system tray icon and menu. It is a no-op on platforms or
// desktops without a tray (fyne reports those as non-desktop apps).
type Tray struct {
	app        fyne.App
	controller *monitor.Controller
	settings   *gui.Settings
	dashboard  *dashboard.Client
	store      *config.Store
	bus        *events.EventBus
	logger     *logging.Logger

	menu       *fyne.Menu
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	pauseItem  *fyne.MenuItem
}

// New creates the tray controller.
func New(app fyne.App, controller *monitor.Controller, settings *gui.Settings, dash *dashboard.Client, store *config.Store, bus *events.EventBus, logger *logging.Logger) *Tray {
	return &Tray{
		app:        app,
		controller: controller,
		settings:   settings,
		dashboard:  dash,
		store:      store,
		bus:        bus,
		logger:     logger,
	}
}

// Setup installs the tray menu and starts reacting to controller events.
// Returns false when the platform has no system tray.
func (t *Tray) Setup(ctx context.Context) bool {
	desk, ok := t.app.(desktop.App)
	if !ok {
		t.logger.Warn().Msg("System tray not available on this platform")
		return false
	}

	t.statusItem = fyne.NewMenuItem(t.statusLabel(), nil)
	t.statusItem.Disabled = true

	t.toggleItem = fyne.NewMenuItem("Show overlay now", func() {
		t.controller.Toggle()
	})

	t.pauseItem = fyne.NewMenuItem("Pause activation", func() {
		t.controller.SetPaused(!t.controller.Paused())
	})

	settingsItem := fyne.NewMenuItem("Settings...", func() {
		t.settings.Show()
	})

	items := []*fyne.MenuItem{
		t.statusItem,
		fyne.NewMenuItemSeparator(),
		t.toggleItem,
		t.pauseItem,
		fyne.NewMenuItemSeparator(),
		settingsItem,
	}

	if t.store.Get().Dashboard.Enabled && t.dashboard != nil {
		items = append(items, fyne.NewMenuItem("Open dashboard", func() {
			if err := browser.OpenURL(t.dashboard.DashboardURL()); err != nil {
				t.logger.Warn().Err(err).Msg("Failed to open dashboard in browser")
			}
		}))
	}

	items = append(items,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(fmt.Sprintf("About %s %s", constants.AppName, version.Version), func() {
			gui.ShowAbout(t.app)
		}),
		fyne.NewMenuItem("Quit", func() {
			t.app.Quit()
		}),
	)

	t.menu = fyne.NewMenu(constants.AppName, items...)
	desk.SetSystemTrayMenu(t.menu)

	go t.watchEvents(ctx)

	t.logger.Info().Msg("System tray initialized")
	return true
}

// watchEvents keeps the menu labels in sync with the controller.
func (t *Tray) watchEvents(ctx context.Context) {
	ch := t.bus.SubscribeAll()
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return
			}
			switch ev.Type() {
			case events.EventStateChange, events.EventOverlayShown, events.EventOverlayHidden, events.EventSuppression:
				t.refresh()
			}
		case <-ctx.Done():
			return
		}
	}
}

// refresh updates menu labels from the controller state.
func (t *Tray) refresh() {
	fyne.Do(func() {
		t.statusItem.Label = t.statusLabel()
		if t.controller.State() == monitor.StateDisplaying {
			t.toggleItem.Label = "Hide overlay"
		} else {
			t.toggleItem.Label = "Show overlay now"
		}
		if t.controller.Paused() {
			t.pauseItem.Label = "Resume activation"
		} else {
			t.pauseItem.Label = "Pause activation"
		}
		t.menu.Refresh()
	})
}

func (t *Tray) statusLabel() string {
	switch {
	case t.controller.Paused():
		return "Status: paused"
	case t.controller.State() == monitor.StateDisplaying:
		return "Status: overlay showing"
	case t.controller.State() == monitor.StatePending:
		return "Status: waiting (suppressed)"
	default:
		return "Status: watching for idle"
	}
}
