// Package overlay renders the full-screen time/date window shown when the
// user goes idle. The window is driven by the activation controller through
// the Show/Hide methods and dismisses itself on any key or mouse input.
package overlay

import (
	"context"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"

	"github.com/restmode/restmode/internal/config"
	"github.com/restmode/restmode/internal/constants"
	"github.com/restmode/restmode/internal/logging"
	"github.com/restmode/restmode/internal/theme"
	"github.com/restmode/restmode/internal/weather"
)

// Overlay is the full-screen clock window. It implements the controller's
// Display interface; Show and Hide are safe to call from any goroutine.
type Overlay struct {
	app     fyne.App
	store   *config.Store
	weather *weather.Client
	logger  *logging.Logger

	// onDismiss is invoked when the user presses a key or clicks while the
	// overlay is visible. Wired to the controller's Deactivate.
	onDismiss func()

	mu            sync.Mutex
	win           fyne.Window
	background    *canvas.LinearGradient
	clockText     *canvas.Text
	dateText      *canvas.Text
	weatherText   *canvas.Text
	todoBox       *fyne.Container
	visible       bool
	cancelRefresh context.CancelFunc
}

// New creates the overlay bound to the fyne app. The window itself is built
// lazily on the first Show.
func New(app fyne.App, store *config.Store, wx *weather.Client, onDismiss func(), logger *logging.Logger) *Overlay {
	return &Overlay{
		app:       app,
		store:     store,
		weather:   wx,
		onDismiss: onDismiss,
		logger:    logger,
	}
}

// Show makes the overlay visible and starts the clock refresh loop.
func (o *Overlay) Show() {
	fyne.Do(func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		if o.visible {
			return
		}

		cfg := o.store.Get()
		if o.win == nil {
			o.buildWindow()
		}
		o.applyTheme(cfg)
		o.refreshLocked(cfg, time.Now())

		o.win.SetFullScreen(true)
		o.win.Show()
		o.visible = true

		ctx, cancel := context.WithCancel(context.Background())
		o.cancelRefresh = cancel
		go o.refreshLoop(ctx)

		o.logger.Debug().Msg("Overlay window shown")
	})
}

// Hide removes the overlay and stops the refresh loop.
func (o *Overlay) Hide() {
	fyne.Do(func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		if !o.visible {
			return
		}
		if o.cancelRefresh != nil {
			o.cancelRefresh()
			o.cancelRefresh = nil
		}
		o.win.Hide()
		o.visible = false

		o.logger.Debug().Msg("Overlay window hidden")
	})
}

// Visible reports whether the overlay is currently shown.
func (o *Overlay) Visible() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.visible
}

// buildWindow assembles the window content once. Caller holds o.mu and runs
// on the fyne thread.
func (o *Overlay) buildWindow() {
	o.win = o.app.NewWindow(constants.AppName)
	o.win.SetPadded(false)

	p := theme.Get(o.store.Get().Display.Theme)
	o.background = canvas.NewVerticalGradient(p.GradientStart, p.GradientEnd)
	o.clockText = canvas.NewText("", p.Text)
	o.clockText.TextStyle.Bold = true
	o.clockText.Alignment = fyne.TextAlignCenter
	o.dateText = canvas.NewText("", p.Muted)
	o.dateText.Alignment = fyne.TextAlignCenter
	o.weatherText = canvas.NewText("", p.Muted)
	o.weatherText.Alignment = fyne.TextAlignCenter
	o.todoBox = container.NewVBox()

	center := container.NewCenter(container.NewVBox(
		o.clockText,
		o.dateText,
		o.weatherText,
	))
	todoCorner := container.NewVBox(
		layout.NewSpacer(),
		container.NewHBox(layout.NewSpacer(), container.NewPadded(o.todoBox)),
	)
	content := container.NewStack(
		o.background,
		center,
		todoCorner,
	)

	dismiss := func() {
		if o.onDismiss != nil {
			o.onDismiss()
		}
	}
	o.win.SetContent(newInputCatcher(content, dismiss))
	o.win.Canvas().SetOnTypedKey(func(*fyne.KeyEvent) { dismiss() })
	o.win.Canvas().SetOnTypedRune(func(rune) { dismiss() })

	// Closing the window via the WM goes through the controller too, so the
	// state machine never thinks the overlay is still up.
	o.win.SetCloseIntercept(dismiss)
}

// applyTheme recolors the window from the configured palette. Caller holds
// o.mu and runs on the fyne thread.
func (o *Overlay) applyTheme(cfg *config.Config) {
	p := theme.Get(cfg.Display.Theme)

	start, end := p.GradientStart, p.GradientEnd
	// Window-level transparency is not portable, so opacity is applied to
	// the gradient alpha instead.
	start.A = uint8(float64(start.A) * cfg.Display.Opacity)
	end.A = uint8(float64(end.A) * cfg.Display.Opacity)
	o.background.StartColor = start
	o.background.EndColor = end

	o.clockText.Color = p.Text
	o.clockText.TextSize = float32(cfg.Display.FontSize)
	o.dateText.Color = p.Muted
	o.dateText.TextSize = float32(cfg.Display.FontSize) / 4
	o.weatherText.Color = p.Muted
	o.weatherText.TextSize = float32(cfg.Display.FontSize) / 5

	o.todoBox.RemoveAll()
	if cfg.Display.ShowTodo {
		for _, item := range cfg.Todo.Items {
			line := canvas.NewText("• "+item, p.Muted)
			line.TextSize = 18
			o.todoBox.Add(line)
		}
	}

	o.background.Refresh()
}

// refreshLocked redraws the text lines. Caller holds o.mu and runs on the
// fyne thread.
func (o *Overlay) refreshLocked(cfg *config.Config, now time.Time) {
	o.clockText.Text = FormatClock(now, cfg.Display.TimeFormat, cfg.Display.ShowSeconds)
	o.clockText.Refresh()

	if cfg.Display.ShowDate {
		o.dateText.Text = FormatDate(now, cfg.Display.DateFormat)
	} else {
		o.dateText.Text = ""
	}
	o.dateText.Refresh()

	line := ""
	if cfg.Display.ShowWeather && o.weather != nil {
		line = o.weather.DisplayLine(cfg.Weather.Units)
	}
	o.weatherText.Text = line
	o.weatherText.Refresh()
}

// refreshLoop redraws the clock until cancelled. The cadence follows the low
// power setting; seconds are only worth redrawing every second when shown.
func (o *Overlay) refreshLoop(ctx context.Context) {
	interval := constants.OverlayRefreshInterval
	cfg := o.store.Get()
	if cfg.Display.LowPowerMode || !cfg.Display.ShowSeconds {
		interval = constants.OverlayLowPowerRefreshInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			fyne.Do(func() {
				o.mu.Lock()
				defer o.mu.Unlock()
				if !o.visible {
					return
				}
				o.refreshLocked(o.store.Get(), time.Now())
			})
		case <-ctx.Done():
			return
		}
	}
}
