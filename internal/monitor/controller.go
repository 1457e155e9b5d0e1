// Package monitor implements the activation controller: a polling loop that
// compares the system idle duration against the configured threshold and
// shows or hides the overlay accordingly.
package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/restmode/restmode/internal/config"
	"github.com/restmode/restmode/internal/constants"
	"github.com/restmode/restmode/internal/events"
	"github.com/restmode/restmode/internal/fullscreen"
	"github.com/restmode/restmode/internal/idle"
	"github.com/restmode/restmode/internal/logging"
	"github.com/restmode/restmode/internal/power"
)

// State is the controller state.
type State string

const (
	// StateWatching - user is active, idle duration below the threshold
	StateWatching State = "watching"

	// StatePending - idle threshold reached but activation is blocked by
	// suppression. The overlay appears as soon as suppression lifts.
	StatePending State = "pending"

	// StateDisplaying - the overlay is visible
	StateDisplaying State = "displaying"
)

// Suppression reasons, carried on SuppressionEvent.Reason.
const (
	ReasonManualPause     = "manual_pause"
	ReasonFullscreenVideo = "fullscreen_video"
)

// Display is the overlay surface the controller drives.
type Display interface {
	Show()
	Hide()
}

// Controller runs the activation loop.
//
// State transitions:
//   - Watching -> Displaying when idle >= threshold and not suppressed
//   - Watching -> Pending when idle >= threshold but suppressed
//   - Pending -> Displaying when suppression lifts with idle still past the
//     threshold
//   - Displaying -> Watching when idle resets (any user input) or on manual
//     deactivation
//
// Manual activation shows the overlay regardless of idle duration,
// suppression, or the enabled flag; it is dismissed only through Deactivate
// (the overlay calls it on key or mouse input).
type Controller struct {
	provider  idle.Provider
	detector  fullscreen.Detector
	display   Display
	screenOff func() error
	store     *config.Store
	bus       *events.EventBus
	logger    *logging.Logger

	// videoCheckInterval throttles the fullscreen video probe, which is far
	// more expensive than the idle query.
	videoCheckInterval time.Duration

	mu             sync.Mutex
	state          State
	manual         bool
	paused         bool
	videoSuppress  bool
	lastVideoCheck time.Time
	screenOffTimer *time.Timer
	idleErrLogged  bool
}

// NewController wires the controller to its idle source, suppression
// detector, and display.
func NewController(provider idle.Provider, detector fullscreen.Detector, display Display, store *config.Store, bus *events.EventBus, logger *logging.Logger) *Controller {
	return &Controller{
		provider:           provider,
		detector:           detector,
		display:            display,
		screenOff:          power.ScreenOff,
		store:              store,
		bus:                bus,
		logger:             logger,
		videoCheckInterval: constants.SuppressionCheckInterval,
		state:              StateWatching,
	}
}

// Run polls the idle source until ctx is cancelled. The poll interval follows
// the live configuration.
func (c *Controller) Run(ctx context.Context) {
	interval := c.store.Get().CheckInterval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	c.logger.Info().Dur("interval", interval).Msg("Activation controller started")

	for {
		select {
		case <-ticker.C:
			c.poll()
			if next := c.store.Get().CheckInterval(); next != interval {
				interval = next
				ticker.Reset(interval)
				c.logger.Debug().Dur("interval", interval).Msg("Poll interval updated")
			}
		case <-ctx.Done():
			c.Deactivate()
			return
		}
	}
}

// State returns the current controller state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Paused reports whether activation is manually paused.
func (c *Controller) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// SetPaused turns the manual activation pause on or off. Pausing while the
// overlay is displaying hides it.
func (c *Controller) SetPaused(paused bool) {
	c.mu.Lock()
	if c.paused == paused {
		c.mu.Unlock()
		return
	}
	c.paused = paused
	if paused && c.state == StateDisplaying {
		c.deactivateLocked(true)
	}
	c.mu.Unlock()

	c.bus.Publish(events.NewSuppression(paused, ReasonManualPause))
	c.logger.Info().Bool("paused", paused).Msg("Activation pause toggled")
}

// Activate shows the overlay immediately, bypassing the idle threshold,
// suppression, and the enabled flag.
func (c *Controller) Activate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateDisplaying {
		return
	}
	c.activateLocked(true)
}

// Deactivate hides the overlay. No-op when not displaying.
func (c *Controller) Deactivate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateDisplaying {
		return
	}
	c.deactivateLocked(true)
}

// Toggle flips overlay visibility.
func (c *Controller) Toggle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateDisplaying {
		c.deactivateLocked(true)
	} else {
		c.activateLocked(true)
	}
}

// poll performs one controller tick.
func (c *Controller) poll() {
	cfg := c.store.Get()

	idleDur, err := c.provider.IdleDuration()
	if err != nil {
		c.mu.Lock()
		logged := c.idleErrLogged
		c.idleErrLogged = true
		c.mu.Unlock()
		if !logged {
			c.logger.Warn().Err(err).Msg("Idle query failed, automatic activation unavailable")
		}
		return
	}

	suppressed := c.suppressed(cfg)

	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateDisplaying:
		// Idle duration dropping below the threshold means the user produced
		// input since activation. Manual overlays ignore it; the overlay
		// window dismisses those itself.
		if !c.manual && idleDur < cfg.IdleDelay() {
			c.deactivateLocked(false)
		}

	default:
		if !cfg.Activation.Enabled {
			c.transitionLocked(StateWatching, idleDur)
			return
		}
		if idleDur < cfg.IdleDelay() {
			c.transitionLocked(StateWatching, idleDur)
			return
		}
		if suppressed {
			c.transitionLocked(StatePending, idleDur)
			return
		}
		c.activateLocked(false)
	}
}

// suppressed evaluates both suppression sources. The fullscreen video probe
// result is cached between checks.
func (c *Controller) suppressed(cfg *config.Config) bool {
	c.mu.Lock()
	if c.paused {
		c.mu.Unlock()
		return true
	}
	due := time.Since(c.lastVideoCheck) >= c.videoCheckInterval
	prev := c.videoSuppress
	c.mu.Unlock()

	if !due {
		return prev
	}

	video, err := c.detector.FullscreenVideo()
	if err != nil {
		c.logger.Debug().Err(err).Msg("Fullscreen video check failed")
		video = false
	}

	c.mu.Lock()
	c.lastVideoCheck = time.Now()
	c.videoSuppress = video
	c.mu.Unlock()

	if video != prev {
		c.bus.Publish(events.NewSuppression(video, ReasonFullscreenVideo))
		c.logger.Info().Bool("suppressed", video).Msg("Fullscreen video suppression changed")
	}
	return video
}

// activateLocked shows the overlay. Caller holds c.mu.
func (c *Controller) activateLocked(manual bool) {
	old := c.state
	c.state = StateDisplaying
	c.manual = manual
	c.display.Show()

	cfg := c.store.Get()
	if delay := cfg.ScreenOffDelay(); delay > 0 {
		c.screenOffTimer = time.AfterFunc(delay, c.screenOffFired)
	}

	c.bus.Publish(events.NewStateChange(string(old), string(StateDisplaying), 0))
	c.bus.Publish(events.NewOverlayShown(manual))
	c.logger.Info().Bool("manual", manual).Msg("Overlay activated")
}

// deactivateLocked hides the overlay. Caller holds c.mu.
func (c *Controller) deactivateLocked(manual bool) {
	if c.screenOffTimer != nil {
		c.screenOffTimer.Stop()
		c.screenOffTimer = nil
	}

	old := c.state
	c.state = StateWatching
	c.manual = false
	c.display.Hide()

	c.bus.Publish(events.NewStateChange(string(old), string(StateWatching), 0))
	c.bus.Publish(events.NewOverlayHidden(manual))
	c.logger.Info().Bool("manual", manual).Msg("Overlay deactivated")
}

// transitionLocked records a Watching/Pending move. Caller holds c.mu.
func (c *Controller) transitionLocked(next State, idleDur time.Duration) {
	if c.state == next {
		return
	}
	old := c.state
	c.state = next
	c.bus.Publish(events.NewStateChange(string(old), string(next), idleDur))
	c.logger.Debug().Str("from", string(old)).Str("to", string(next)).Dur("idle", idleDur).Msg("State change")
}

// screenOffFired powers the display down if the overlay is still showing when
// the screen-off timer expires.
func (c *Controller) screenOffFired() {
	c.mu.Lock()
	displaying := c.state == StateDisplaying
	c.mu.Unlock()
	if !displaying {
		return
	}
	if err := c.screenOff(); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to turn off screen")
	} else {
		c.logger.Info().Msg("Screen turned off after overlay delay")
	}
}
