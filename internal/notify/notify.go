// Package notify provides cross-platform desktop notifications for Restmode.
// It uses github.com/gen2brain/beeep for cross-platform notification support.
package notify

import (
	"fmt"
	"sync"

	"github.com/gen2brain/beeep"

	"github.com/restmode/restmode/internal/constants"
	"github.com/restmode/restmode/internal/logging"
)

// Notifier handles desktop notifications.
type Notifier struct {
	logger  *logging.Logger
	enabled bool
	mu      sync.RWMutex
}

// NewNotifier creates a new notifier.
func NewNotifier(enabled bool, logger *logging.Logger) *Notifier {
	return &Notifier{
		logger:  logger,
		enabled: enabled,
	}
}

// SetEnabled enables or disables notifications.
func (n *Notifier) SetEnabled(enabled bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.enabled = enabled
}

// IsEnabled returns whether notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.enabled
}

// UpdateAvailable announces a newer release.
func (n *Notifier) UpdateAvailable(version string) {
	if !n.IsEnabled() {
		return
	}
	title := constants.AppName + " Update Available"
	message := fmt.Sprintf("Version %s is ready to download.", version)
	if err := n.send(title, message); err != nil {
		n.logger.Warn().Err(err).Str("version", version).Msg("Failed to send update notification")
	}
}

// UpdateDownloaded announces a release staged for install.
func (n *Notifier) UpdateDownloaded(version string) {
	if !n.IsEnabled() {
		return
	}
	title := constants.AppName + " Update Downloaded"
	message := fmt.Sprintf("Version %s will be installed on next restart.", version)
	if err := n.send(title, message); err != nil {
		n.logger.Warn().Err(err).Str("version", version).Msg("Failed to send update downloaded notification")
	}
}

// DashboardSynced announces that remote settings were applied.
func (n *Notifier) DashboardSynced() {
	if !n.IsEnabled() {
		return
	}
	if err := n.send(constants.AppName, "Settings synced from dashboard."); err != nil {
		n.logger.Warn().Err(err).Msg("Failed to send dashboard sync notification")
	}
}

// Paused announces that automatic activation was paused from the tray.
func (n *Notifier) Paused(paused bool) {
	if !n.IsEnabled() {
		return
	}
	message := "Automatic activation paused."
	if !paused {
		message = "Automatic activation resumed."
	}
	if err := n.send(constants.AppName, message); err != nil {
		n.logger.Warn().Err(err).Msg("Failed to send pause notification")
	}
}

// RestReminder announces that the idle threshold was reached. Used by the
// tray-only companion, which sends a notification instead of the overlay.
func (n *Notifier) RestReminder() {
	if !n.IsEnabled() {
		return
	}
	if err := n.send(constants.AppName, "Idle threshold reached. Time to rest your eyes."); err != nil {
		n.logger.Warn().Err(err).Msg("Failed to send rest reminder")
	}
}

// Error surfaces a component failure the user should know about.
func (n *Notifier) Error(component, message string) {
	if !n.IsEnabled() {
		return
	}
	title := constants.AppName + " Error"
	if err := n.send(title, fmt.Sprintf("%s: %s", component, truncate(message, 120))); err != nil {
		n.logger.Warn().Err(err).Str("component", component).Msg("Failed to send error notification")
	}
}

func (n *Notifier) send(title, message string) error {
	return beeep.Notify(title, message, "")
}

// truncate shortens s to max runes, appending an ellipsis when cut.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
