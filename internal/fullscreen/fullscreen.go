// Package fullscreen detects whether a fullscreen video is likely playing,
// so the overlay does not interrupt movie playback.
package fullscreen

import (
	"strings"
)

// Detector reports whether a fullscreen video player or browser currently
// covers the screen.
type Detector interface {
	FullscreenVideo() (bool, error)
}

// NewDetector returns the detector for the current platform.
func NewDetector() Detector {
	return newDetector()
}

// videoApps are process/application names treated as video players. Browsers
// count: a fullscreen browser window almost always means video playback.
var videoApps = []string{
	"vlc", "mpv", "potplayer", "mpc-hc", "mpc-be", "wmplayer",
	"chrome", "chromium", "msedge", "firefox", "opera", "brave",
	"safari", "netflix", "disneyplus", "moviesandtv", "totem", "celluloid",
}

// isVideoApp reports whether name matches a known video application.
// Matching is case-insensitive and ignores an .exe suffix.
func isVideoApp(name string) bool {
	name = strings.ToLower(strings.TrimSuffix(strings.ToLower(name), ".exe"))
	for _, app := range videoApps {
		if strings.Contains(name, app) {
			return true
		}
	}
	return false
}
