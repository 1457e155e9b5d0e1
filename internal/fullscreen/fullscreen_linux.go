//go:build linux

package fullscreen

import (
	"fmt"
	"os/exec"
	"strings"
)

type linuxDetector struct {
	xdotoolPath string
	xpropPath   string
}

func newDetector() Detector {
	d := &linuxDetector{}
	if path, err := exec.LookPath("xdotool"); err == nil {
		d.xdotoolPath = path
	}
	if path, err := exec.LookPath("xprop"); err == nil {
		d.xpropPath = path
	}
	return d
}

// FullscreenVideo checks the active X11 window: it must carry
// _NET_WM_STATE_FULLSCREEN and belong to a known video application.
// Without xdotool/xprop (or under pure Wayland) detection is unavailable
// and playback never suppresses the overlay.
func (d *linuxDetector) FullscreenVideo() (bool, error) {
	if d.xdotoolPath == "" || d.xpropPath == "" {
		return false, nil
	}

	out, err := exec.Command(d.xdotoolPath, "getactivewindow").Output()
	if err != nil {
		// No active window (empty desktop) is not an error worth surfacing
		return false, nil
	}
	windowID := strings.TrimSpace(string(out))
	if windowID == "" {
		return false, nil
	}

	props, err := exec.Command(d.xpropPath, "-id", windowID, "_NET_WM_STATE", "WM_CLASS").Output()
	if err != nil {
		return false, fmt.Errorf("xprop: %w", err)
	}
	return isFullscreenVideoProps(string(props)), nil
}

func isFullscreenVideoProps(props string) bool {
	if !strings.Contains(props, "_NET_WM_STATE_FULLSCREEN") {
		return false
	}
	// WM_CLASS(STRING) = "navigator", "firefox"
	for _, line := range strings.Split(props, "\n") {
		if !strings.Contains(line, "WM_CLASS") {
			continue
		}
		for _, part := range strings.Split(line, "\"") {
			if isVideoApp(part) {
				return true
			}
		}
	}
	return false
}
