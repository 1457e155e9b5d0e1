//go:build darwin

package fullscreen

import (
	"fmt"
	"os/exec"
	"strings"
)

type darwinDetector struct{}

func newDetector() Detector {
	return darwinDetector{}
}

// frontmostScript asks System Events for the frontmost app name and whether
// its front window is zoomed to the full screen.
const frontmostScript = `tell application "System Events"
  set frontApp to first application process whose frontmost is true
  set appName to name of frontApp
  set isFull to false
  try
    set isFull to value of attribute "AXFullScreen" of front window of frontApp
  end try
  return appName & "|" & isFull
end tell`

// FullscreenVideo reports whether the frontmost application is a known video
// app with its front window in native fullscreen.
func (darwinDetector) FullscreenVideo() (bool, error) {
	out, err := exec.Command("osascript", "-e", frontmostScript).Output()
	if err != nil {
		return false, fmt.Errorf("osascript: %w", err)
	}
	return parseFrontmost(string(out)), nil
}

func parseFrontmost(out string) bool {
	parts := strings.SplitN(strings.TrimSpace(out), "|", 2)
	if len(parts) != 2 {
		return false
	}
	return isVideoApp(parts[0]) && strings.EqualFold(strings.TrimSpace(parts[1]), "true")
}
