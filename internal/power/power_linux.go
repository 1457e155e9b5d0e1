//go:build linux

package power

import (
	"fmt"
	"os/exec"
)

// screenOff forces DPMS off via xset. On Wayland sessions without XWayland
// this fails; the caller logs and continues with the overlay visible.
func screenOff() error {
	if _, err := exec.LookPath("xset"); err != nil {
		return fmt.Errorf("xset not found: %w", err)
	}
	if out, err := exec.Command("xset", "dpms", "force", "off").CombinedOutput(); err != nil {
		return fmt.Errorf("xset dpms force off: %w: %s", err, out)
	}
	return nil
}
