//go:build darwin

package power

import (
	"fmt"
	"os/exec"
)

// screenOff sleeps the displays via pmset.
func screenOff() error {
	if out, err := exec.Command("pmset", "displaysleepnow").CombinedOutput(); err != nil {
		return fmt.Errorf("pmset displaysleepnow: %w: %s", err, out)
	}
	return nil
}
