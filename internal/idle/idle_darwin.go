//go:build darwin

package idle

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

type darwinProvider struct{}

func newProvider() Provider {
	return darwinProvider{}
}

// IdleDuration reads HIDIdleTime (nanoseconds) from the IOHIDSystem registry
// entry.
func (darwinProvider) IdleDuration() (time.Duration, error) {
	output, err := exec.Command("ioreg", "-c", "IOHIDSystem").Output()
	if err != nil {
		return 0, fmt.Errorf("ioreg: %w", err)
	}
	return parseHIDIdleTime(string(output))
}

func parseHIDIdleTime(output string) (time.Duration, error) {
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, "HIDIdleTime") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return 0, fmt.Errorf("unexpected ioreg output format")
		}
		nanoseconds, err := strconv.ParseInt(fields[len(fields)-1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse HIDIdleTime: %w", err)
		}
		return time.Duration(nanoseconds), nil
	}
	return 0, fmt.Errorf("HIDIdleTime not found in ioreg output")
}
