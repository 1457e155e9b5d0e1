//go:build darwin

package idle

import (
	"testing"
	"time"
)

func TestParseHIDIdleTime(t *testing.T) {
	output := `    | |   "HIDParameters" = {...}
    | |   "HIDIdleTime" = 2500000000
    | |   "HIDDefaultParameters" = Yes`

	got, err := parseHIDIdleTime(output)
	if err != nil {
		t.Fatalf("parseHIDIdleTime failed: %v", err)
	}
	if got != 2500*time.Millisecond {
		t.Errorf("Expected 2.5s, got %v", got)
	}
}

func TestParseHIDIdleTimeMissing(t *testing.T) {
	if _, err := parseHIDIdleTime("no such key here"); err == nil {
		t.Error("Expected error for output without HIDIdleTime")
	}
}
