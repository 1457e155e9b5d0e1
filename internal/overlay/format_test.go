package overlay

import (
	"testing"
	"time"
)

var testTime = time.Date(2025, time.March, 9, 14, 7, 3, 0, time.UTC)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		format      string
		showSeconds bool
		want        string
	}{
		{"24h", true, "14:07:03"},
		{"24h", false, "14:07"},
		{"12h", true, "2:07:03 PM"},
		{"12h", false, "2:07 PM"},
		{"bogus", true, "14:07:03"}, // unknown format falls back to 24h
	}

	for _, tt := range tests {
		if got := FormatClock(testTime, tt.format, tt.showSeconds); got != tt.want {
			t.Errorf("FormatClock(%q, %v) = %q, want %q", tt.format, tt.showSeconds, got, tt.want)
		}
	}
}

func TestFormatClockMorning(t *testing.T) {
	morning := time.Date(2025, time.March, 9, 0, 5, 0, 0, time.UTC)
	if got := FormatClock(morning, "12h", false); got != "12:05 AM" {
		t.Errorf("Expected 12:05 AM, got %q", got)
	}
	if got := FormatClock(morning, "24h", false); got != "00:05" {
		t.Errorf("Expected 00:05, got %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"full", "Sunday, March 9, 2025"},
		{"short", "Sun, Mar 9"},
		{"iso", "2025-03-09"},
		{"bogus", "Sunday, March 9, 2025"},
	}

	for _, tt := range tests {
		if got := FormatDate(testTime, tt.format); got != tt.want {
			t.Errorf("FormatDate(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}
