//go:build linux

package idle

import (
	"testing"
	"time"
)

func TestParseIdleMillis(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"plain", "1500", 1500 * time.Millisecond, false},
		{"trailing newline", "250\n", 250 * time.Millisecond, false},
		{"zero", "0", 0, false},
		{"negative clamped", "-10", 0, false},
		{"garbage", "abc", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseIdleMillis(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseIdleMillis(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("parseIdleMillis(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
