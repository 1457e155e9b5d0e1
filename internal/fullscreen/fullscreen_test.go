package fullscreen

import (
	"testing"
)

func TestIsVideoApp(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"vlc.exe", true},
		{"VLC", true},
		{"firefox", true},
		{"Google Chrome", true},
		{"msedge.exe", true},
		{"Safari", true},
		{"code", false},
		{"explorer.exe", false},
		{"Terminal", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isVideoApp(tt.name); got != tt.want {
			t.Errorf("isVideoApp(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
