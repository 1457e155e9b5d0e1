//go:build linux

package fullscreen

import (
	"testing"
)

func TestIsFullscreenVideoProps(t *testing.T) {
	fullscreenFirefox := `_NET_WM_STATE(ATOM) = _NET_WM_STATE_FULLSCREEN
WM_CLASS(STRING) = "Navigator", "firefox"`

	fullscreenEditor := `_NET_WM_STATE(ATOM) = _NET_WM_STATE_FULLSCREEN
WM_CLASS(STRING) = "code", "Code"`

	windowedVLC := `_NET_WM_STATE(ATOM) = _NET_WM_STATE_FOCUSED
WM_CLASS(STRING) = "vlc", "vlc"`

	tests := []struct {
		name  string
		props string
		want  bool
	}{
		{"fullscreen browser", fullscreenFirefox, true},
		{"fullscreen editor", fullscreenEditor, false},
		{"windowed player", windowedVLC, false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isFullscreenVideoProps(tt.props); got != tt.want {
				t.Errorf("isFullscreenVideoProps() = %v, want %v", got, tt.want)
			}
		})
	}
}
