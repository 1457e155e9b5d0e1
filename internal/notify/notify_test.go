package notify

import (
	"strings"
	"testing"

	"github.com/restmode/restmode/internal/logging"
)

func TestSetEnabled(t *testing.T) {
	n := NewNotifier(true, logging.NewDefaultCLILogger())
	if !n.IsEnabled() {
		t.Error("Expected notifier to start enabled")
	}
	n.SetEnabled(false)
	if n.IsEnabled() {
		t.Error("Expected notifier to be disabled")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		max   int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly-10", 10, "exactly-10"},
		{"this string is definitely too long", 10, "this st..."},
	}

	for _, tt := range tests {
		if got := truncate(tt.input, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
		}
	}
}

func TestTruncateMultibyte(t *testing.T) {
	s := strings.Repeat("ø", 50)
	got := truncate(s, 20)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Expected ellipsis suffix, got %q", got)
	}
}
