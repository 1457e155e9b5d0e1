package overlay

import (
	"time"
)

// FormatClock renders the time for the overlay clock line.
// format is "24h" or "12h"; unknown values fall back to 24h.
func FormatClock(t time.Time, format string, showSeconds bool) string {
	switch format {
	case "12h":
		if showSeconds {
			return t.Format("3:04:05 PM")
		}
		return t.Format("3:04 PM")
	default:
		if showSeconds {
			return t.Format("15:04:05")
		}
		return t.Format("15:04")
	}
}

// FormatDate renders the date line. format is "full", "short", or "iso";
// unknown values fall back to full.
func FormatDate(t time.Time, format string) string {
	switch format {
	case "short":
		return t.Format("Mon, Jan 2")
	case "iso":
		return t.Format("2006-01-02")
	default:
		return t.Format("Monday, January 2, 2006")
	}
}
