// Package power turns the display off after the overlay has been showing for
// a configured time. Failures are reported to the caller, which logs and
// keeps the overlay running; screen-off is best effort.
package power

// ScreenOff powers the display(s) down using the platform mechanism.
// The display wakes on the next input event.
func ScreenOff() error {
	return screenOff()
}
