//go:build linux

package idle

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/godbus/dbus/v5"
)

// Mutter idle monitor D-Bus identifiers (GNOME, works on Wayland and X11)
const (
	idleMonitorDest   = "org.gnome.Mutter.IdleMonitor"
	idleMonitorPath   = "/org/gnome/Mutter/IdleMonitor/Core"
	idleMonitorMethod = "org.gnome.Mutter.IdleMonitor.GetIdletime"
)

type linuxProvider struct {
	conn           *dbus.Conn
	xprintidlePath string
}

func newProvider() Provider {
	p := &linuxProvider{}
	if conn, err := dbus.SessionBus(); err == nil {
		p.conn = conn
	}
	if path, err := exec.LookPath("xprintidle"); err == nil {
		p.xprintidlePath = path
	}
	return p
}

// IdleDuration tries the Mutter idle monitor first, then xprintidle. The
// D-Bus route is preferred because it also works under Wayland, where X11
// screensaver extensions see no input.
func (p *linuxProvider) IdleDuration() (time.Duration, error) {
	if p.conn != nil {
		if d, err := p.mutterIdle(); err == nil {
			return d, nil
		}
	}
	if p.xprintidlePath != "" {
		return p.xprintidle()
	}
	return 0, ErrUnavailable
}

func (p *linuxProvider) mutterIdle() (time.Duration, error) {
	var idleMillis uint64
	obj := p.conn.Object(idleMonitorDest, dbus.ObjectPath(idleMonitorPath))
	if err := obj.Call(idleMonitorMethod, 0).Store(&idleMillis); err != nil {
		return 0, fmt.Errorf("mutter idle monitor: %w", err)
	}
	return time.Duration(idleMillis) * time.Millisecond, nil
}

func (p *linuxProvider) xprintidle() (time.Duration, error) {
	output, err := exec.Command(p.xprintidlePath).Output()
	if err != nil {
		return 0, fmt.Errorf("xprintidle: %w", err)
	}
	return parseIdleMillis(string(output))
}

func parseIdleMillis(s string) (time.Duration, error) {
	value := strings.TrimSpace(s)
	idleMillis, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse idle milliseconds: %w", err)
	}
	if idleMillis < 0 {
		idleMillis = 0
	}
	return time.Duration(idleMillis) * time.Millisecond, nil
}
