//go:build windows

package power

import (
	"fmt"

	"golang.org/x/sys/windows"
)

const (
	hwndBroadcast   = 0xFFFF
	wmSyscommand    = 0x0112
	scMonitorPower  = 0xF170
	monitorPowerOff = 2
)

var (
	user32           = windows.NewLazySystemDLL("user32.dll")
	procSendMessageW = user32.NewProc("SendMessageW")
)

// screenOff broadcasts SC_MONITORPOWER to all top-level windows.
func screenOff() error {
	_, _, err := procSendMessageW.Call(hwndBroadcast, wmSyscommand, scMonitorPower, monitorPowerOff)
	if err != nil && err != windows.ERROR_SUCCESS {
		return fmt.Errorf("SendMessageW(SC_MONITORPOWER): %w", err)
	}
	return nil
}
