//go:build windows

package idle

import (
	"fmt"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	kernel32             = windows.NewLazySystemDLL("kernel32.dll")
	procGetLastInputInfo = user32.NewProc("GetLastInputInfo")
	procGetTickCount64   = kernel32.NewProc("GetTickCount64")
)

type lastInputInfo struct {
	cbSize uint32
	dwTime uint32
}

type windowsProvider struct{}

func newProvider() Provider {
	return windowsProvider{}
}

// IdleDuration queries GetLastInputInfo. dwTime is a 32-bit tick value, so
// the subtraction is done in 32-bit space to survive the 49-day wraparound.
func (windowsProvider) IdleDuration() (time.Duration, error) {
	var info lastInputInfo
	info.cbSize = uint32(unsafe.Sizeof(info))

	ret, _, err := procGetLastInputInfo.Call(uintptr(unsafe.Pointer(&info)))
	if ret == 0 {
		return 0, fmt.Errorf("GetLastInputInfo: %w", err)
	}

	tick, _, _ := procGetTickCount64.Call()
	idleMillis := uint32(tick) - info.dwTime

	return time.Duration(idleMillis) * time.Millisecond, nil
}
