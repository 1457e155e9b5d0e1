//go:build windows

package fullscreen

import (
	"path/filepath"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                       = windows.NewLazySystemDLL("user32.dll")
	procEnumWindows              = user32.NewProc("EnumWindows")
	procIsWindowVisible          = user32.NewProc("IsWindowVisible")
	procGetWindowRect            = user32.NewProc("GetWindowRect")
	procGetSystemMetrics         = user32.NewProc("GetSystemMetrics")
	procGetWindowThreadProcessID = user32.NewProc("GetWindowThreadProcessId")
)

const (
	smCxScreen = 0
	smCyScreen = 1

	// Tolerances from the window rect to the screen edge: a fullscreen video
	// window may keep a sliver for the taskbar.
	fullscreenSlackX = 10
	fullscreenSlackY = 40
)

type rect struct {
	Left, Top, Right, Bottom int32
}

type windowsDetector struct{}

func newDetector() Detector {
	return windowsDetector{}
}

// FullscreenVideo enumerates top-level windows looking for one that is
// visible, covers (almost) the whole primary screen, and belongs to a known
// video player or browser process.
func (windowsDetector) FullscreenVideo() (bool, error) {
	screenW, _, _ := procGetSystemMetrics.Call(smCxScreen)
	screenH, _, _ := procGetSystemMetrics.Call(smCyScreen)

	found := false
	cb := syscall.NewCallback(func(hwnd uintptr, _ uintptr) uintptr {
		if visible, _, _ := procIsWindowVisible.Call(hwnd); visible == 0 {
			return 1 // continue enumeration
		}

		var r rect
		if ok, _, _ := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&r))); ok == 0 {
			return 1
		}
		if int(r.Right-r.Left) < int(screenW)-fullscreenSlackX ||
			int(r.Bottom-r.Top) < int(screenH)-fullscreenSlackY {
			return 1
		}

		var pid uint32
		procGetWindowThreadProcessID.Call(hwnd, uintptr(unsafe.Pointer(&pid)))
		if pid == 0 {
			return 1
		}
		if isVideoApp(processImageName(pid)) {
			found = true
			return 0 // stop enumeration
		}
		return 1
	})

	procEnumWindows.Call(cb, 0)
	return found, nil
}

// processImageName returns the executable base name for a PID, or "" when
// the process cannot be opened (e.g. elevated).
func processImageName(pid uint32) string {
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, pid)
	if err != nil {
		return ""
	}
	defer windows.CloseHandle(h)

	buf := make([]uint16, windows.MAX_PATH)
	size := uint32(len(buf))
	if err := windows.QueryFullProcessImageName(h, 0, &buf[0], &size); err != nil {
		return ""
	}
	return filepath.Base(windows.UTF16ToString(buf[:size]))
}
