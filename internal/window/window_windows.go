//go:build windows

package window

import (
	"fmt"
	"syscall"
	"unsafe"

	winapi "github.com/lxn/win"
	"golang.org/x/sys/windows"
)

var (
	user32             = windows.NewLazySystemDLL("user32.dll")
	procEnumWindows    = user32.NewProc("EnumWindows")
	procGetWindowTextW = user32.NewProc("GetWindowTextW")
)

// enumerate lists all visible top-level windows that carry a title.
func enumerate() ([]Window, error) {
	var found []Window

	cb := syscall.NewCallback(func(hwnd uintptr, _ uintptr) uintptr {
		h := winapi.HWND(hwnd)
		if !winapi.IsWindowVisible(h) {
			return 1
		}
		if title := windowText(h); title != "" {
			found = append(found, Window{Handle: hwnd, Title: title})
		}
		return 1
	})

	ret, _, err := procEnumWindows.Call(cb, 0)
	if ret == 0 {
		return nil, fmt.Errorf("EnumWindows failed: %v", err)
	}
	return found, nil
}

// focus restores the window if minimized and brings it to the foreground.
func focus(w Window) error {
	h := winapi.HWND(w.Handle)
	if winapi.IsIconic(h) {
		winapi.ShowWindow(h, winapi.SW_RESTORE)
	}
	if !winapi.SetForegroundWindow(h) {
		return fmt.Errorf("SetForegroundWindow failed")
	}
	return nil
}

func windowText(h winapi.HWND) string {
	buf := make([]uint16, 512)
	r, _, _ := procGetWindowTextW.Call(uintptr(h), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	n := int32(r)
	if n <= 0 {
		return ""
	}
	return syscall.UTF16ToString(buf[:n])
}
