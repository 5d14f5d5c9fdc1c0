//go:build !windows

package window

import (
	"fmt"
	"runtime"
)

func enumerate() ([]Window, error) {
	return nil, fmt.Errorf("window management not supported on %s", runtime.GOOS)
}

func focus(Window) error {
	return fmt.Errorf("window management not supported on %s", runtime.GOOS)
}
