//go:build android

package clipboard

import "os/exec"

// initPlatformClipboard only has CLI tools to offer on Android.
func initPlatformClipboard() (clipboarder, error) {
	if c, ok := findCLIClipboard(exec.LookPath); ok {
		return c, nil
	}
	return nil, ErrUnavailable
}
