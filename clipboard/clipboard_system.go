//go:build !android

package clipboard

import (
	log "github.com/sirupsen/logrus"
	sysclip "golang.design/x/clipboard"
	"os/exec"
)

// systemClipboard uses the native clipboard through golang.design.
type systemClipboard struct{}

func (c *systemClipboard) Name() string {
	return "system"
}

func (c *systemClipboard) Copy(data []byte) error {
	sysclip.Write(sysclip.FmtText, data)
	return nil
}

// initPlatformClipboard tries golang.design first, then CLI tools.
func initPlatformClipboard() (clipboarder, error) {
	err := sysclip.Init()
	if err == nil {
		return &systemClipboard{}, nil
	}
	log.WithError(err).Info("System clipboard unavailable, looking for CLI tools")

	if c, ok := findCLIClipboard(exec.LookPath); ok {
		return c, nil
	}
	return nil, ErrUnavailable
}
