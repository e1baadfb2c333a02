package clipboard

import (
	"fmt"
	"os"
	"os/exec"
)

const (
	xsel   = "xsel"
	xclip  = "xclip"
	wlcopy = "wl-copy"
	termux = "termux-clipboard-set"
)

var (
	xselCopyArgs   = []string{xsel, "--input", "--clipboard"}
	xclipCopyArgs  = []string{xclip, "-in", "-selection", "clipboard"}
	wlcopyArgs     = []string{wlcopy}
	termuxCopyArgs = []string{termux}
)

// cliClipboard pipes data into an external clipboard tool.
type cliClipboard struct {
	args []string
}

func (c *cliClipboard) Name() string {
	return c.args[0]
}

func (c *cliClipboard) Copy(data []byte) error {
	cmd := exec.Command(c.args[0], c.args[1:]...)
	in, err := cmd.StdinPipe()
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", c.args[0], err)
	}
	if _, err := in.Write(data); err != nil {
		return err
	}
	if err := in.Close(); err != nil {
		return err
	}
	return cmd.Wait()
}

// findCLIClipboard returns the first clipboard tool found in PATH.
func findCLIClipboard(lookPath func(string) (string, error)) (*cliClipboard, bool) {
	var candidates [][]string
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		candidates = append(candidates, wlcopyArgs)
	}
	candidates = append(candidates, xclipCopyArgs, xselCopyArgs, termuxCopyArgs)

	for _, args := range candidates {
		if _, err := lookPath(args[0]); err == nil {
			return &cliClipboard{args: args}, true
		}
	}
	return nil, false
}
