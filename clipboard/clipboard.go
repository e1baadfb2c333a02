// Package clipboard copies rendered reports to the system clipboard.
package clipboard

import (
	"context"
	"errors"
	log "github.com/sirupsen/logrus"
	"sync"
	"time"
)

const clipboardTimeout = 2 * time.Second

var (
	ErrUnavailable    = errors.New("no clipboard available: install xsel, xclip or wl-clipboard")
	ErrNotInitialized = errors.New("clipboard not initialized")
	ErrTimeout        = errors.New("clipboard did not respond")
)

// clipboarder is a clipboard backend.
type clipboarder interface {
	Copy(data []byte) error
	Name() string
}

var (
	mu     sync.Mutex
	active clipboarder
)

// Init picks the first working backend for this platform.
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	if active != nil {
		return nil
	}

	c, err := initPlatformClipboard()
	if err != nil {
		return err
	}
	active = c
	log.WithField("backend", c.Name()).Info("Using clipboard")
	return nil
}

func current() clipboarder {
	mu.Lock()
	defer mu.Unlock()
	return active
}

// Copy writes data to the clipboard, giving up after a short timeout.
func Copy(ctx context.Context, data []byte) error {
	c := current()
	if c == nil {
		return ErrNotInitialized
	}

	ctx, cancel := context.WithTimeout(ctx, clipboardTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- c.Copy(data)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ErrTimeout
	}
}
