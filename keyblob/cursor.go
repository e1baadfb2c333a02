package keyblob

import (
	"fmt"
	"golang.org/x/crypto/ssh"
)

// cursor reads length-prefixed fields (RFC 4253 string/mpint framing) from a blob.
type cursor struct {
	rest []byte
}

func newCursor(buf []byte) *cursor {
	return &cursor{rest: buf}
}

func (c *cursor) remaining() int {
	return len(c.rest)
}

// peekLength returns the declared length of the next field without consuming it.
func (c *cursor) peekLength() (uint32, error) {
	var hdr struct {
		Length uint32
		Rest   []byte `ssh:"rest"`
	}
	if err := ssh.Unmarshal(c.rest, &hdr); err != nil {
		return 0, fmt.Errorf("%w: reading field length with %d bytes left: %v", ErrTruncatedBuffer, c.remaining(), err)
	}
	return hdr.Length, nil
}

// readField reads a 4-byte big-endian length L and returns the next L bytes.
func (c *cursor) readField() ([]byte, error) {
	var f struct {
		Field []byte
		Rest  []byte `ssh:"rest"`
	}
	if err := ssh.Unmarshal(c.rest, &f); err != nil {
		return nil, fmt.Errorf("%w: reading field with %d bytes left: %v", ErrTruncatedBuffer, c.remaining(), err)
	}
	c.rest = f.Rest
	return f.Field, nil
}

// skip advances past n bytes without reading them.
func (c *cursor) skip(n int) error {
	if n < 0 || n > c.remaining() {
		return fmt.Errorf("%w: %d bytes wanted, have %d", ErrTruncatedBuffer, n, c.remaining())
	}
	c.rest = c.rest[n:]
	return nil
}
