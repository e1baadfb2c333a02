// Package keyblob decodes SSH public key blobs and computes their fingerprints.
package keyblob

import "errors"

var (
	ErrInvalidEncoding   = errors.New("invalid base64 key data")
	ErrInvalidTypeLength = errors.New("key type length out of range")
	ErrUnknownKeyType    = errors.New("unknown key type")
	ErrTruncatedBuffer   = errors.New("truncated key blob")
)
