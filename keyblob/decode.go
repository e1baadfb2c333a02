package keyblob

import (
	"encoding/base64"
	"fmt"
	log "github.com/sirupsen/logrus"
)

const (
	minTypeLength = 1
	maxTypeLength = 20
)

// Options control a single decode.
type Options struct {
	WantSHA256 bool
	// Debug logs field lengths and the error that caused a fallback.
	Debug  bool
	Logger log.FieldLogger
}

func (o Options) logger() log.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.StandardLogger()
}

// Decode turns one tokenized key line into a KeyRecord. It never fails: legacy
// SSH-1 data and blobs that cannot be decoded produce a record with Failed set.
// keyType is the type token from the line; the reported type is read from the blob.
func Decode(keyType, keyData, comment string, lineNumber int, opts Options) KeyRecord {
	l := opts.logger().WithFields(log.Fields{"line": lineNumber, "lineType": keyType})

	if IsLegacy(keyData) {
		if opts.Debug {
			l.Debug("SSH-1 key data, not decoding")
		}
		return legacyRecord(lineNumber, comment)
	}

	blob, err := base64.StdEncoding.DecodeString(keyData)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	} else {
		var rec KeyRecord
		rec, err = DecodeBlob(blob, lineNumber, comment, opts)
		if err == nil {
			return rec
		}
	}

	if opts.Debug {
		l.WithError(err).Debug("Could not decode key, using fallback")
	}
	return fallbackRecord(lineNumber, comment)
}

// DecodeBlob decodes a raw key blob and returns any error instead of falling back.
func DecodeBlob(blob []byte, lineNumber int, comment string, opts Options) (KeyRecord, error) {
	trace := func(string, int) {}
	if opts.Debug {
		l := opts.logger().WithField("line", lineNumber)
		trace = func(field string, n int) {
			l.WithFields(log.Fields{"field": field, "length": n}).Debug("Read field")
		}
	}

	rec := KeyRecord{
		LineNumber:     lineNumber,
		Comment:        comment,
		FingerprintMD5: FingerprintMD5(blob),
	}
	if opts.WantSHA256 {
		rec.FingerprintSHA256 = FingerprintSHA256(blob)
	}

	c := newCursor(blob)
	n, err := c.peekLength()
	if err != nil {
		return KeyRecord{}, fmt.Errorf("reading key type: %w", err)
	}
	if n <= minTypeLength || n >= maxTypeLength {
		return KeyRecord{}, fmt.Errorf("%w: %d", ErrInvalidTypeLength, n)
	}
	name, err := c.readField()
	if err != nil {
		return KeyRecord{}, fmt.Errorf("reading key type: %w", err)
	}
	trace("type", len(name))

	alg := AlgorithmOf(string(name))
	decode, ok := decoders[alg]
	if !ok {
		return KeyRecord{}, fmt.Errorf("%w: %q", ErrUnknownKeyType, name)
	}
	size, err := decode(c, trace)
	if err != nil {
		return KeyRecord{}, err
	}

	rec.KeyType = string(name)
	rec.ModulusBits = size.bits
	rec.Exponent = size.exponent
	rec.TypeVersion = alg.TypeVersion()
	return rec, nil
}
