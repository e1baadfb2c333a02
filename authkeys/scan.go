package authkeys

import (
	"bufio"
	"context"
	"fmt"
	log "github.com/sirupsen/logrus"
	"io"
	"keyaudit/keyblob"
	"os"
)

const maxLineSize = 1024 * 1024

// Scan decodes every key line of r in input order. A line that fails to
// decode, or is longer than maxLineSize, does not stop the scan.
func Scan(ctx context.Context, r io.Reader, opts keyblob.Options) ([]keyblob.KeyRecord, error) {
	var records []keyblob.KeyRecord

	br := bufio.NewReader(r)
	lineNumber := 0
	for {
		if err := ctx.Err(); err != nil {
			return records, err
		}

		line, tooLong, err := readLine(br)
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return records, fmt.Errorf("reading line %d: %w", lineNumber+1, err)
		}
		lineNumber++

		if tooLong {
			log.WithFields(log.Fields{"line": lineNumber, "limit": maxLineSize}).Warn("Skipping oversized line")
			continue
		}

		tok, ok := ParseLine(line, lineNumber)
		if !ok {
			continue
		}
		records = append(records, keyblob.Decode(tok.KeyType, tok.KeyData, tok.Comment, tok.LineNumber, opts))
	}
}

// readLine returns the next line without its line ending. Lines over
// maxLineSize are consumed and reported with tooLong set.
func readLine(br *bufio.Reader) (line string, tooLong bool, err error) {
	var buf []byte
	read := false
	for {
		chunk, isPrefix, rerr := br.ReadLine()
		if rerr != nil {
			if rerr == io.EOF && read {
				return string(buf), tooLong, nil
			}
			return "", false, rerr
		}
		read = true
		if !tooLong {
			if len(buf)+len(chunk) > maxLineSize {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			return string(buf), tooLong, nil
		}
	}
}

// ScanFile opens path, or stdin when path is "-", and scans it.
func ScanFile(ctx context.Context, path string, opts keyblob.Options) ([]keyblob.KeyRecord, error) {
	if path == "-" {
		return Scan(ctx, os.Stdin, opts)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open key file: %w", err)
	}
	defer f.Close()

	records, err := Scan(ctx, f, opts)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}
	log.WithFields(log.Fields{"path": path, "keys": len(records)}).Info("Scanned key file")
	return records, nil
}
