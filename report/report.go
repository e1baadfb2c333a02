// Package report renders decoded key records.
package report

import (
	"encoding/json"
	"fmt"
	"gopkg.in/yaml.v3"
	"io"
	"keyaudit/keyblob"
	"strconv"
	"strings"
)

const (
	FormatTable = "table"
	FormatYAML  = "yaml"
	FormatJSON  = "json"
)

// Options controls how records are rendered.
type Options struct {
	Format string
	// Color enables ANSI colours in table output. The caller decides
	// whether the terminal supports them.
	Color      bool
	ShowSHA256 bool
	SSHFP      bool
	Host       string
}

// Write renders records to w in the requested format.
func Write(w io.Writer, records []keyblob.KeyRecord, opts Options) error {
	switch opts.Format {
	case FormatTable, "":
		return Table(w, records, opts)
	case FormatYAML:
		return YAML(w, records)
	case FormatJSON:
		return JSON(w, records)
	default:
		return fmt.Errorf("unknown output format %q (want table, yaml or json)", opts.Format)
	}
}

// Table writes an aligned table, a summary line and optionally SSHFP records.
func Table(w io.Writer, records []keyblob.KeyRecord, opts Options) error {
	st := newStyles(w, opts.Color)

	header := []string{"LINE", "TYPE", "BITS", "EXPONENT", "MD5"}
	if opts.ShowSHA256 {
		header = append(header, "SHA256")
	}
	header = append(header, "COMMENT")

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		row := []string{strconv.Itoa(rec.LineNumber), rec.KeyType, strconv.Itoa(rec.ModulusBits), rec.Exponent, rec.FingerprintMD5}
		if opts.ShowSHA256 {
			row = append(row, rec.FingerprintSHA256)
		}
		rows = append(rows, append(row, rec.Comment))
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}

	var b strings.Builder
	b.WriteString(formatRow(header, widths, func(s string) string { return st.paint(st.header, s) }))
	for i, row := range rows {
		style := st.forRecord(records[i])
		b.WriteString(formatRow(row, widths, func(s string) string { return st.paint(style, s) }))
	}

	decoded := 0
	for _, rec := range records {
		if !rec.Failed {
			decoded++
		}
	}
	b.WriteString(st.paint(st.summary, fmt.Sprintf("%d keys, %d decoded, %d failed", len(records), decoded, len(records)-decoded)))
	b.WriteString("\n")

	if opts.SSHFP {
		b.WriteString("\n")
		b.WriteString(SSHFPBlock(records, opts.Host))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// formatRow pads every cell but the last to its column width. Padding is
// added outside the painted text so escape codes do not skew alignment.
func formatRow(cells []string, widths []int, paint func(string) string) string {
	var b strings.Builder
	for i, cell := range cells {
		b.WriteString(paint(cell))
		if i < len(cells)-1 {
			b.WriteString(strings.Repeat(" ", widths[i]-len(cell)+2))
		}
	}
	return strings.TrimRight(b.String(), " ") + "\n"
}

// YAML writes records as a YAML sequence.
func YAML(w io.Writer, records []keyblob.KeyRecord) error {
	out, err := yaml.Marshal(records)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// JSON writes records as an indented JSON array.
func JSON(w io.Writer, records []keyblob.KeyRecord) error {
	if records == nil {
		records = []keyblob.KeyRecord{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}
