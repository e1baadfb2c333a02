// Package authkeys reads authorized_keys style files and decodes every key line.
package authkeys

import (
	"strings"
)

const legacyModulusDigits = 30

var keyTypePrefixes = []string{"ssh-", "ecdsa-", "sk-"}

// Token is one key found on an input line.
type Token struct {
	LineNumber int
	KeyType    string
	KeyData    string
	Comment    string
}

// ParseLine extracts the key from one line. Leading options such as
// from="..." are skipped. ok is false for blank lines, comments and lines
// without anything that looks like a key.
func ParseLine(line string, lineNumber int) (tok Token, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Token{}, false
	}

	// The first key type with data after it, or SSH-1 modulus
	// (bits exponent modulus [comment]), wins.
	fields := splitFields(line)
	for i, f := range fields {
		if len(f) >= legacyModulusDigits && isDigits(f) {
			return Token{
				LineNumber: lineNumber,
				KeyData:    f,
				Comment:    strings.Join(fields[i+1:], " "),
			}, true
		}
		if hasKeyTypePrefix(f) && i+1 < len(fields) {
			return Token{
				LineNumber: lineNumber,
				KeyType:    f,
				KeyData:    fields[i+1],
				Comment:    strings.Join(fields[i+2:], " "),
			}, true
		}
	}
	return Token{}, false
}

func hasKeyTypePrefix(s string) bool {
	for _, p := range keyTypePrefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// splitFields splits on whitespace outside double quotes, so an options
// field like command="echo hi" stays in one piece.
func splitFields(line string) []string {
	var (
		fields  []string
		cur     strings.Builder
		quoted  bool
		escaped bool
	)
	flush := func() {
		if cur.Len() > 0 {
			fields = append(fields, cur.String())
			cur.Reset()
		}
	}
	for _, r := range line {
		switch {
		case escaped:
			escaped = false
		case r == '\\' && quoted:
			escaped = true
		case r == '"':
			quoted = !quoted
		case !quoted && (r == ' ' || r == '\t'):
			flush()
			continue
		}
		cur.WriteRune(r)
	}
	flush()
	return fields
}
