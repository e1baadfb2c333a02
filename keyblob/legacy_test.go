package keyblob

import (
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

func TestIsLegacy(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		keyData string
		want    bool
	}{
		{"40 digits", strings.Repeat("42", 20), true},
		{"exactly 30 digits", strings.Repeat("7", 30), true},
		{"29 digits", strings.Repeat("7", 29), false},
		{"run inside base64", "AAAA" + strings.Repeat("1", 31) + "ZZ==", true},
		{"broken run", strings.Repeat("1", 20) + "x" + strings.Repeat("1", 20), false},
		{"ssh-2 blob", "AAAAC3NzaC1lZDI1NTE5AAAAIGq7", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsLegacy(tt.keyData))
		})
	}
}
