package keyblob

import (
	"encoding/base64"
	"golang.org/x/crypto/ssh"
)

// field encodes b as an RFC 4253 string.
func field(b []byte) []byte {
	return ssh.Marshal(struct{ Field []byte }{b})
}

func blobOf(fields ...[]byte) []byte {
	var out []byte
	for _, f := range fields {
		out = append(out, field(f)...)
	}
	return out
}

func b64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

func filled(n int, v byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = v
	}
	return b
}
