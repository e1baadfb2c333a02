package keyblob

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strings"
)

// FingerprintMD5 returns the MD5 digest of blob as colon separated lowercase hex.
func FingerprintMD5(blob []byte) string {
	sum := md5.Sum(blob)
	parts := make([]string, len(sum))
	for i, b := range sum {
		parts[i] = hex.EncodeToString([]byte{b})
	}
	return strings.Join(parts, ":")
}

// FingerprintSHA256 returns the SHA-256 digest of blob as unpadded base64.
func FingerprintSHA256(blob []byte) string {
	sum := sha256.Sum256(blob)
	return base64.RawStdEncoding.EncodeToString(sum[:])
}
