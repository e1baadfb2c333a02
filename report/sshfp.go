package report

import (
	"fmt"
	"keyaudit/keyblob"
	"strings"
)

// sshfpDigestType is the digest numeral written into every record.
const sshfpDigestType = "2"

// SSHFPRecord formats rec as "SSHFP <typeVersion> 2 <sha256>". ok is false
// for failed records and records without a SHA-256 fingerprint.
func SSHFPRecord(rec keyblob.KeyRecord) (string, bool) {
	if rec.Failed || rec.TypeVersion == "" || rec.FingerprintSHA256 == "" {
		return "", false
	}
	return fmt.Sprintf("SSHFP %s %s %s", rec.TypeVersion, sshfpDigestType, rec.FingerprintSHA256), true
}

// SSHFPBlock returns one SSHFP line per usable record, each prefixed with
// "<host> IN " when host is set.
func SSHFPBlock(records []keyblob.KeyRecord, host string) string {
	var b strings.Builder
	for _, rec := range records {
		line, ok := SSHFPRecord(rec)
		if !ok {
			continue
		}
		if host != "" {
			b.WriteString(host + " IN ")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
