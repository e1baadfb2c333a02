package keyblob

const (
	NotApplicable  = "n/a"
	NotImplemented = "not_implemented"
	CouldNotDecode = "could_not_decode"

	// TypeSSH1 is reported for legacy SSH-1 key lines.
	TypeSSH1 = "ssh-1"
)

// KeyRecord is the decoded summary of one key line.
type KeyRecord struct {
	LineNumber        int    `json:"line" yaml:"line"`
	KeyType           string `json:"type" yaml:"type"`
	ModulusBits       int    `json:"bits" yaml:"bits"`
	Exponent          string `json:"exponent" yaml:"exponent"`
	FingerprintMD5    string `json:"md5" yaml:"md5"`
	FingerprintSHA256 string `json:"sha256,omitempty" yaml:"sha256,omitempty"`
	Comment           string `json:"comment" yaml:"comment"`
	TypeVersion       string `json:"typeVersion,omitempty" yaml:"typeVersion,omitempty"`
	Failed            bool   `json:"failed" yaml:"failed"`
}

func fallbackRecord(lineNumber int, comment string) KeyRecord {
	return KeyRecord{
		LineNumber:        lineNumber,
		KeyType:           NotApplicable,
		Exponent:          NotApplicable,
		FingerprintMD5:    CouldNotDecode,
		FingerprintSHA256: CouldNotDecode,
		Comment:           comment,
		Failed:            true,
	}
}

func legacyRecord(lineNumber int, comment string) KeyRecord {
	return KeyRecord{
		LineNumber:        lineNumber,
		KeyType:           TypeSSH1,
		Exponent:          NotApplicable,
		FingerprintMD5:    NotImplemented,
		FingerprintSHA256: NotImplemented,
		Comment:           comment,
		Failed:            true,
	}
}
