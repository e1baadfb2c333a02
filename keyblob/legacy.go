package keyblob

const legacyDigitRun = 30

// IsLegacy reports whether keyData looks like an SSH-1 modulus, that is it
// contains a run of at least 30 consecutive decimal digits.
func IsLegacy(keyData string) bool {
	run := 0
	for i := 0; i < len(keyData); i++ {
		if keyData[i] >= '0' && keyData[i] <= '9' {
			run++
			if run >= legacyDigitRun {
				return true
			}
			continue
		}
		run = 0
	}
	return false
}
