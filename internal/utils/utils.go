package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Fingerprint returns the first n hex characters of the SHA-256 of s. Log
// lines carry fingerprints in place of personal data.
func Fingerprint(s string, n int) string {
	sum := sha256.Sum256([]byte(s))
	h := hex.EncodeToString(sum[:])
	if n <= 0 || n > len(h) {
		return h
	}
	return h[:n]
}

// phoneFormatting is stripped before hashing so "+1 (555) 123-4567" and
// "+15551234567" share a fingerprint.
var phoneFormatting = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")

// HashPhone fingerprints a phone number for logging.
func HashPhone(phone string) string {
	return Fingerprint(phoneFormatting.Replace(phone), 12)
}

// HashName fingerprints a submitter's name for logging. Case and surrounding
// space are ignored.
func HashName(name string) string {
	return Fingerprint(strings.ToLower(strings.TrimSpace(name)), 8)
}
