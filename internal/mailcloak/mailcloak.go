// Package mailcloak decodes the obfuscated "protected" email encodings found
// on the contact page. The encoding is a hex string whose first byte is an
// XOR key applied to every following byte.
package mailcloak

import (
	"encoding/hex"
	"regexp"
)

var emailShape = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[A-Za-z]{2,}$`)

// Decode decodes an obfuscated email payload. It returns false for any
// malformed input: odd length, non-hex characters, payloads too short to
// hold a key plus an address, or decoded text that is not a plausible
// local@domain.tld address.
func Decode(payload string) (string, bool) {
	if len(payload) < 4 || len(payload)%2 != 0 {
		return "", false
	}
	raw, err := hex.DecodeString(payload)
	if err != nil {
		return "", false
	}

	key := raw[0]
	decoded := make([]byte, len(raw)-1)
	for i, b := range raw[1:] {
		decoded[i] = b ^ key
	}

	email := string(decoded)
	if !emailShape.MatchString(email) {
		return "", false
	}
	return email, true
}
