package token

import (
	"crypto/rand"
	"encoding/hex"
)

// Size is the number of random bytes in a session token (256 bits).
const Size = 32

// New generates an opaque high-entropy session token, hex encoded.
func New() (string, error) {
	buf := make([]byte, Size)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
