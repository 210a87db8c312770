// Package token generates opaque session tokens.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// DefaultBytes is the entropy of a generated token in bytes.
const DefaultBytes = 32

// Generate returns a hex-encoded random token of n bytes of entropy.
// A non-positive n falls back to DefaultBytes.
func Generate(n int) (string, error) {
	if n <= 0 {
		n = DefaultBytes
	}

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
