// Package password hashes and verifies user passwords with
// PBKDF2-HMAC-SHA512 and a per-user random salt.
package password

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// Iterations is the PBKDF2 iteration count.
	Iterations = 1000
	// SaltBytes is the length of the random salt in bytes.
	SaltBytes = 16
	// KeyBytes is the length of the derived key in bytes.
	KeyBytes = 64
)

var (
	ErrInvalidPassword = errors.New("invalid password")
)

// Hash derives a hex-encoded key from the password under a fresh random
// salt. Both the salt and the hash must be stored to verify later.
func Hash(password string) (salt, hash string, err error) {
	if password == "" {
		return "", "", errors.New("password cannot be empty")
	}

	saltBytes := make([]byte, SaltBytes)
	if _, err := rand.Read(saltBytes); err != nil {
		return "", "", fmt.Errorf("failed to generate salt: %w", err)
	}

	salt = hex.EncodeToString(saltBytes)
	hash = derive(password, salt)

	return salt, hash, nil
}

// Verify checks the password against the stored hash and salt in
// constant time.
func Verify(password, hash, salt string) error {
	if password == "" || hash == "" || salt == "" {
		return ErrInvalidPassword
	}

	derived := derive(password, salt)
	if subtle.ConstantTimeCompare([]byte(derived), []byte(hash)) != 1 {
		return ErrInvalidPassword
	}

	return nil
}

func derive(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), Iterations, KeyBytes, sha512.New)

	return hex.EncodeToString(key)
}
