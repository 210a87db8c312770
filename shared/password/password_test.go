package password_test

import (
	"errors"
	"epsec/shared/password"
	"strings"
	"testing"
)

func TestConstants(t *testing.T) {
	if password.Iterations != 1000 {
		t.Errorf("expected Iterations to be 1000, got %d", password.Iterations)
	}
	if password.SaltBytes != 16 {
		t.Errorf("expected SaltBytes to be 16, got %d", password.SaltBytes)
	}
	if password.KeyBytes != 64 {
		t.Errorf("expected KeyBytes to be 64, got %d", password.KeyBytes)
	}
}

func TestErrors(t *testing.T) {
	if password.ErrInvalidPassword.Error() != "invalid password" {
		t.Errorf("expected ErrInvalidPassword message to be 'invalid password', got %s", password.ErrInvalidPassword.Error())
	}
}

func TestHash(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		expectError bool
	}{
		{
			name:        "valid password",
			password:    "validPassword123",
			expectError: false,
		},
		{
			name:        "empty password",
			password:    "",
			expectError: true,
		},
		{
			name:        "short password",
			password:    "abc",
			expectError: false,
		},
		{
			name:        "long password",
			password:    strings.Repeat("a", 100),
			expectError: false,
		},
		{
			name:        "password with special characters",
			password:    "P@ssw0rd!#$%^&*()",
			expectError: false,
		},
		{
			name:        "unicode password",
			password:    "пароль123",
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			salt, hash, err := password.Hash(tt.password)

			if tt.expectError {
				if err == nil {
					t.Errorf("expected error, got nil")
				}
				if salt != "" || hash != "" {
					t.Errorf("expected empty salt and hash when error occurs, got %s / %s", salt, hash)
				}
			} else {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}

				// Hex-encoded lengths: 16-byte salt and 64-byte key.
				if len(salt) != password.SaltBytes*2 {
					t.Errorf("expected salt of length %d, got %d", password.SaltBytes*2, len(salt))
				}
				if len(hash) != password.KeyBytes*2 {
					t.Errorf("expected hash of length %d, got %d", password.KeyBytes*2, len(hash))
				}

				// Verify that the hash can be used to verify the original password
				if err := password.Verify(tt.password, hash, salt); err != nil {
					t.Errorf("expected verification to succeed, got error: %v", err)
				}
			}
		})
	}
}

func TestVerify(t *testing.T) {
	// First, create a valid salt and hash for testing
	testPassword := "testPassword123"
	validSalt, validHash, err := password.Hash(testPassword)
	if err != nil {
		t.Fatalf("failed to create test hash: %v", err)
	}

	tests := []struct {
		name        string
		password    string
		hash        string
		salt        string
		expectError bool
	}{
		{
			name:        "valid password and hash",
			password:    testPassword,
			hash:        validHash,
			salt:        validSalt,
			expectError: false,
		},
		{
			name:        "wrong password",
			password:    "wrongPassword",
			hash:        validHash,
			salt:        validSalt,
			expectError: true,
		},
		{
			name:        "empty password",
			password:    "",
			hash:        validHash,
			salt:        validSalt,
			expectError: true,
		},
		{
			name:        "empty hash",
			password:    testPassword,
			hash:        "",
			salt:        validSalt,
			expectError: true,
		},
		{
			name:        "empty salt",
			password:    testPassword,
			hash:        validHash,
			salt:        "",
			expectError: true,
		},
		{
			name:        "wrong salt",
			password:    testPassword,
			hash:        validHash,
			salt:        strings.Repeat("ab", 16),
			expectError: true,
		},
		{
			name:        "truncated hash",
			password:    testPassword,
			hash:        validHash[:10],
			salt:        validSalt,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash, tt.salt)

			if tt.expectError {
				if err == nil {
					t.Errorf("expected error, got nil")
				} else if !errors.Is(err, password.ErrInvalidPassword) {
					t.Errorf("expected ErrInvalidPassword, got %v", err)
				}
			} else {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
			}
		})
	}
}

func TestHashAndVerifyIntegration(t *testing.T) {
	passwords := []string{
		"simplePassword",
		"Complex!P@ssw0rd#123",
		"спец.символы_русский",
		"🚀🔐💻",
		strings.Repeat("a", 72),
	}

	for _, pwd := range passwords {
		t.Run("password_"+pwd[:min(len(pwd), 20)], func(t *testing.T) {
			// Hash the password
			salt, hash, err := password.Hash(pwd)
			if err != nil {
				t.Fatalf("failed to hash password: %v", err)
			}

			// Verify the correct password
			if err := password.Verify(pwd, hash, salt); err != nil {
				t.Errorf("failed to verify correct password: %v", err)
			}

			// Verify that wrong passwords fail
			wrongPasswords := []string{
				"wrong_password",
				"WRONG",
				"",
				pwd + "wrong",
				"wrong" + pwd,
			}

			for _, wrongPwd := range wrongPasswords {
				if wrongPwd == pwd {
					continue // Skip if it's the same as the original
				}
				if err := password.Verify(wrongPwd, hash, salt); err == nil {
					t.Errorf("expected verification to fail for wrong password %q", wrongPwd)
				}
			}
		})
	}
}

func TestHashConsistency(t *testing.T) {
	pwd := "testPassword"

	// Generate multiple hashes for the same password
	type pair struct {
		salt string
		hash string
	}
	pairs := make([]pair, 5)
	for i := range pairs {
		salt, hash, err := password.Hash(pwd)
		if err != nil {
			t.Fatalf("failed to hash password: %v", err)
		}
		pairs[i] = pair{salt: salt, hash: hash}
	}

	// All hashes should be different (each uses a fresh random salt)
	for i, p1 := range pairs {
		for j, p2 := range pairs {
			if i != j && p1.hash == p2.hash {
				t.Errorf("expected different hashes, got identical: %s", p1.hash)
			}
		}
	}

	// But all should verify the same password
	for _, p := range pairs {
		if err := password.Verify(pwd, p.hash, p.salt); err != nil {
			t.Errorf("failed to verify password with hash %s: %v", p.hash, err)
		}
	}
}

// Helper function for min (since it's not available in older Go versions)
func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
