package token_test

import (
	"encoding/hex"
	"epsec/shared/token"
	"testing"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name        string
		n           int
		expectedLen int
	}{
		{name: "default bytes", n: 32, expectedLen: 64},
		{name: "small token", n: 8, expectedLen: 16},
		{name: "zero falls back to default", n: 0, expectedLen: token.DefaultBytes * 2},
		{name: "negative falls back to default", n: -5, expectedLen: token.DefaultBytes * 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := token.Generate(tt.n)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if len(result) != tt.expectedLen {
				t.Errorf("expected token of length %d, got %d", tt.expectedLen, len(result))
			}

			if _, err := hex.DecodeString(result); err != nil {
				t.Errorf("expected hex-encoded token, got %s", result)
			}
		})
	}
}

func TestGenerateUniqueness(t *testing.T) {
	seen := make(map[string]bool)

	for range 100 {
		result, err := token.Generate(32)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if seen[result] {
			t.Errorf("duplicate token generated: %s", result)
		}
		seen[result] = true
	}
}
