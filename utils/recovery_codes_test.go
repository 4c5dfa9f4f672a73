package utils

import "testing"

func TestGenerateRecoveryCodes(t *testing.T) {
	codes, err := GenerateRecoveryCodes()
	if err != nil {
		t.Fatalf("GenerateRecoveryCodes failed: %v", err)
	}
	if len(codes) != NumRecoveryCodes {
		t.Fatalf("got %d codes, want %d", len(codes), NumRecoveryCodes)
	}

	seen := make(map[string]bool)
	for _, code := range codes {
		if len(code) != RecoveryCodeLength+1 {
			t.Errorf("code %q has unexpected length", code)
		}
		if code[4] != '-' {
			t.Errorf("code %q missing hyphen separator", code)
		}
		if seen[code] {
			t.Errorf("duplicate code %q", code)
		}
		seen[code] = true
	}
}

func TestHashRecoveryCodes(t *testing.T) {
	codes := []string{"ABCD-1234", "EF01-5678"}
	hashed := HashRecoveryCodes(codes)
	if len(hashed) != len(codes) {
		t.Fatalf("got %d hashes, want %d", len(hashed), len(codes))
	}
	for i, h := range hashed {
		if h == codes[i] {
			t.Error("hash must not equal the plain code")
		}
		if len(h) != 64 {
			t.Errorf("hash %q is not a sha256 hex digest", h)
		}
	}

	again := HashRecoveryCodes(codes)
	if again[0] != hashed[0] {
		t.Error("hashing must be deterministic")
	}
}
