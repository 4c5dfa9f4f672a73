package services

import (
	"strings"
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	password := "correct-horse9!"

	hashed, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hashed == password {
		t.Fatal("hash must not equal the plain password")
	}
	if !strings.Contains(hashed, "$") {
		t.Fatalf("expected salt$hash format, got %q", hashed)
	}

	ok, err := VerifyPassword(hashed, password)
	if err != nil {
		t.Fatalf("VerifyPassword failed: %v", err)
	}
	if !ok {
		t.Error("correct password should verify")
	}

	ok, err = VerifyPassword(hashed, "wrong-password9!")
	if err != nil {
		t.Fatalf("VerifyPassword failed: %v", err)
	}
	if ok {
		t.Error("wrong password must not verify")
	}
}

func TestHashPasswordRejectsWeakPasswords(t *testing.T) {
	weak := []string{
		"",
		"short",
		"nodigits!",
		"nospecial9",
	}
	for _, password := range weak {
		if _, err := HashPassword(password); err == nil {
			t.Errorf("HashPassword(%q) should fail the policy", password)
		}
	}
}

func TestHashesAreSalted(t *testing.T) {
	first, err := HashPassword("correct-horse9!")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	second, err := HashPassword("correct-horse9!")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password must differ")
	}
}

func TestVerifyPasswordBadFormat(t *testing.T) {
	if _, err := VerifyPassword("not-a-valid-digest", "anything"); err == nil {
		t.Error("expected error for malformed stored digest")
	}
}
