// ABOUTME: Tests for bcrypt password hashing helpers

package auth

import (
	"strings"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("shortpw1")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if !strings.HasPrefix(hash, "$2a$") {
		t.Errorf("expected bcrypt hash, got %q", hash)
	}

	if err := CheckPassword(hash, "shortpw1"); err != nil {
		t.Errorf("expected password to match: %v", err)
	}
	if err := CheckPassword(hash, "wrong-password"); err == nil {
		t.Error("expected mismatch error for wrong password")
	}
}

func TestDummyCompare(t *testing.T) {
	// Must not panic; exists only to equalize timing
	DummyCompare("anything")
}
