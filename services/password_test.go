package services

import (
	"strings"
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("sunny4me!")
	if err != nil {
		t.Fatal("failed to hash password:", err)
	}
	if !strings.Contains(hash, "$") {
		t.Fatal("hash is missing the salt separator")
	}

	match, err := VerifyPassword(hash, "sunny4me!")
	if err != nil {
		t.Fatal("verify failed:", err)
	}
	if !match {
		t.Error("correct password did not match")
	}

	match, err = VerifyPassword(hash, "wrong4me!")
	if err != nil {
		t.Fatal("verify failed:", err)
	}
	if match {
		t.Error("wrong password matched")
	}
}

func TestHashPasswordRejectsWeakPasswords(t *testing.T) {
	tests := []string{
		"short",       // too short
		"longenough",  // no number, no special
		"number123ab", // no special character
	}
	for _, password := range tests {
		if _, err := HashPassword(password); err == nil {
			t.Errorf("expected rejection for %q", password)
		}
	}
}

func TestVerifyPasswordBadFormat(t *testing.T) {
	if _, err := VerifyPassword("not-a-stored-hash", "anything"); err == nil {
		t.Error("expected error for malformed stored password")
	}
}
