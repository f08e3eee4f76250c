package services

import (
	"errors"
	"testing"

	"github.com/Lasya-02/Mama-Sync/utils"
)

func setupTokenConfig(lifetimeSeconds int64) {
	utils.JWTSecretKey = "test_secret_key"
	utils.JWTExpirationTime = lifetimeSeconds
}

func TestGenerateAndVerifyToken(t *testing.T) {
	setupTokenConfig(1800)

	token, err := GenerateToken("user-123")
	if err != nil {
		t.Fatal("failed to generate token:", err)
	}
	if token == "" {
		t.Fatal("generated token is empty")
	}

	userID, err := VerifyToken(token)
	if err != nil {
		t.Fatal("failed to verify freshly issued token:", err)
	}
	if userID != "user-123" {
		t.Errorf("expected user-123, got %s", userID)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	setupTokenConfig(-10)

	token, err := GenerateToken("user-123")
	if err != nil {
		t.Fatal("failed to generate token:", err)
	}

	_, err = VerifyToken(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerifyTamperedToken(t *testing.T) {
	setupTokenConfig(1800)

	token, err := GenerateToken("user-123")
	if err != nil {
		t.Fatal("failed to generate token:", err)
	}

	// Flip the signature by signing with a different secret
	utils.JWTSecretKey = "another_secret"
	_, err = VerifyToken(token)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerifyGarbageToken(t *testing.T) {
	setupTokenConfig(1800)

	tests := []string{
		"",
		"not-a-token",
		"aaaa.bbbb.cccc",
	}
	for _, tokenString := range tests {
		if _, err := VerifyToken(tokenString); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("token %q: expected ErrTokenInvalid, got %v", tokenString, err)
		}
	}
}
