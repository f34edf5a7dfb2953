package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/brainly-app/brainly/internal/auth"
)

func TestTokens_IssueAndVerify(t *testing.T) {
	tokens := auth.NewTokens("test-secret", time.Hour)

	raw, err := tokens.Issue("user-123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	userID, err := tokens.Verify(raw)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if userID != "user-123" {
		t.Errorf("user id = %q, want %q", userID, "user-123")
	}
}

func TestTokens_Verify_WrongSecret(t *testing.T) {
	issuer := auth.NewTokens("secret-a", time.Hour)
	verifier := auth.NewTokens("secret-b", time.Hour)

	raw, err := issuer.Issue("user-123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.Verify(raw); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestTokens_Verify_Expired(t *testing.T) {
	tokens := auth.NewTokens("test-secret", -time.Minute)

	raw, err := tokens.Issue("user-123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := tokens.Verify(raw); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestTokens_Verify_Garbage(t *testing.T) {
	tokens := auth.NewTokens("test-secret", time.Hour)

	for _, raw := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := tokens.Verify(raw); !errors.Is(err, auth.ErrInvalidToken) {
			t.Errorf("Verify(%q) err = %v, want ErrInvalidToken", raw, err)
		}
	}
}

func TestTokens_Verify_RejectsNonHMAC(t *testing.T) {
	tokens := auth.NewTokens("test-secret", time.Hour)

	// A token signed with "none" must not be accepted even though it parses.
	claims := jwt.RegisteredClaims{
		Subject:   "user-123",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}

	if _, err := tokens.Verify(raw); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestTokens_Verify_MissingSubject(t *testing.T) {
	tokens := auth.NewTokens("test-secret", time.Hour)

	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := tokens.Verify(raw); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestHashPassword_Roundtrip(t *testing.T) {
	hash, err := auth.HashPassword("Passw0rd")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "Passw0rd" {
		t.Fatal("hash equals plaintext")
	}
	if !auth.CheckPassword(hash, "Passw0rd") {
		t.Error("correct password rejected")
	}
	if auth.CheckPassword(hash, "wrong-pass1") {
		t.Error("wrong password accepted")
	}
}
