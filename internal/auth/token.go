package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a bearer token fails verification for
// any reason: bad signature, wrong signing method, expiry, or a missing
// subject. Callers get one uniform signal.
var ErrInvalidToken = errors.New("invalid token")

// Tokens issues and verifies signed bearer tokens. Tokens are HS256 JWTs
// binding a user id in the Subject claim. There is no server-side revocation;
// a token stays valid until it expires or the secret rotates.
type Tokens struct {
	secret   []byte
	lifetime time.Duration
}

// NewTokens creates a token service with the server-held signing secret and
// token lifetime.
func NewTokens(secret string, lifetime time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), lifetime: lifetime}
}

// Issue signs a new token bound to userID.
func (t *Tokens) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.lifetime)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify parses and validates raw, returning the bound user id.
// The signing method is pinned to HMAC so a token re-signed with "none" or
// an asymmetric algorithm is rejected.
func (t *Tokens) Verify(raw string) (string, error) {
	token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
