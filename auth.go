package main

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenTTL        = 24 * time.Hour
	minSecretLength = 32

	// Hard cap on the login password length so the comparison below
	// never runs over attacker-sized input.
	maxPasswordLength = 1024
)

// ErrInvalidToken covers every verification failure: bad signature,
// malformed token, wrong algorithm, expired, or missing claim.
var ErrInvalidToken = errors.New("token inválido ou expirado")

// ValidateJWTSecret enforces the minimum signing-key strength. A weak
// key is a fatal configuration error, checked once at startup.
func ValidateJWTSecret(secret string) error {
	if len(secret) < minSecretLength {
		return fmt.Errorf("JWT_SECRET must be set and at least %d characters (got %d)", minSecretLength, len(secret))
	}
	return nil
}

// GenerateToken issues the admin session token: a single authenticated
// claim, HS256 signed, expiring 24 hours from issuance.
func GenerateToken(secret string) (string, error) {
	claims := jwt.MapClaims{
		"authenticated": true,
		"exp":           time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyToken checks signature, expiry and the authenticated claim.
func VerifyToken(secret, tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ErrInvalidToken
	}
	if authenticated, _ := claims["authenticated"].(bool); !authenticated {
		return ErrInvalidToken
	}
	return nil
}

// CheckPassword compares the supplied password against the configured
// one. A length mismatch rejects immediately; equal lengths are compared
// in constant time so the runtime never depends on where the strings
// first differ.
func CheckPassword(got, want string) bool {
	if len(got) != len(want) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
