// Package auth provides the authentication core: password hashing and
// verification, and issuance and validation of signed bearer tokens.
package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing JWT bearer tokens.
//
// Tokens are stateless: they are never stored server-side, and validity is
// purely a function of the signature and the embedded expiry at verification
// time. There is no revocation.
type JWTService interface {
	// GenerateToken creates a signed token whose subject claim is the given
	// email, expiring after the configured lifetime.
	GenerateToken(ctx context.Context, email string) (string, error)

	// ValidateToken validates the token string and extracts the claims.
	// Fails with ErrInvalidToken for a bad signature, malformed structure,
	// unexpected algorithm, or missing subject claim, and with
	// ErrExpiredToken when the embedded expiry has passed.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims carries the validated contents of a token.
type Claims struct {
	// Subject is the email of the user the token was issued for.
	Subject string

	IssuedAt  time.Time
	ExpiresAt time.Time

	// ID is the unique token identifier (the jti claim), if present.
	ID string
}
