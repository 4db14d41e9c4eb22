package auth

import "errors"

// Common authentication service errors.
var (
	// ErrInvalidToken indicates the token is malformed, carries a bad
	// signature, uses an unexpected algorithm, or lacks a subject claim.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token's expiry timestamp has passed.
	// Callers that must not leak which check failed should present this and
	// ErrInvalidToken identically.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")
)
