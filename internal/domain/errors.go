// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common validation errors.
var (
	ErrEmptyUsername   = errors.New("username cannot be empty")
	ErrEmptyEmail      = errors.New("email cannot be empty")
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrEmptyPassword   = errors.New("password cannot be empty")
	ErrPasswordTooLong = errors.New("password must be at most 72 characters long")
)
