package domain

import (
	"net/mail"
	"time"
)

// User represents a registered user of the directory.
//
// ID is assigned by the store on creation and is immutable afterwards.
// Username and Email are globally unique across all users; the store enforces
// the invariant atomically with each write.
type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext, only populated transiently during create/update
	HashedPassword string    `json:"-"` // Never exposed in JSON
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a User with the given credentials and current timestamps.
// The password is carried in plaintext; the caller hashes it before the user
// reaches the store. Returns an error if validation fails.
func NewUser(username, email, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		Username:  username,
		Email:     email,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks the User's fields.
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrEmptyUsername
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return ErrInvalidEmail
	}

	if u.Password == "" && u.HashedPassword == "" {
		// A user loaded from the store has only the hash; a user being
		// created or updated must carry the plaintext to re-hash.
		return ErrEmptyPassword
	}
	if u.Password != "" && len(u.Password) > maxPasswordLength {
		return ErrPasswordTooLong
	}

	return nil
}

// maxPasswordLength is bcrypt's input limit in bytes.
const maxPasswordLength = 72
