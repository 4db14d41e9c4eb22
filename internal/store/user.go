package store

import (
	"context"

	"github.com/userdir/userdir-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
//
// Implementations must make the uniqueness check and the subsequent write a
// single atomic step: two concurrent creates with the same username or email
// must never both succeed.
type UserStore interface {
	// Create saves a new user to the store. The user must already carry a
	// hashed password. On success the store-assigned ID and timestamps are
	// written back into the entity.
	// Returns ErrUserExists if the username or email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List returns a page of users in insertion (ID) order, skipping the
	// first skip records and returning at most limit records. There is no
	// total-count metadata.
	List(ctx context.Context, skip, limit int) ([]*domain.User, error)

	// Update overwrites an existing user's username, email, and hashed
	// password, identified by user.ID.
	// Returns ErrUserNotFound if the user does not exist and ErrUserExists
	// if the new username or email collides with another user.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user from the store by their ID.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id int64) error
}
