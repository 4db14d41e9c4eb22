package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	user, err := NewUser("Jhon", "jhon@email.com", "123456")
	require.NoError(t, err)

	assert.Equal(t, int64(0), user.ID, "ID is assigned by the store, not the constructor")
	assert.Equal(t, "Jhon", user.Username)
	assert.Equal(t, "jhon@email.com", user.Email)
	assert.Equal(t, "123456", user.Password)
	assert.Empty(t, user.HashedPassword)
	assert.False(t, user.CreatedAt.IsZero())
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)
}

func TestUserValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		user    User
		wantErr error
	}{
		{
			name: "valid with plaintext password",
			user: User{Username: "Jhon", Email: "jhon@email.com", Password: "123456"},
		},
		{
			name: "valid with only hashed password",
			user: User{Username: "Jhon", Email: "jhon@email.com", HashedPassword: "$2a$10$abcdefg"},
		},
		{
			name:    "empty username",
			user:    User{Email: "jhon@email.com", Password: "123456"},
			wantErr: ErrEmptyUsername,
		},
		{
			name:    "empty email",
			user:    User{Username: "Jhon", Password: "123456"},
			wantErr: ErrEmptyEmail,
		},
		{
			name:    "malformed email",
			user:    User{Username: "Jhon", Email: "not-an-email", Password: "123456"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "email without domain",
			user:    User{Username: "Jhon", Email: "jhon@", Password: "123456"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "no password at all",
			user:    User{Username: "Jhon", Email: "jhon@email.com"},
			wantErr: ErrEmptyPassword,
		},
		{
			name:    "password over bcrypt limit",
			user:    User{Username: "Jhon", Email: "jhon@email.com", Password: strings.Repeat("x", 73)},
			wantErr: ErrPasswordTooLong,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.user.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
