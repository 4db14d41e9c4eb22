package api

import "github.com/userdir/userdir-api/internal/domain"

// UserRequest defines the payload for creating or updating a user.
type UserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

// PublicUser is the client-facing representation of a user. The password,
// hashed or otherwise, is never part of any response.
type PublicUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// NewPublicUser converts a domain user into its public representation.
func NewPublicUser(user *domain.User) PublicUser {
	return PublicUser{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

// UserListResponse defines the response for the user list endpoint. It
// carries no total-count metadata.
type UserListResponse struct {
	Users []PublicUser `json:"users"`
}

// TokenResponse defines the successful response for the token endpoints.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// MessageResponse defines the body of the root landing route.
type MessageResponse struct {
	Message string `json:"message"`
}
