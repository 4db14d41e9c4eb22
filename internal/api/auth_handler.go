package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/userdir/userdir-api/internal/api/middleware"
	"github.com/userdir/userdir-api/internal/api/shared"
	"github.com/userdir/userdir-api/internal/service/auth"
	"github.com/userdir/userdir-api/internal/store"
)

// tokenType is the scheme reported alongside every issued access token.
const tokenType = "Bearer"

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
) *AuthHandler {
	return &AuthHandler{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
	}
}

// Token handles POST /auth/token. Credentials arrive as form fields: the
// username field carries the email. An unknown email and a wrong password
// produce the same response.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "Invalid form data")
		return
	}

	email := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "username and password are required")
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, detailInvalidCredentials)
			return
		}
		slog.Error("failed to get user by email", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, detailInternalError)
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, detailInvalidCredentials)
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.Email)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "user_id", user.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, detailInternalError)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   tokenType,
	})
}

// RefreshToken handles POST /auth/refresh_token. The route sits behind the
// authentication middleware, so reaching this handler means the presented
// token still validated (an expired token cannot be refreshed) and its
// subject resolved to an existing user. A fresh token is issued for the
// same subject.
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r)
	if !ok {
		HandleError(w, r, auth.ErrMissingToken)
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.Email)
	if err != nil {
		slog.Error("failed to refresh token", "error", err, "user_id", user.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, detailInternalError)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   tokenType,
	})
}
