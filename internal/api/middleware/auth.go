// Package middleware provides HTTP middleware for the API: bearer-token
// authentication and request tracing.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/userdir/userdir-api/internal/api/shared"
	"github.com/userdir/userdir-api/internal/domain"
	"github.com/userdir/userdir-api/internal/service/auth"
	"github.com/userdir/userdir-api/internal/store"
)

// credentialsDetail is the single message used for every authentication
// failure. A missing header, a bad signature, an expired token, an absent
// subject claim, and a deleted user are indistinguishable to the client;
// anything more specific would let callers probe which accounts exist.
const credentialsDetail = "Could not validate credentials"

// AuthMiddleware resolves bearer tokens to persisted user identities.
type AuthMiddleware struct {
	jwtService auth.JWTService
	userStore  store.UserStore
}

// NewAuthMiddleware creates an AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, userStore store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userStore:  userStore,
	}
}

// Authenticate validates the bearer token from the Authorization header,
// looks up the user named by its subject claim, and stores the resolved user
// in the request context. Requests that fail any step are rejected with a
// 401 and the generic credentials message.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			respondUnauthorized(w, r)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			respondUnauthorized(w, r)
			return
		}

		// The subject maps to a user by email. The token may outlive the
		// account it was issued for; a vanished user is an auth failure,
		// not a 404.
		user, err := m.userStore.GetByEmail(r.Context(), claims.Subject)
		if err != nil {
			respondUnauthorized(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), shared.CurrentUserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CurrentUser extracts the authenticated user from the request context.
// Returns the user and a boolean indicating whether one was resolved.
func CurrentUser(r *http.Request) (*domain.User, bool) {
	user, ok := r.Context().Value(shared.CurrentUserContextKey).(*domain.User)
	return user, ok
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func respondUnauthorized(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	shared.RespondWithError(w, r, http.StatusUnauthorized, credentialsDetail)
}
