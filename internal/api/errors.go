package api

import (
	"errors"
	"net/http"

	"github.com/userdir/userdir-api/internal/api/shared"
	"github.com/userdir/userdir-api/internal/service/auth"
	"github.com/userdir/userdir-api/internal/store"
)

// Fixed client-facing detail messages. Authentication failures deliberately
// share one message each so clients cannot tell which check failed.
const (
	detailInvalidCredentials  = "Invalid credentials"
	detailCredentialsFailed   = "Could not validate credentials"
	detailNotEnoughPermission = "Not enough permissions"
	detailUserNotFound        = "User not found"
	detailUserExists          = "username or email already exists"
	detailInternalError       = "Internal server error"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking internal error types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	case store.IsNotFoundError(err):
		return http.StatusNotFound

	case store.IsDuplicateError(err):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

// SafeDetail returns the fixed client-facing message for the given error.
func SafeDetail(err error) string {
	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return detailCredentialsFailed

	case store.IsNotFoundError(err):
		return detailUserNotFound

	case store.IsDuplicateError(err):
		return detailUserExists

	default:
		return detailInternalError
	}
}

// HandleError writes the error response corresponding to err.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithError(w, r, MapErrorToStatusCode(err), SafeDetail(err))
}
