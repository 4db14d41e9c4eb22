package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/userdir/userdir-api/internal/api/middleware"
	"github.com/userdir/userdir-api/internal/api/shared"
	"github.com/userdir/userdir-api/internal/domain"
	"github.com/userdir/userdir-api/internal/service/auth"
	"github.com/userdir/userdir-api/internal/store"
)

// Pagination defaults for the list endpoint.
const (
	defaultSkip  = 0
	defaultLimit = 10
)

// UserHandler handles the user CRUD endpoints.
type UserHandler struct {
	userStore      store.UserStore
	passwordHasher auth.PasswordHasher
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userStore store.UserStore, passwordHasher auth.PasswordHasher) *UserHandler {
	return &UserHandler{
		userStore:      userStore,
		passwordHasher: passwordHasher,
	}
}

// Create handles POST /users/.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeUserRequest(w, r)
	if !ok {
		return
	}

	user, err := domain.NewUser(req.Username, req.Email, req.Password)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if !h.hashPassword(w, r, user) {
		return
	}

	if err := h.userStore.Create(r.Context(), user); err != nil {
		HandleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewPublicUser(user))
}

// List handles GET /users/. Reads are intentionally public.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit, ok := paginationParams(w, r)
	if !ok {
		return
	}

	users, err := h.userStore.List(r.Context(), skip, limit)
	if err != nil {
		slog.Error("failed to list users", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, detailInternalError)
		return
	}

	resp := UserListResponse{Users: make([]PublicUser, 0, len(users))}
	for _, user := range users {
		resp.Users = append(resp.Users, NewPublicUser(user))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Get handles GET /users/{id}. Reads are intentionally public.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	user, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewPublicUser(user))
}

// Update handles PUT /users/{id}. Only the owner of the record may update
// it: the resolved identity's id must equal the path id.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	currentUser, _, ok := h.authorizeOwner(w, r)
	if !ok {
		return
	}

	req, ok := h.decodeUserRequest(w, r)
	if !ok {
		return
	}

	currentUser.Username = req.Username
	currentUser.Email = req.Email
	currentUser.Password = req.Password
	if err := currentUser.Validate(); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if !h.hashPassword(w, r, currentUser) {
		return
	}

	// The ownership check guarantees the path id equals currentUser.ID, so
	// the update targets the resolved user directly.
	if err := h.userStore.Update(r.Context(), currentUser); err != nil {
		HandleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewPublicUser(currentUser))
}

// Delete handles DELETE /users/{id}, with the same ownership rule as Update.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	_, id, ok := h.authorizeOwner(w, r)
	if !ok {
		return
	}

	if err := h.userStore.Delete(r.Context(), id); err != nil {
		HandleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// authorizeOwner extracts the authenticated user and the path id, and
// enforces the self-only ownership rule. On failure it writes the response
// and returns ok=false.
func (h *UserHandler) authorizeOwner(w http.ResponseWriter, r *http.Request) (*domain.User, int64, bool) {
	currentUser, ok := middleware.CurrentUser(r)
	if !ok {
		HandleError(w, r, auth.ErrMissingToken)
		return nil, 0, false
	}

	id, ok := pathID(w, r)
	if !ok {
		return nil, 0, false
	}

	if currentUser.ID != id {
		shared.RespondWithError(w, r, http.StatusForbidden, detailNotEnoughPermission)
		return nil, 0, false
	}

	return currentUser, id, true
}

func (h *UserHandler) decodeUserRequest(w http.ResponseWriter, r *http.Request) (*UserRequest, bool) {
	var req UserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "Invalid request format")
		return nil, false
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "Validation error: "+err.Error())
		return nil, false
	}
	return &req, true
}

// hashPassword replaces the user's plaintext password with its hash. On
// failure it writes the response and returns false.
func (h *UserHandler) hashPassword(w http.ResponseWriter, r *http.Request, user *domain.User) bool {
	hashed, err := h.passwordHasher.Hash(user.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, detailInternalError)
		return false
	}
	user.HashedPassword = hashed
	user.Password = ""
	return true
}

// pathID parses the {id} path parameter. On failure it writes the response
// and returns ok=false.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "id must be an integer")
		return 0, false
	}
	return id, true
}

// paginationParams parses skip and limit query parameters with their
// defaults. skip must be >= 0 and limit >= 1.
func paginationParams(w http.ResponseWriter, r *http.Request) (skip, limit int, ok bool) {
	skip, limit = defaultSkip, defaultLimit

	if raw := r.URL.Query().Get("skip"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "skip must be a non-negative integer")
			return 0, 0, false
		}
		skip = parsed
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "limit must be a positive integer")
			return 0, 0, false
		}
		limit = parsed
	}

	return skip, limit, true
}
