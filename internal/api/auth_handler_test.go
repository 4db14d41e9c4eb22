package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/userdir/userdir-api/internal/api/shared"
	"github.com/userdir/userdir-api/internal/domain"
	"github.com/userdir/userdir-api/internal/mocks"
	"github.com/userdir/userdir-api/internal/store"
)

func loginRequest(t *testing.T, form url.Values) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestToken(t *testing.T) {
	t.Parallel()

	storedUser := &domain.User{
		ID:             1,
		Username:       "Jhon",
		Email:          "jhon@email.com",
		HashedPassword: "hashed:123456",
	}

	tests := []struct {
		name       string
		form       url.Values
		verifierOK bool
		storeErr   error
		wantStatus int
		wantDetail string
		wantToken  bool
	}{
		{
			name:       "valid credentials",
			form:       url.Values{"username": {"jhon@email.com"}, "password": {"123456"}},
			verifierOK: true,
			wantStatus: http.StatusOK,
			wantToken:  true,
		},
		{
			name:       "unknown email",
			form:       url.Values{"username": {"invalid@email.com"}, "password": {"123456"}},
			verifierOK: true,
			wantStatus: http.StatusUnauthorized,
			wantDetail: "Invalid credentials",
		},
		{
			name:       "wrong password",
			form:       url.Values{"username": {"jhon@email.com"}, "password": {"wrongpassword"}},
			verifierOK: false,
			wantStatus: http.StatusUnauthorized,
			wantDetail: "Invalid credentials",
		},
		{
			name:       "missing password",
			form:       url.Values{"username": {"jhon@email.com"}},
			verifierOK: true,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "missing username",
			form:       url.Values{"password": {"123456"}},
			verifierOK: true,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "store failure",
			form:       url.Values{"username": {"jhon@email.com"}, "password": {"123456"}},
			verifierOK: true,
			storeErr:   errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			userStore := mocks.NewMockUserStore()
			userStore.GetByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
				if tt.storeErr != nil {
					return nil, tt.storeErr
				}
				if email != storedUser.Email {
					return nil, store.ErrUserNotFound
				}
				return storedUser, nil
			}
			jwtService := &mocks.MockJWTService{Token: "test-token"}
			verifier := &mocks.MockPasswordVerifier{ShouldSucceed: tt.verifierOK}

			handler := NewAuthHandler(userStore, jwtService, verifier)

			recorder := httptest.NewRecorder()
			handler.Token(recorder, loginRequest(t, tt.form))

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantToken {
				var resp TokenResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
				assert.Equal(t, "test-token", resp.AccessToken)
				assert.Equal(t, "Bearer", resp.TokenType)
			} else if tt.wantDetail != "" {
				var resp shared.ErrorResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantDetail, resp.Detail)
			}
		})
	}
}

func TestRefreshToken(t *testing.T) {
	t.Parallel()

	jwtService := &mocks.MockJWTService{
		GenerateTokenFn: func(ctx context.Context, email string) (string, error) {
			return "refreshed-for-" + email, nil
		},
	}
	handler := NewAuthHandler(mocks.NewMockUserStore(), jwtService, &mocks.MockPasswordVerifier{})

	t.Run("authenticated user gets a fresh token", func(t *testing.T) {
		t.Parallel()

		user := &domain.User{ID: 1, Username: "Jhon", Email: "jhon@email.com"}
		req := httptest.NewRequest(http.MethodPost, "/auth/refresh_token", nil)
		ctx := context.WithValue(req.Context(), shared.CurrentUserContextKey, user)

		recorder := httptest.NewRecorder()
		handler.RefreshToken(recorder, req.WithContext(ctx))

		require.Equal(t, http.StatusOK, recorder.Code)

		var resp TokenResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "refreshed-for-jhon@email.com", resp.AccessToken)
		assert.Equal(t, "Bearer", resp.TokenType)
	})

	t.Run("no resolved identity", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/auth/refresh_token", nil)
		recorder := httptest.NewRecorder()
		handler.RefreshToken(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)

		var resp shared.ErrorResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "Could not validate credentials", resp.Detail)
	})
}
