package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/userdir/userdir-api/internal/config"
)

const testSigningSecret = "test-secret-key-that-is-long-enough"

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            testSigningSecret,
		JWTAlgorithm:         "HS256",
		TokenLifetimeMinutes: 30,
	}
}

func newTestJWTService(t *testing.T, timeFunc func() time.Time) *hmacJWTService {
	t.Helper()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	impl, ok := svc.(*hmacJWTService)
	require.True(t, ok)
	if timeFunc != nil {
		impl.timeFunc = timeFunc
	}
	return impl
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     config.AuthConfig
		wantErr bool
	}{
		{name: "valid HS256", cfg: testAuthConfig()},
		{
			name: "valid HS512",
			cfg: config.AuthConfig{
				JWTSecret:            testSigningSecret,
				JWTAlgorithm:         "HS512",
				TokenLifetimeMinutes: 30,
			},
		},
		{
			name: "secret too short",
			cfg: config.AuthConfig{
				JWTSecret:            "short",
				JWTAlgorithm:         "HS256",
				TokenLifetimeMinutes: 30,
			},
			wantErr: true,
		},
		{
			name: "non-HMAC algorithm",
			cfg: config.AuthConfig{
				JWTSecret:            testSigningSecret,
				JWTAlgorithm:         "RS256",
				TokenLifetimeMinutes: 30,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, err := NewJWTService(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, svc)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, svc)
			}
		})
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)
	svc := newTestJWTService(t, func() time.Time { return now })

	token, err := svc.GenerateToken(ctx, "jhon@email.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "jhon@email.com", claims.Subject)
	assert.Equal(t, now, claims.IssuedAt)
	assert.Equal(t, now.Add(30*time.Minute), claims.ExpiresAt)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateTokenExpired(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	issuedAt := time.Now().UTC()
	svc := newTestJWTService(t, func() time.Time { return issuedAt })

	token, err := svc.GenerateToken(ctx, "jhon@email.com")
	require.NoError(t, err)

	// Jump past the configured lifetime.
	svc.timeFunc = func() time.Time { return issuedAt.Add(31 * time.Minute) }

	claims, err := svc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.Nil(t, claims)
}

func TestValidateTokenFailures(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestJWTService(t, nil)
	now := time.Now()

	signWith := func(secret string, claims jwt.Claims) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte(secret))
		require.NoError(t, err)
		return signed
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage string", token: "not-a-token"},
		{name: "empty string", token: ""},
		{
			name: "wrong signing key",
			token: signWith("another-secret-key-that-is-long-enough", jwt.RegisteredClaims{
				Subject:   "jhon@email.com",
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			}),
		},
		{
			name: "missing subject claim",
			token: signWith(testSigningSecret, jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			}),
		},
		{
			name: "missing expiry claim",
			token: signWith(testSigningSecret, jwt.RegisteredClaims{
				Subject: "jhon@email.com",
			}),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			claims, err := svc.ValidateToken(ctx, tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

func TestValidateTokenRejectsForeignAlgorithm(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestJWTService(t, nil)

	// Sign with HS384 while the service is configured for HS256.
	token := jwt.NewWithClaims(jwt.SigningMethodHS384, jwt.RegisteredClaims{
		Subject:   "jhon@email.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(testSigningSecret))
	require.NoError(t, err)

	claims, err := svc.ValidateToken(ctx, signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}
