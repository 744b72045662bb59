package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"hbb/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret   = "test-secret"
	testIssuer   = "https://id.example.com"
	testAudience = "hbb"
)

func newTestVerifier(t *testing.T) *jwtVerifier {
	t.Helper()

	cfg := &config.Config{
		Identity: &config.IdentityConfig{
			Issuer:   testIssuer,
			Audience: testAudience,
			Secret:   testSecret,
		},
	}

	verifier, err := NewJWTVerifier(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	v, ok := verifier.(*jwtVerifier)
	require.True(t, ok)

	return v
}

func mintToken(t *testing.T, secret string, mutate func(claims jwt.MapClaims)) string {
	t.Helper()

	claims := jwt.MapClaims{
		"iss":   testIssuer,
		"aud":   testAudience,
		"sub":   "subject-123",
		"email": "owner@example.com",
		"name":  "Joe Owner",
		"exp":   time.Now().Add(time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}
	if mutate != nil {
		mutate(claims)
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func TestJWTVerifier_Verify_Success(t *testing.T) {
	v := newTestVerifier(t)

	principal, err := v.Verify(context.Background(), mintToken(t, testSecret, nil))

	require.NoError(t, err)
	assert.Equal(t, "subject-123", principal.Subject)
	assert.Equal(t, "owner@example.com", principal.Email)
	assert.Equal(t, "Joe Owner", principal.Name)
}

func TestJWTVerifier_Verify_MissingOptionalClaims(t *testing.T) {
	v := newTestVerifier(t)

	token := mintToken(t, testSecret, func(claims jwt.MapClaims) {
		delete(claims, "email")
		delete(claims, "name")
	})

	principal, err := v.Verify(context.Background(), token)

	require.NoError(t, err)
	assert.Equal(t, "subject-123", principal.Subject)
	assert.Empty(t, principal.Email)
	assert.Empty(t, principal.Name)
}

func TestJWTVerifier_Verify_Failures(t *testing.T) {
	v := newTestVerifier(t)

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "wrong secret",
			token: mintToken(t, "other-secret", nil),
		},
		{
			name: "expired",
			token: mintToken(t, testSecret, func(claims jwt.MapClaims) {
				claims["exp"] = time.Now().Add(-time.Hour).Unix()
			}),
		},
		{
			name: "wrong issuer",
			token: mintToken(t, testSecret, func(claims jwt.MapClaims) {
				claims["iss"] = "https://rogue.example.com"
			}),
		},
		{
			name: "wrong audience",
			token: mintToken(t, testSecret, func(claims jwt.MapClaims) {
				claims["aud"] = "another-service"
			}),
		},
		{
			name: "missing expiry",
			token: mintToken(t, testSecret, func(claims jwt.MapClaims) {
				delete(claims, "exp")
			}),
		},
		{
			name: "missing subject",
			token: mintToken(t, testSecret, func(claims jwt.MapClaims) {
				delete(claims, "sub")
			}),
		},
		{
			name:  "garbage",
			token: "not-a-token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			principal, err := v.Verify(context.Background(), tt.token)

			assert.Error(t, err)
			assert.Nil(t, principal)
		})
	}
}

func TestNewJWTVerifier_RequiresSecret(t *testing.T) {
	_, err := NewJWTVerifier(&config.Config{}, slog.Default())

	assert.Error(t, err)
}
