package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hbb/internal/delivery/http/middleware"
	"hbb/internal/domain/service"
	mockUsecase "hbb/internal/mocks/usecase"
	"hbb/internal/usecase"
)

func TestIdentityHandler_CreateSession(t *testing.T) {
	uc := mockUsecase.NewMockIdentityUsecase(t)
	handler := NewIdentityHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	principal := &service.Principal{Subject: "idp|alice", Email: "alice@example.com"}
	userID := uuid.New()

	c, rec := newTestContext(t, http.MethodPost, "/auth/session", "")
	middleware.SetPrincipal(c, principal)

	uc.EXPECT().
		CreateOrGetUser(mock.Anything, principal).
		Return(userID, nil)

	err := handler.CreateSession(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
}

func TestIdentityHandler_Me_Anonymous(t *testing.T) {
	uc := mockUsecase.NewMockIdentityUsecase(t)
	handler := NewIdentityHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newTestContext(t, http.MethodGet, "/auth/me", "")

	uc.EXPECT().
		GetCurrentUser(mock.Anything, (*service.Principal)(nil)).
		Return(nil, nil)

	err := handler.Me(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":null`)
}

func TestIdentityHandler_Status_Authenticated(t *testing.T) {
	uc := mockUsecase.NewMockIdentityUsecase(t)
	handler := NewIdentityHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	principal := &service.Principal{Subject: "idp|alice"}
	c, rec := newTestContext(t, http.MethodGet, "/auth/status", "")
	middleware.SetPrincipal(c, principal)

	uc.EXPECT().
		GetAuthStatus(mock.Anything, principal).
		Return(&usecase.AuthStatusOutput{
			Authenticated: true,
			User: &usecase.UserProfile{
				ID:      uuid.New(),
				Subject: principal.Subject,
				Name:    "Alice",
			},
		}, nil)

	err := handler.Status(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"authenticated":true`)
	assert.Contains(t, rec.Body.String(), `"subject":"idp|alice"`)
}
