package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hbb/internal/domain/service"
	"hbb/internal/errors"
	mockService "hbb/internal/mocks/service"
)

func newAuthTestContext(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func passthroughHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	verifier := mockService.NewMockIdentityVerifier(t)
	m := NewAuthMiddleware(verifier)

	c, rec := newAuthTestContext("")

	err := m.Authenticate(passthroughHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	verifier.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}

func TestAuthMiddleware_Authenticate_MalformedHeader(t *testing.T) {
	verifier := mockService.NewMockIdentityVerifier(t)
	m := NewAuthMiddleware(verifier)

	c, rec := newAuthTestContext("Basic abc123")

	err := m.Authenticate(passthroughHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	verifier := mockService.NewMockIdentityVerifier(t)
	m := NewAuthMiddleware(verifier)

	c, rec := newAuthTestContext("Bearer bad-token")

	verifier.EXPECT().
		Verify(mock.Anything, "bad-token").
		Return(nil, errors.New("token is expired"))

	err := m.Authenticate(passthroughHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_ValidToken(t *testing.T) {
	verifier := mockService.NewMockIdentityVerifier(t)
	m := NewAuthMiddleware(verifier)

	principal := &service.Principal{Subject: "idp|alice", Email: "alice@example.com"}
	c, rec := newAuthTestContext("Bearer good-token")

	verifier.EXPECT().
		Verify(mock.Anything, "good-token").
		Return(principal, nil)

	err := m.Authenticate(func(c echo.Context) error {
		assert.Equal(t, principal, GetPrincipal(c))

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_Attach_AnonymousPassesThrough(t *testing.T) {
	verifier := mockService.NewMockIdentityVerifier(t)
	m := NewAuthMiddleware(verifier)

	c, rec := newAuthTestContext("")

	err := m.Attach(func(c echo.Context) error {
		assert.Nil(t, GetPrincipal(c))

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	verifier.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}

func TestAuthMiddleware_Attach_InvalidTokenCountsAsAnonymous(t *testing.T) {
	verifier := mockService.NewMockIdentityVerifier(t)
	m := NewAuthMiddleware(verifier)

	c, rec := newAuthTestContext("Bearer bad-token")

	verifier.EXPECT().
		Verify(mock.Anything, "bad-token").
		Return(nil, errors.New("signature is invalid"))

	err := m.Attach(func(c echo.Context) error {
		assert.Nil(t, GetPrincipal(c))

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_Attach_ValidToken(t *testing.T) {
	verifier := mockService.NewMockIdentityVerifier(t)
	m := NewAuthMiddleware(verifier)

	principal := &service.Principal{Subject: "idp|bob"}
	c, rec := newAuthTestContext("Bearer good-token")

	verifier.EXPECT().
		Verify(mock.Anything, "good-token").
		Return(principal, nil)

	err := m.Attach(func(c echo.Context) error {
		assert.Equal(t, principal, GetPrincipal(c))

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
