package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"hbb/internal/delivery/http/response"
	"hbb/internal/domain/service"
)

// keyPrincipal is the echo.Context key carrying the verified principal.
const keyPrincipal = "principal"

// AuthMiddleware verifies bearer tokens issued by the external identity
// provider and attaches the resulting principal to the request.
type AuthMiddleware struct {
	verifier service.IdentityVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.IdentityVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate rejects requests that do not carry a valid bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authorization header is missing or malformed")
		}

		principal, err := m.verifier.Verify(c.Request().Context(), token)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid or expired token")
		}

		SetPrincipal(c, principal)

		return next(c)
	}
}

// Attach resolves the bearer token when one is present but never rejects the
// request. Handlers behind it see a nil principal for anonymous callers.
func (m *AuthMiddleware) Attach(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return next(c)
		}

		principal, err := m.verifier.Verify(c.Request().Context(), token)
		if err != nil {
			// Invalid credentials on an optional route count as anonymous.
			return next(c)
		}

		SetPrincipal(c, principal)

		return next(c)
	}
}

// SetPrincipal stores the verified principal on the echo context.
func SetPrincipal(c echo.Context, principal *service.Principal) {
	c.Set(keyPrincipal, principal)
}

// GetPrincipal returns the verified principal, or nil for anonymous requests.
func GetPrincipal(c echo.Context) *service.Principal {
	principal, _ := c.Get(keyPrincipal).(*service.Principal)

	return principal
}

func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader || token == "" {
		return "", false
	}

	return token, true
}
