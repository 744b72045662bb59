package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"hbb/internal/delivery/http/middleware"
	"hbb/internal/delivery/http/response"
	"hbb/internal/usecase"
)

// IdentityHandler holds dependencies for identity-related handlers.
type IdentityHandler struct {
	uc     usecase.IdentityUsecase
	logger *slog.Logger
}

// NewIdentityHandler is the constructor for IdentityHandler, injected by Fx.
func NewIdentityHandler(uc usecase.IdentityUsecase, logger *slog.Logger) *IdentityHandler {
	return &IdentityHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateSession provisions the signed-in caller's user record, creating it on
// first sign-in. Requires authentication.
func (h *IdentityHandler) CreateSession(c echo.Context) error {
	principal := middleware.GetPrincipal(c)

	userID, err := h.uc.CreateOrGetUser(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"userId": userID}, "Session established")
}

// Me returns the caller's user record, or null when anonymous or not yet
// provisioned.
func (h *IdentityHandler) Me(c echo.Context) error {
	principal := middleware.GetPrincipal(c)

	user, err := h.uc.GetCurrentUser(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, usecase.NewUserProfile(user), "")
}

// Status reports the caller's authentication state.
func (h *IdentityHandler) Status(c echo.Context) error {
	principal := middleware.GetPrincipal(c)

	status, err := h.uc.GetAuthStatus(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, status, "")
}
