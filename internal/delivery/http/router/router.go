// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"hbb/internal/delivery/http/middleware"
	"hbb/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	IdentityHandler *handler.IdentityHandler
	BusinessHandler *handler.BusinessHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	identityHandler *handler.IdentityHandler
	businessHandler *handler.BusinessHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		identityHandler: params.IdentityHandler,
		businessHandler: params.BusinessHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes. Reads tolerate anonymous callers, session creation does not.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/session", r.identityHandler.CreateSession, r.authMiddleware.Authenticate)
		authGroup.GET("/me", r.identityHandler.Me, r.authMiddleware.Attach)
		authGroup.GET("/status", r.identityHandler.Status, r.authMiddleware.Attach)
	}

	// Business registry routes.
	businessGroup := e.Group("/business")
	{
		businessGroup.POST("", r.businessHandler.Create, r.authMiddleware.Authenticate)
		businessGroup.GET("/mine", r.businessHandler.Mine, r.authMiddleware.Attach)
		businessGroup.GET("/can-create", r.businessHandler.CanCreate, r.authMiddleware.Attach)
	}
}
