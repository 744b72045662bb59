// Package usecase defines application-level interfaces and DTOs for the
// registry's operations.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"hbb/internal/domain/entity"
	"hbb/internal/domain/service"
)

// UserProfile is the redacted user projection returned to clients.
type UserProfile struct {
	ID      uuid.UUID `json:"id"`
	Subject string    `json:"subject"`
	Email   string    `json:"email"`
	Name    string    `json:"name"`
}

// AuthStatusOutput reports whether the caller is authenticated and, when a
// user record exists, its profile.
type AuthStatusOutput struct {
	Authenticated bool         `json:"authenticated"`
	User          *UserProfile `json:"user"`
}

// IdentityUsecase handles user provisioning backed by the external identity
// provider.
type IdentityUsecase interface {
	// CreateOrGetUser returns the existing user for the principal's subject,
	// creating one on first sign-in. Returns ErrUnauthenticated when principal
	// is nil.
	CreateOrGetUser(ctx context.Context, principal *service.Principal) (uuid.UUID, error)

	// GetCurrentUser returns the user record for the principal, or nil when
	// the caller is unauthenticated or not yet provisioned.
	GetCurrentUser(ctx context.Context, principal *service.Principal) (*entity.User, error)

	// GetAuthStatus reports the authentication state together with the user
	// profile when one exists.
	GetAuthStatus(ctx context.Context, principal *service.Principal) (*AuthStatusOutput, error)
}

// NewUserProfile builds the client-facing projection of a user entity.
func NewUserProfile(user *entity.User) *UserProfile {
	if user == nil {
		return nil
	}

	return &UserProfile{
		ID:      user.ID,
		Subject: user.Subject,
		Email:   user.Email,
		Name:    user.Name,
	}
}
