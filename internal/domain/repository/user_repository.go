// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"hbb/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user record does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when an insert collides with the unique
	// index on the external subject id.
	ErrDuplicateUser = errors.New("user already exists for subject")
)

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their local id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindBySubject retrieves a single user by their external subject id,
	// relying on the unique index to return at most one record.
	FindBySubject(ctx context.Context, subject string) (*entity.User, error)

	// Create persists a new user entity and fills in the generated id and
	// creation timestamp. Returns ErrDuplicateUser when the subject is taken.
	Create(ctx context.Context, user *entity.User) error
}
