package repository

import (
	"context"
	"errors"

	"hbb/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for business persistence.
var (
	// ErrBusinessNotFound is returned when an owner has no business record.
	ErrBusinessNotFound = errors.New("business not found")
	// ErrDuplicateBusiness is returned when an insert collides with the
	// unique constraint on the owner column. This is the storage-level
	// backstop for the one-business-per-owner invariant.
	ErrDuplicateBusiness = errors.New("owner already has a business")
)

// BusinessRepository defines the standard operations for business persistence.
type BusinessRepository interface {
	// FindByOwner retrieves the owner's business through the unique
	// owner index, so the result is always zero or one record.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Business, error)

	// Create persists a new business entity and fills in the generated id
	// and timestamps. Returns ErrDuplicateBusiness when the owner already
	// holds a record, including under concurrent create races.
	Create(ctx context.Context, business *entity.Business) error
}
