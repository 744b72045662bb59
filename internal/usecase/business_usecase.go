package usecase

import (
	"context"

	"github.com/google/uuid"

	"hbb/internal/domain/entity"
	"hbb/internal/domain/service"
)

// Reasons reported by CanCreateBusiness when creation is not possible.
const (
	ReasonNotAuthenticated   = "Not authenticated"
	ReasonUserNotFound       = "User not found"
	ReasonAlreadyHasBusiness = "Already has a business"
)

// CreateBusinessInput carries the registration form for a new business.
type CreateBusinessInput struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category" validate:"required,oneof=Food Beauty Fusion Services"`
	Description string `json:"description" validate:"required"`
	Address     string `json:"address" validate:"required"`
}

// CanCreateOutput reports whether the caller may register a business and,
// when not, the reason.
type CanCreateOutput struct {
	CanCreate bool    `json:"canCreate"`
	Reason    *string `json:"reason"`
}

// BusinessUsecase handles business registration under the one-business-per-user
// rule.
type BusinessUsecase interface {
	// CreateBusiness registers a new business owned by the principal's user.
	// Returns ErrDuplicateBusiness when the user already owns one.
	CreateBusiness(ctx context.Context, principal *service.Principal, input *CreateBusinessInput) (uuid.UUID, error)

	// GetMyBusiness returns the principal's business, or nil when the caller
	// is unauthenticated, not provisioned, or owns no business.
	GetMyBusiness(ctx context.Context, principal *service.Principal) (*entity.Business, error)

	// CanCreateBusiness checks the preconditions for registration without
	// mutating anything.
	CanCreateBusiness(ctx context.Context, principal *service.Principal) (*CanCreateOutput, error)
}
