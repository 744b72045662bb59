package postgres

import (
	"context"

	"hbb/internal/domain/entity"
	domainerrors "hbb/internal/domain/errors"
	"hbb/internal/domain/repository"
	"hbb/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// businessRepository implements the repository.BusinessRepository interface using GORM.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{
		db: db,
	}
}

// FindByOwner retrieves the owner's business through the unique owner index.
func (repo *businessRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Business, error) {
	var businessM model.BusinessModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&businessM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by owner")
	}

	return toBusinessDomain(&businessM), nil
}

// Create persists a new business entity. The unique constraint on owner_id
// turns a concurrent second insert for the same owner into
// repository.ErrDuplicateBusiness instead of a silent double-insert.
func (repo *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	businessM := fromBusinessDomain(business)

	if err := repo.db.WithContext(ctx).Create(businessM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors.
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateBusiness
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBusinessCreationFailed.WrapMessage("invalid owner reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrBusinessCreationFailed.WrapMessage("missing required business information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create business")
	}

	// Propagate generated values back to the entity.
	business.ID = businessM.ID
	business.CreatedAt = businessM.CreatedAt
	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toBusinessDomain converts a GORM BusinessModel to a domain Business entity.
func toBusinessDomain(data *model.BusinessModel) *entity.Business {
	if data == nil {
		return nil
	}

	return &entity.Business{
		ID:               data.ID,
		OwnerID:          data.OwnerID,
		Name:             data.Name,
		Category:         entity.Category(data.Category),
		Description:      data.Description,
		ShortDescription: data.ShortDescription,
		Address:          data.Address,
		Status:           entity.Status(data.Status),
		ContactPhone:     fromNullableString(data.ContactPhone),
		ContactWhatsApp:  fromNullableString(data.ContactWhatsApp),
		ContactInstagram: fromNullableString(data.ContactInstagram),
		ContactTikTok:    fromNullableString(data.ContactTikTok),
		ContactFacebook:  fromNullableString(data.ContactFacebook),
		ContactCarousell: fromNullableString(data.ContactCarousell),
		ContactWebsite:   fromNullableString(data.ContactWebsite),
		ImageKeys:        data.ImageKeys,
		VideoKey:         fromNullableString(data.VideoKey),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
		ApprovedAt:       data.ApprovedAt,
		RejectedAt:       data.RejectedAt,
		RejectionReason:  fromNullableString(data.RejectionReason),
	}
}

// fromBusinessDomain converts a domain Business entity to a GORM BusinessModel.
func fromBusinessDomain(data *entity.Business) *model.BusinessModel {
	if data == nil {
		return nil
	}

	return &model.BusinessModel{
		ID:               data.ID,
		OwnerID:          data.OwnerID,
		Name:             data.Name,
		Category:         string(data.Category),
		Description:      data.Description,
		ShortDescription: data.ShortDescription,
		Address:          data.Address,
		Status:           string(data.Status),
		ContactPhone:     toNullableString(data.ContactPhone),
		ContactWhatsApp:  toNullableString(data.ContactWhatsApp),
		ContactInstagram: toNullableString(data.ContactInstagram),
		ContactTikTok:    toNullableString(data.ContactTikTok),
		ContactFacebook:  toNullableString(data.ContactFacebook),
		ContactCarousell: toNullableString(data.ContactCarousell),
		ContactWebsite:   toNullableString(data.ContactWebsite),
		ImageKeys:        data.ImageKeys,
		VideoKey:         toNullableString(data.VideoKey),
		ApprovedAt:       data.ApprovedAt,
		RejectedAt:       data.RejectedAt,
		RejectionReason:  toNullableString(data.RejectionReason),
	}
}

func fromNullableString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func toNullableString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
