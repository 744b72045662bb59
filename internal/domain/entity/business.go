package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShortDescriptionLimit is the maximum length, in characters, of the
// derived short description preview.
const ShortDescriptionLimit = 100

// Category classifies a business into one of the fixed directory categories.
type Category string

// The full set of business categories.
const (
	CategoryFood     Category = "Food"
	CategoryBeauty   Category = "Beauty"
	CategoryFusion   Category = "Fusion"
	CategoryServices Category = "Services"
)

// IsValid reports whether the category is a member of the fixed set.
func (c Category) IsValid() bool {
	switch c {
	case CategoryFood, CategoryBeauty, CategoryFusion, CategoryServices:
		return true
	}

	return false
}

// Status describes where a business sits in the review lifecycle.
// Records are created as StatusDraft; the remaining transitions belong
// to a future review workflow and no operation here mutates them.
type Status string

// The declared business review states.
const (
	StatusDraft    Status = "draft"
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Business is a directory listing owned by exactly one user.
// The registry guarantees at most one Business per owner.
type Business struct {
	ID               uuid.UUID // Local identifier generated by the storage layer.
	OwnerID          uuid.UUID // The owning User's id. Unique across businesses.
	Name             string
	Category         Category
	Description      string
	ShortDescription string // Derived preview, computed from Description at creation time.
	Address          string
	Status           Status

	// Optional contact channels. Empty string means not provided.
	ContactPhone     string
	ContactWhatsApp  string
	ContactInstagram string
	ContactTikTok    string
	ContactFacebook  string
	ContactCarousell string
	ContactWebsite   string

	// Optional media references, opaque storage keys owned by the
	// collaborating media store.
	ImageKeys []string
	VideoKey  string

	CreatedAt       time.Time
	UpdatedAt       time.Time
	ApprovedAt      *time.Time
	RejectedAt      *time.Time
	RejectionReason string
}

// ShortDescriptionOf derives the preview field from a full description:
// the first ShortDescriptionLimit characters, counted in runes so
// multi-byte text is never split. A description of exactly the limit is
// returned unchanged.
func ShortDescriptionOf(description string) string {
	runes := []rune(description)
	if len(runes) <= ShortDescriptionLimit {
		return description
	}

	return string(runes[:ShortDescriptionLimit])
}
