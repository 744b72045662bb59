package model

import (
	"time"

	"github.com/google/uuid"
)

// BusinessModel mirrors the 'businesses' table. The unique index on
// owner_id is the storage-level guarantee behind the one-business-per-owner
// invariant: a concurrent second insert fails with a unique violation
// instead of silently double-inserting.
type BusinessModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Name             string    `gorm:"type:varchar(255);not null"`
	Category         string    `gorm:"type:varchar(32);not null;index"`
	Description      string    `gorm:"type:text;not null"`
	ShortDescription string    `gorm:"type:varchar(400)"`
	Address          string    `gorm:"type:text;not null;index"`
	Status           string    `gorm:"type:varchar(16);not null;default:draft;index"`

	ContactPhone     *string `gorm:"type:varchar(32)"`
	ContactWhatsApp  *string `gorm:"type:varchar(64)"`
	ContactInstagram *string `gorm:"type:varchar(64)"`
	ContactTikTok    *string `gorm:"type:varchar(64)"`
	ContactFacebook  *string `gorm:"type:varchar(255)"`
	ContactCarousell *string `gorm:"type:varchar(255)"`
	ContactWebsite   *string `gorm:"type:varchar(255)"`

	ImageKeys []string `gorm:"serializer:json;type:jsonb"`
	VideoKey  *string  `gorm:"type:varchar(255)"`

	CreatedAt       time.Time
	UpdatedAt       time.Time
	ApprovedAt      *time.Time
	RejectedAt      *time.Time
	RejectionReason *string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}
