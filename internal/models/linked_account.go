package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LinkedAccount is a bank account discovered under a LinkedItem. The
// external account id is unique per user.
type LinkedAccount struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_linked_accounts_user_external" json:"user_id"`
	LinkedItemID      uuid.UUID `gorm:"type:uuid;not null;index" json:"linked_item_id"`
	ExternalAccountID string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_linked_accounts_user_external" json:"external_account_id"`
	Name              string    `gorm:"type:varchar(255);not null" json:"name"`
	Type              string    `gorm:"type:varchar(50)" json:"type"`
	Subtype           string    `gorm:"type:varchar(50)" json:"subtype,omitempty"`
	Mask              string    `gorm:"type:varchar(10)" json:"mask,omitempty"`
	IsActive          bool      `gorm:"not null" json:"is_active"`
	CreatedAt         time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time `gorm:"not null" json:"updated_at"`
}

func (a *LinkedAccount) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

func (a *LinkedAccount) Validate() error {
	if a.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if a.LinkedItemID == uuid.Nil {
		return errors.New("linked item ID is required")
	}
	if a.ExternalAccountID == "" {
		return errors.New("external account ID is required")
	}
	if a.Name == "" {
		return errors.New("account name is required")
	}
	return nil
}

func (a *LinkedAccount) TableName() string {
	return "linked_accounts"
}
