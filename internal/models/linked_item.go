package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	LinkedItemStatusActive       = "active"
	LinkedItemStatusError        = "error"
	LinkedItemStatusDisconnected = "disconnected"
)

var ErrInvalidItemStatus = errors.New("invalid linked item status")

// LinkedItem is one connection to the bank-data provider. The access token
// is a credential and is never serialized.
type LinkedItem struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	AccessToken     string    `gorm:"type:varchar(255);not null" json:"-"`
	ItemID          string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"item_id"`
	InstitutionID   string    `gorm:"type:varchar(255)" json:"institution_id,omitempty"`
	InstitutionName string    `gorm:"type:varchar(255)" json:"institution_name,omitempty"`
	Status          string    `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}

func (i *LinkedItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	if i.Status == "" {
		i.Status = LinkedItemStatusActive
	}

	now := time.Now()
	if i.CreatedAt.IsZero() {
		i.CreatedAt = now
	}
	if i.UpdatedAt.IsZero() {
		i.UpdatedAt = now
	}

	return i.Validate()
}

func (i *LinkedItem) Validate() error {
	if i.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if i.AccessToken == "" {
		return errors.New("access token is required")
	}
	if i.ItemID == "" {
		return errors.New("item ID is required")
	}
	if !IsValidItemStatus(i.Status) {
		return ErrInvalidItemStatus
	}
	return nil
}

func (i *LinkedItem) IsActive() bool {
	return i.Status == LinkedItemStatusActive
}

func (i *LinkedItem) TableName() string {
	return "linked_items"
}

func IsValidItemStatus(status string) bool {
	switch status {
	case LinkedItemStatusActive, LinkedItemStatusError, LinkedItemStatusDisconnected:
		return true
	default:
		return false
	}
}
