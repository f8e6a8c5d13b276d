package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MinRoundupMultiplier     = 1
	MaxRoundupMultiplier     = 10
	DefaultRoundupMultiplier = 1
)

var ErrInvalidMultiplier = errors.New("roundup multiplier must be between 1 and 10")

// Preference holds the per-user roundup settings. There is exactly one row
// per user.
type Preference struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID               uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	RoundupEnabled       bool      `gorm:"not null" json:"roundup_enabled"`
	RoundupMultiplier    int       `gorm:"not null" json:"roundup_multiplier"`
	NotificationsEnabled bool      `gorm:"not null" json:"notifications_enabled"`
	CreatedAt            time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt            time.Time `gorm:"not null" json:"updated_at"`
}

// DefaultPreference returns the settings a user starts with.
func DefaultPreference(userID uuid.UUID) *Preference {
	return &Preference{
		UserID:               userID,
		RoundupEnabled:       true,
		RoundupMultiplier:    DefaultRoundupMultiplier,
		NotificationsEnabled: true,
	}
}

func (p *Preference) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	return p.Validate()
}

func (p *Preference) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return p.Validate()
}

func (p *Preference) Validate() error {
	if p.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if p.RoundupMultiplier < MinRoundupMultiplier || p.RoundupMultiplier > MaxRoundupMultiplier {
		return ErrInvalidMultiplier
	}
	return nil
}

func (p *Preference) TableName() string {
	return "user_preferences"
}
