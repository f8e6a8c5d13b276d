package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"roundup-savings/internal/roundup"
)

const MaxTransactionIDLength = 255

var (
	ErrInvalidAmount        = errors.New("original amount must be positive")
	ErrNegativeRoundup      = errors.New("roundup amount cannot be negative")
	ErrRoundupMismatch      = errors.New("roundup amount must equal rounded amount minus original amount")
	ErrInvalidRoundingRule  = errors.New("invalid rounding rule")
	ErrBoundaryRuleMismatch = errors.New("custom boundary is required for the custom rule and not allowed otherwise")
)

// RoundupRecord is one persisted roundup calculation. Records are immutable
// once created; only deletion is allowed.
type RoundupRecord struct {
	ID             uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID           `gorm:"type:uuid;not null;index:idx_roundup_records_user_created,priority:1" json:"user_id"`
	TransactionID  *string             `gorm:"type:varchar(255)" json:"transaction_id,omitempty"`
	OriginalAmount decimal.Decimal     `gorm:"type:decimal(15,2);not null" json:"original_amount"`
	RoundingRule   string              `gorm:"type:varchar(20);not null" json:"rounding_rule"`
	CustomBoundary decimal.NullDecimal `gorm:"type:decimal(15,2)" json:"custom_rounding_amount"`
	RoundedAmount  decimal.Decimal     `gorm:"type:decimal(15,2);not null" json:"rounded_amount"`
	RoundupAmount  decimal.Decimal     `gorm:"type:decimal(15,2);not null" json:"roundup_amount"`
	CreatedAt      time.Time           `gorm:"not null;index:idx_roundup_records_user_created,priority:2" json:"created_at"`
}

// NewRoundupRecord builds a record from an engine result.
func NewRoundupRecord(userID uuid.UUID, transactionID *string, rule roundup.Rule, boundary *decimal.Decimal, res roundup.Result) *RoundupRecord {
	rec := &RoundupRecord{
		UserID:         userID,
		TransactionID:  transactionID,
		OriginalAmount: res.OriginalAmount,
		RoundingRule:   string(rule),
		RoundedAmount:  res.RoundedAmount,
		RoundupAmount:  res.RoundupAmount,
	}
	if rule == roundup.RuleCustom && boundary != nil {
		rec.CustomBoundary = decimal.NewNullDecimal(*boundary)
	}
	return rec
}

func (r *RoundupRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	return r.Validate()
}

// BeforeUpdate rejects every update.
func (r *RoundupRecord) BeforeUpdate(tx *gorm.DB) error {
	return errors.New("roundup records are immutable")
}

func (r *RoundupRecord) Validate() error {
	if r.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if !r.OriginalAmount.IsPositive() {
		return ErrInvalidAmount
	}

	rule := roundup.Rule(r.RoundingRule)
	if !rule.Valid() {
		return ErrInvalidRoundingRule
	}

	hasBoundary := r.CustomBoundary.Valid
	if (rule == roundup.RuleCustom) != hasBoundary {
		return ErrBoundaryRuleMismatch
	}
	if hasBoundary && !r.CustomBoundary.Decimal.IsPositive() {
		return ErrBoundaryRuleMismatch
	}

	if r.RoundupAmount.IsNegative() {
		return ErrNegativeRoundup
	}
	if !r.RoundedAmount.Sub(r.OriginalAmount).Equal(r.RoundupAmount) {
		return ErrRoundupMismatch
	}

	if r.TransactionID != nil && len(*r.TransactionID) > MaxTransactionIDLength {
		return errors.New("transaction ID must be at most 255 characters")
	}

	return nil
}

// Boundary returns the custom boundary or nil.
func (r *RoundupRecord) Boundary() *decimal.Decimal {
	if !r.CustomBoundary.Valid {
		return nil
	}
	b := r.CustomBoundary.Decimal
	return &b
}

// SummaryRecord projects the record for roundup.Summarize.
func (r *RoundupRecord) SummaryRecord() roundup.Record {
	return roundup.Record{
		Rule:          roundup.Rule(r.RoundingRule),
		RoundupAmount: r.RoundupAmount,
		CreatedAt:     r.CreatedAt,
	}
}

func (r *RoundupRecord) TableName() string {
	return "roundup_records"
}
