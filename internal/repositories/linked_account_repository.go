package repositories

import (
	"context"
	"errors"
	"fmt"

	"roundup-savings/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrLinkedAccountNotFound = errors.New("linked account not found")
	ErrAccountAlreadyLinked  = errors.New("account already linked")
)

// LinkedAccountRepository handles database operations for linked bank accounts
type LinkedAccountRepository struct {
	db *gorm.DB
}

// NewLinkedAccountRepository creates a new linked account repository
func NewLinkedAccountRepository(db *gorm.DB) LinkedAccountRepositoryInterface {
	return &LinkedAccountRepository{db: db}
}

// Create links a single account
func (r *LinkedAccountRepository) Create(ctx context.Context, account *models.LinkedAccount) error {
	if account == nil {
		return errors.New("linked account cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrAccountAlreadyLinked
		}
		return fmt.Errorf("failed to create linked account: %w", err)
	}

	return nil
}

// ListActiveByUser returns the user's active accounts, oldest first
func (r *LinkedAccountRepository) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]models.LinkedAccount, error) {
	var accounts []models.LinkedAccount
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at ASC").
		Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to list linked accounts: %w", err)
	}
	return accounts, nil
}

// GetActiveByExternalID retrieves an active account the user owns
func (r *LinkedAccountRepository) GetActiveByExternalID(ctx context.Context, userID uuid.UUID, externalAccountID string) (*models.LinkedAccount, error) {
	var account models.LinkedAccount
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND external_account_id = ? AND is_active = ?", userID, externalAccountID, true).
		First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkedAccountNotFound
		}
		return nil, fmt.Errorf("failed to get linked account: %w", err)
	}
	return &account, nil
}

// ExistsForUser reports whether the user already linked externalAccountID
func (r *LinkedAccountRepository) ExistsForUser(ctx context.Context, userID uuid.UUID, externalAccountID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.LinkedAccount{}).
		Where("user_id = ? AND external_account_id = ?", userID, externalAccountID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check linked account: %w", err)
	}
	return count > 0, nil
}
