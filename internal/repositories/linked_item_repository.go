package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"roundup-savings/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrLinkedItemNotFound = errors.New("linked item not found")
	ErrItemAlreadyLinked  = errors.New("item already linked")
)

// LinkedItemRepository handles database operations for bank connections
type LinkedItemRepository struct {
	db *gorm.DB
}

// NewLinkedItemRepository creates a new linked item repository
func NewLinkedItemRepository(db *gorm.DB) LinkedItemRepositoryInterface {
	return &LinkedItemRepository{db: db}
}

// CreateWithAccounts stores an item and its accounts in one transaction.
// Accounts whose external id the user already has are skipped; the returned
// slice holds only the rows that were written.
func (r *LinkedItemRepository) CreateWithAccounts(ctx context.Context, item *models.LinkedItem, accounts []models.LinkedAccount) ([]models.LinkedAccount, error) {
	if item == nil {
		return nil, errors.New("linked item cannot be nil")
	}

	var created []models.LinkedAccount
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(item).Error; err != nil {
			if isDuplicateKeyError(err) {
				return ErrItemAlreadyLinked
			}
			return fmt.Errorf("failed to create linked item: %w", err)
		}

		var existing []string
		if err := tx.Model(&models.LinkedAccount{}).
			Where("user_id = ?", item.UserID).
			Pluck("external_account_id", &existing).Error; err != nil {
			return fmt.Errorf("failed to load linked accounts: %w", err)
		}
		seen := make(map[string]struct{}, len(existing))
		for _, id := range existing {
			seen[id] = struct{}{}
		}

		for i := range accounts {
			account := accounts[i]
			if _, ok := seen[account.ExternalAccountID]; ok {
				continue
			}
			account.UserID = item.UserID
			account.LinkedItemID = item.ID
			account.IsActive = true
			if err := tx.Create(&account).Error; err != nil {
				return fmt.Errorf("failed to create linked account: %w", err)
			}
			seen[account.ExternalAccountID] = struct{}{}
			created = append(created, account)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// GetByItemID retrieves an item by the provider's item id
func (r *LinkedItemRepository) GetByItemID(ctx context.Context, itemID string) (*models.LinkedItem, error) {
	var item models.LinkedItem
	if err := r.db.WithContext(ctx).Where("item_id = ?", itemID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkedItemNotFound
		}
		return nil, fmt.Errorf("failed to get linked item: %w", err)
	}
	return &item, nil
}

// GetByItemIDForUser retrieves an item only if userID owns it
func (r *LinkedItemRepository) GetByItemIDForUser(ctx context.Context, userID uuid.UUID, itemID string) (*models.LinkedItem, error) {
	var item models.LinkedItem
	if err := r.db.WithContext(ctx).
		Where("item_id = ? AND user_id = ?", itemID, userID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkedItemNotFound
		}
		return nil, fmt.Errorf("failed to get linked item: %w", err)
	}
	return &item, nil
}

// GetByID retrieves an item by primary key
func (r *LinkedItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.LinkedItem, error) {
	var item models.LinkedItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkedItemNotFound
		}
		return nil, fmt.Errorf("failed to get linked item: %w", err)
	}
	return &item, nil
}

// ListActiveByUser returns the user's active items, oldest first
func (r *LinkedItemRepository) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]models.LinkedItem, error) {
	var items []models.LinkedItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, models.LinkedItemStatusActive).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list linked items: %w", err)
	}
	return items, nil
}

// UpdateStatus sets the status of the item with the given provider id
func (r *LinkedItemRepository) UpdateStatus(ctx context.Context, itemID, status string) error {
	if !models.IsValidItemStatus(status) {
		return models.ErrInvalidItemStatus
	}

	result := r.db.WithContext(ctx).Model(&models.LinkedItem{}).
		Where("item_id = ?", itemID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update linked item status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrLinkedItemNotFound
	}

	return nil
}

// DeleteWithAccounts removes a user's item and the accounts under it
func (r *LinkedItemRepository) DeleteWithAccounts(ctx context.Context, userID uuid.UUID, itemID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.LinkedItem
		if err := tx.Where("item_id = ? AND user_id = ?", itemID, userID).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLinkedItemNotFound
			}
			return fmt.Errorf("failed to get linked item: %w", err)
		}

		if err := tx.Where("linked_item_id = ?", item.ID).Delete(&models.LinkedAccount{}).Error; err != nil {
			return fmt.Errorf("failed to delete linked accounts: %w", err)
		}

		if err := tx.Delete(&item).Error; err != nil {
			return fmt.Errorf("failed to delete linked item: %w", err)
		}
		return nil
	})
}
