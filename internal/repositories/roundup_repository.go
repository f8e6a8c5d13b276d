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

var ErrRoundupNotFound = errors.New("roundup record not found")

// RoundupRepository handles database operations for roundup records
type RoundupRepository struct {
	db *gorm.DB
}

// NewRoundupRepository creates a new roundup repository
func NewRoundupRepository(db *gorm.DB) RoundupRepositoryInterface {
	return &RoundupRepository{db: db}
}

// Create stores a single record
func (r *RoundupRepository) Create(ctx context.Context, record *models.RoundupRecord) error {
	if record == nil {
		return errors.New("roundup record cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create roundup record: %w", err)
	}

	return nil
}

// CreateBatch stores all records or none
func (r *RoundupRepository) CreateBatch(ctx context.Context, records []*models.RoundupRecord) error {
	if len(records) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, record := range records {
			if err := tx.Create(record).Error; err != nil {
				return fmt.Errorf("failed to create roundup record: %w", err)
			}
		}
		return nil
	})
}

// GetByIDForUser retrieves a record only if userID owns it
func (r *RoundupRepository) GetByIDForUser(ctx context.Context, userID, id uuid.UUID) (*models.RoundupRecord, error) {
	var record models.RoundupRecord
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoundupNotFound
		}
		return nil, fmt.Errorf("failed to get roundup record: %w", err)
	}
	return &record, nil
}

// ListByUser returns one page of the user's records, newest first, and the
// user's total record count.
func (r *RoundupRepository) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.RoundupRecord, int64, error) {
	var total int64
	query := r.db.WithContext(ctx).Model(&models.RoundupRecord{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count roundup records: %w", err)
	}

	var records []models.RoundupRecord
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list roundup records: %w", err)
	}

	return records, total, nil
}

// ListByUserInWindow returns the user's records created in [start, end)
func (r *RoundupRepository) ListByUserInWindow(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.RoundupRecord, error) {
	var records []models.RoundupRecord
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end).
		Order("created_at ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list roundup records: %w", err)
	}
	return records, nil
}

// DeleteForUser removes a record only if userID owns it
func (r *RoundupRepository) DeleteForUser(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.RoundupRecord{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete roundup record: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrRoundupNotFound
	}

	return nil
}
