package repositories

import (
	"context"
	"errors"
	"fmt"

	"roundup-savings/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrPreferenceNotFound = errors.New("preference not found")

// PreferenceRepository handles database operations for user preferences
type PreferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository creates a new preference repository
func NewPreferenceRepository(db *gorm.DB) PreferenceRepositoryInterface {
	return &PreferenceRepository{db: db}
}

// GetOrCreate returns the user's preferences, creating the defaults on first
// access. A concurrent first access that loses the insert race re-reads.
func (r *PreferenceRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*models.Preference, error) {
	pref, err := r.get(ctx, userID)
	if err == nil {
		return pref, nil
	}
	if !errors.Is(err, ErrPreferenceNotFound) {
		return nil, err
	}

	pref = models.DefaultPreference(userID)
	if err := r.db.WithContext(ctx).Create(pref).Error; err != nil {
		if isDuplicateKeyError(err) {
			return r.get(ctx, userID)
		}
		return nil, fmt.Errorf("failed to create preference: %w", err)
	}

	return pref, nil
}

// Update saves all preference fields
func (r *PreferenceRepository) Update(ctx context.Context, pref *models.Preference) error {
	if pref == nil {
		return errors.New("preference cannot be nil")
	}

	if err := r.db.WithContext(ctx).Save(pref).Error; err != nil {
		return fmt.Errorf("failed to update preference: %w", err)
	}

	return nil
}

func (r *PreferenceRepository) get(ctx context.Context, userID uuid.UUID) (*models.Preference, error) {
	var pref models.Preference
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&pref).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPreferenceNotFound
		}
		return nil, fmt.Errorf("failed to get preference: %w", err)
	}
	return &pref, nil
}
