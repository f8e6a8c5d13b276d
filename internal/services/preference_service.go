package services

import (
	"context"

	"roundup-savings/internal/dto"
	"roundup-savings/internal/models"
	"roundup-savings/internal/repositories"

	"github.com/google/uuid"
)

type PreferenceService struct {
	prefRepo repositories.PreferenceRepositoryInterface
}

func NewPreferenceService(prefRepo repositories.PreferenceRepositoryInterface) PreferenceServiceInterface {
	return &PreferenceService{prefRepo: prefRepo}
}

// GetPreferences returns the user's settings, creating the defaults on first read
func (s *PreferenceService) GetPreferences(ctx context.Context, userID uuid.UUID) (*models.Preference, error) {
	return s.prefRepo.GetOrCreate(ctx, userID)
}

func (s *PreferenceService) UpdatePreferences(ctx context.Context, userID uuid.UUID, req *dto.UpdatePreferencesRequest) (*models.Preference, error) {
	pref, err := s.prefRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.RoundupEnabled != nil {
		pref.RoundupEnabled = *req.RoundupEnabled
	}
	if req.RoundupMultiplier != nil {
		pref.RoundupMultiplier = *req.RoundupMultiplier
	}
	if req.NotificationsEnabled != nil {
		pref.NotificationsEnabled = *req.NotificationsEnabled
	}

	if err := pref.Validate(); err != nil {
		return nil, err
	}

	if err := s.prefRepo.Update(ctx, pref); err != nil {
		return nil, err
	}
	return pref, nil
}
