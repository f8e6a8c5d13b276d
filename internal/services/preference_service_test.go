package services

import (
	"context"
	"testing"

	"roundup-savings/internal/dto"
	"roundup-savings/internal/models"
	"roundup-savings/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceService_GetPreferences(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	repo := repository_mocks.NewMockPreferenceRepositoryInterface(ctrl)
	repo.EXPECT().GetOrCreate(gomock.Any(), userID).Return(models.DefaultPreference(userID), nil)

	pref, err := NewPreferenceService(repo).GetPreferences(context.Background(), userID)

	require.NoError(t, err)
	assert.True(t, pref.RoundupEnabled)
	assert.Equal(t, models.DefaultRoundupMultiplier, pref.RoundupMultiplier)
}

func TestPreferenceService_UpdatePreferences_Partial(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	repo := repository_mocks.NewMockPreferenceRepositoryInterface(ctrl)
	repo.EXPECT().GetOrCreate(gomock.Any(), userID).Return(models.DefaultPreference(userID), nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	multiplier := 3
	disabled := false
	pref, err := NewPreferenceService(repo).UpdatePreferences(context.Background(), userID, &dto.UpdatePreferencesRequest{
		RoundupMultiplier:    &multiplier,
		NotificationsEnabled: &disabled,
	})

	require.NoError(t, err)
	assert.Equal(t, 3, pref.RoundupMultiplier)
	assert.False(t, pref.NotificationsEnabled)
	assert.True(t, pref.RoundupEnabled)
}

func TestPreferenceService_UpdatePreferences_InvalidMultiplier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	repo := repository_mocks.NewMockPreferenceRepositoryInterface(ctrl)
	repo.EXPECT().GetOrCreate(gomock.Any(), userID).Return(models.DefaultPreference(userID), nil)

	multiplier := 11
	_, err := NewPreferenceService(repo).UpdatePreferences(context.Background(), userID, &dto.UpdatePreferencesRequest{
		RoundupMultiplier: &multiplier,
	})

	assert.ErrorIs(t, err, models.ErrInvalidMultiplier)
}
