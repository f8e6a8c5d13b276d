package repositories

import (
	"context"
	"time"

	"roundup-savings/internal/models"

	"github.com/google/uuid"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByLogin(ctx context.Context, identifier string) (*models.User, error)
	EmailTaken(ctx context.Context, email string, excludeUserID uuid.UUID) (bool, error)
	UsernameTaken(ctx context.Context, username string, excludeUserID uuid.UUID) (bool, error)
	Update(ctx context.Context, user *models.User) error
	UpdatePasswordHash(ctx context.Context, userID uuid.UUID, passwordHash string) error
	DeleteWithDependents(ctx context.Context, userID uuid.UUID) error
}

// PreferenceRepositoryInterface defines the contract for user preference operations
type PreferenceRepositoryInterface interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*models.Preference, error)
	Update(ctx context.Context, pref *models.Preference) error
}

// LinkedItemRepositoryInterface defines the contract for bank connection operations
type LinkedItemRepositoryInterface interface {
	CreateWithAccounts(ctx context.Context, item *models.LinkedItem, accounts []models.LinkedAccount) ([]models.LinkedAccount, error)
	GetByItemID(ctx context.Context, itemID string) (*models.LinkedItem, error)
	GetByItemIDForUser(ctx context.Context, userID uuid.UUID, itemID string) (*models.LinkedItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.LinkedItem, error)
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]models.LinkedItem, error)
	UpdateStatus(ctx context.Context, itemID, status string) error
	DeleteWithAccounts(ctx context.Context, userID uuid.UUID, itemID string) error
}

// LinkedAccountRepositoryInterface defines the contract for linked bank account operations
type LinkedAccountRepositoryInterface interface {
	Create(ctx context.Context, account *models.LinkedAccount) error
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]models.LinkedAccount, error)
	GetActiveByExternalID(ctx context.Context, userID uuid.UUID, externalAccountID string) (*models.LinkedAccount, error)
	ExistsForUser(ctx context.Context, userID uuid.UUID, externalAccountID string) (bool, error)
}

// RoundupRepositoryInterface defines the contract for roundup record operations
type RoundupRepositoryInterface interface {
	Create(ctx context.Context, record *models.RoundupRecord) error
	CreateBatch(ctx context.Context, records []*models.RoundupRecord) error
	GetByIDForUser(ctx context.Context, userID, id uuid.UUID) (*models.RoundupRecord, error)
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.RoundupRecord, int64, error)
	ListByUserInWindow(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.RoundupRecord, error)
	DeleteForUser(ctx context.Context, userID, id uuid.UUID) error
}
