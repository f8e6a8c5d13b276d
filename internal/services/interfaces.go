package services

import (
	"context"
	"time"

	"roundup-savings/internal/dto"
	"roundup-savings/internal/models"

	"github.com/google/uuid"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
}

type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	AccessTokenTTL() time.Duration
}

type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

// UserServiceInterface covers the authenticated user's own profile
type UserServiceInterface interface {
	ResolveActiveUser(ctx context.Context, username string) (*models.User, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateUserRequest) (*models.User, string, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req *dto.ChangePasswordRequest) error
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

type PreferenceServiceInterface interface {
	GetPreferences(ctx context.Context, userID uuid.UUID) (*models.Preference, error)
	UpdatePreferences(ctx context.Context, userID uuid.UUID, req *dto.UpdatePreferencesRequest) (*models.Preference, error)
}

type BankAccountServiceInterface interface {
	ListAccounts(ctx context.Context, userID uuid.UUID) ([]models.LinkedAccount, error)
	LinkAccount(ctx context.Context, userID uuid.UUID, req *dto.LinkBankAccountRequest) (*models.LinkedAccount, error)
}

// PlaidServiceInterface composes the bank-data gateway with the linked-item registry
type PlaidServiceInterface interface {
	CreateLinkToken(ctx context.Context, userID uuid.UUID) (*dto.LinkTokenResponse, error)
	ExchangePublicToken(ctx context.Context, userID uuid.UUID, req *dto.ExchangeTokenRequest) (*dto.ExchangeTokenResponse, error)
	ListAccounts(ctx context.Context, userID uuid.UUID) ([]dto.PlaidAccount, error)
	GetBalance(ctx context.Context, userID uuid.UUID, externalAccountID string) (*dto.BalanceResponse, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, start, end time.Time) (*dto.TransactionsResponse, error)
	HandleWebhook(ctx context.Context, req *dto.WebhookRequest) error
	UnlinkItem(ctx context.Context, userID uuid.UUID, itemID string) error
}

type RoundupServiceInterface interface {
	Calculate(ctx context.Context, userID uuid.UUID, req *dto.CalculateRoundupRequest) (*models.RoundupRecord, error)
	History(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.RoundupRecord, int64, error)
	Summary(ctx context.Context, userID uuid.UUID, days int) (*dto.RoundupSummaryResponse, error)
	BatchCalculate(ctx context.Context, userID uuid.UUID, req *dto.BatchCalculateRequest) (*dto.BatchCalculateResponse, error)
	Delete(ctx context.Context, userID, recordID uuid.UUID) error
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}
