package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"roundup-savings/internal/dto"
	"roundup-savings/internal/models"
	"roundup-savings/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountDisabled    = errors.New("user account is disabled")
)

// AuthService handles registration and sign-in
type AuthService struct {
	userRepo        repositories.UserRepositoryInterface
	passwordService PasswordServiceInterface
	tokenService    TokenServiceInterface
	metrics         MetricsRecorderInterface
	audit           *AuditLogger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	passwordService PasswordServiceInterface,
	tokenService TokenServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		metrics:         metrics,
		audit:           NewAuditLogger(logger),
	}
}

// Register creates a new user account and signs it in
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	email := models.NormalizeEmail(req.Email)

	taken, err := s.userRepo.EmailTaken(ctx, email, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if taken {
		s.recordAuthEvent("register_conflict")
		return nil, repositories.ErrEmailAlreadyExists
	}

	taken, err = s.userRepo.UsernameTaken(ctx, req.Username, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing username: %w", err)
	}
	if taken {
		s.recordAuthEvent("register_conflict")
		return nil, repositories.ErrUsernameAlreadyExists
	}

	hashedPassword, err := s.passwordService.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		Username:     req.Username,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		PasswordHash: hashedPassword,
		IsActive:     true,
	}

	// The unique indexes still catch a registration racing this one.
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrEmailAlreadyExists) ||
			errors.Is(err, repositories.ErrUsernameAlreadyExists) ||
			errors.Is(err, repositories.ErrUserAlreadyExists) {
			s.recordAuthEvent("register_conflict")
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.audit.LogUserRegistered(ctx, user.ID, user.Username)
	s.recordAuthEvent("register")

	return s.issueToken(user)
}

// Login authenticates by username or email and returns an access token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByLogin(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.recordAuthEvent("login_failed")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !s.passwordService.ComparePassword(req.Password, user.PasswordHash) {
		s.audit.LogLoginFailed(ctx, user.ID, "bad_password")
		s.recordAuthEvent("login_failed")
		return nil, ErrInvalidCredentials
	}

	if !user.CanAuthenticate() {
		s.audit.LogLoginFailed(ctx, user.ID, "disabled")
		s.recordAuthEvent("login_disabled")
		return nil, ErrAccountDisabled
	}

	s.recordAuthEvent("login")
	return s.issueToken(user)
}

func (s *AuthService) issueToken(user *models.User) (*dto.TokenResponse, error) {
	token, _, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   dto.TokenTypeBearer,
		ExpiresIn:   int64(s.tokenService.AccessTokenTTL().Seconds()),
	}, nil
}

func (s *AuthService) recordAuthEvent(eventType string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": eventType})
}
