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
	ErrInvalidCurrentPassword = errors.New("current password is incorrect")
	ErrSamePassword           = errors.New("new password must differ from the current password")
)

// UserService manages the authenticated user's own account
type UserService struct {
	userRepo        repositories.UserRepositoryInterface
	passwordService PasswordServiceInterface
	tokenService    TokenServiceInterface
	audit           *AuditLogger
}

func NewUserService(
	userRepo repositories.UserRepositoryInterface,
	passwordService PasswordServiceInterface,
	tokenService TokenServiceInterface,
	logger *slog.Logger,
) UserServiceInterface {
	return &UserService{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		audit:           NewAuditLogger(logger),
	}
}

// ResolveActiveUser maps a token subject to an active user. Missing and
// disabled users both report ErrUserNotFound.
func (s *UserService) ResolveActiveUser(ctx context.Context, username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, repositories.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile applies a partial update. When the username changes the
// caller's token no longer resolves, so a fresh one is returned.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateUserRequest) (*models.User, string, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	usernameChanged := false

	if req.Email != nil {
		email := models.NormalizeEmail(*req.Email)
		if email != user.Email {
			taken, err := s.userRepo.EmailTaken(ctx, email, userID)
			if err != nil {
				return nil, "", fmt.Errorf("failed to check email: %w", err)
			}
			if taken {
				return nil, "", repositories.ErrEmailAlreadyExists
			}
			user.Email = email
		}
	}

	if req.Username != nil && *req.Username != user.Username {
		taken, err := s.userRepo.UsernameTaken(ctx, *req.Username, userID)
		if err != nil {
			return nil, "", fmt.Errorf("failed to check username: %w", err)
		}
		if taken {
			return nil, "", repositories.ErrUsernameAlreadyExists
		}
		user.Username = *req.Username
		usernameChanged = true
	}

	if req.FirstName != nil {
		user.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		user.LastName = strings.TrimSpace(*req.LastName)
	}

	if req.Password != nil {
		hash, err := s.passwordService.HashPassword(*req.Password)
		if err != nil {
			return nil, "", err
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, "", err
	}

	if !usernameChanged {
		return user, "", nil
	}

	token, _, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	s.audit.LogUsernameChanged(ctx, user.ID, user.Username)

	return user, token, nil
}

func (s *UserService) ChangePassword(ctx context.Context, userID uuid.UUID, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !s.passwordService.ComparePassword(req.CurrentPassword, user.PasswordHash) {
		return ErrInvalidCurrentPassword
	}

	if req.CurrentPassword == req.NewPassword {
		return ErrSamePassword
	}

	hash, err := s.passwordService.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePasswordHash(ctx, userID, hash); err != nil {
		return err
	}

	s.audit.LogPasswordChanged(ctx, userID)
	return nil
}

// DeleteAccount removes the user together with every row it owns
func (s *UserService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := s.userRepo.DeleteWithDependents(ctx, userID); err != nil {
		return err
	}
	s.audit.LogUserDeleted(ctx, userID)
	return nil
}
