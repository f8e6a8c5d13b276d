package services

import (
	"context"
	"fmt"
	"log/slog"

	"roundup-savings/internal/dto"
	"roundup-savings/internal/models"
	"roundup-savings/internal/repositories"

	"github.com/google/uuid"
)

// BankAccountService manages accounts linked by hand under an existing item
type BankAccountService struct {
	itemRepo    repositories.LinkedItemRepositoryInterface
	accountRepo repositories.LinkedAccountRepositoryInterface
	audit       *AuditLogger
}

func NewBankAccountService(
	itemRepo repositories.LinkedItemRepositoryInterface,
	accountRepo repositories.LinkedAccountRepositoryInterface,
	logger *slog.Logger,
) BankAccountServiceInterface {
	return &BankAccountService{
		itemRepo:    itemRepo,
		accountRepo: accountRepo,
		audit:       NewAuditLogger(logger),
	}
}

func (s *BankAccountService) ListAccounts(ctx context.Context, userID uuid.UUID) ([]models.LinkedAccount, error) {
	return s.accountRepo.ListActiveByUser(ctx, userID)
}

// LinkAccount attaches an external account to one of the user's items. The
// item must belong to the caller and the account must not already be linked.
func (s *BankAccountService) LinkAccount(ctx context.Context, userID uuid.UUID, req *dto.LinkBankAccountRequest) (*models.LinkedAccount, error) {
	item, err := s.itemRepo.GetByItemIDForUser(ctx, userID, req.ItemID)
	if err != nil {
		return nil, err
	}

	exists, err := s.accountRepo.ExistsForUser(ctx, userID, req.ExternalAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to check linked account: %w", err)
	}
	if exists {
		return nil, repositories.ErrAccountAlreadyLinked
	}

	account := &models.LinkedAccount{
		UserID:            userID,
		LinkedItemID:      item.ID,
		ExternalAccountID: req.ExternalAccountID,
		Name:              req.ExternalAccountID,
		IsActive:          true,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	s.audit.LogBankAccountLinked(ctx, userID, req.ItemID, account.ID)

	return account, nil
}
