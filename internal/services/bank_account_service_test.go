package services

import (
	"context"
	"log/slog"
	"testing"

	"roundup-savings/internal/dto"
	"roundup-savings/internal/models"
	"roundup-savings/internal/repositories"
	"roundup-savings/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type BankAccountServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	ctx         context.Context
	itemRepo    *repository_mocks.MockLinkedItemRepositoryInterface
	accountRepo *repository_mocks.MockLinkedAccountRepositoryInterface
	service     BankAccountServiceInterface
	userID      uuid.UUID
}

func (s *BankAccountServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.itemRepo = repository_mocks.NewMockLinkedItemRepositoryInterface(s.ctrl)
	s.accountRepo = repository_mocks.NewMockLinkedAccountRepositoryInterface(s.ctrl)
	s.service = NewBankAccountService(s.itemRepo, s.accountRepo, slog.Default())
	s.userID = uuid.New()
}

func (s *BankAccountServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBankAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(BankAccountServiceTestSuite))
}

func (s *BankAccountServiceTestSuite) TestListAccounts() {
	accounts := []models.LinkedAccount{{ID: uuid.New(), UserID: s.userID, ExternalAccountID: "acc-1"}}
	s.accountRepo.EXPECT().ListActiveByUser(s.ctx, s.userID).Return(accounts, nil)

	result, err := s.service.ListAccounts(s.ctx, s.userID)

	s.NoError(err)
	s.Len(result, 1)
}

func (s *BankAccountServiceTestSuite) TestLinkAccount_Success() {
	item := &models.LinkedItem{ID: uuid.New(), UserID: s.userID, ItemID: "item-1"}
	s.itemRepo.EXPECT().GetByItemIDForUser(s.ctx, s.userID, "item-1").Return(item, nil)
	s.accountRepo.EXPECT().ExistsForUser(s.ctx, s.userID, "acc-9").Return(false, nil)
	s.accountRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(nil)

	account, err := s.service.LinkAccount(s.ctx, s.userID, &dto.LinkBankAccountRequest{
		ItemID:            "item-1",
		ExternalAccountID: "acc-9",
	})

	s.Require().NoError(err)
	s.Equal(item.ID, account.LinkedItemID)
	s.Equal(s.userID, account.UserID)
	s.Equal("acc-9", account.ExternalAccountID)
	s.True(account.IsActive)
}

func (s *BankAccountServiceTestSuite) TestLinkAccount_UnknownItem() {
	s.itemRepo.EXPECT().GetByItemIDForUser(s.ctx, s.userID, "item-x").Return(nil, repositories.ErrLinkedItemNotFound)

	_, err := s.service.LinkAccount(s.ctx, s.userID, &dto.LinkBankAccountRequest{
		ItemID:            "item-x",
		ExternalAccountID: "acc-9",
	})

	s.ErrorIs(err, repositories.ErrLinkedItemNotFound)
}

func (s *BankAccountServiceTestSuite) TestLinkAccount_AlreadyLinked() {
	item := &models.LinkedItem{ID: uuid.New(), UserID: s.userID, ItemID: "item-1"}
	s.itemRepo.EXPECT().GetByItemIDForUser(s.ctx, s.userID, "item-1").Return(item, nil)
	s.accountRepo.EXPECT().ExistsForUser(s.ctx, s.userID, "acc-1").Return(true, nil)

	_, err := s.service.LinkAccount(s.ctx, s.userID, &dto.LinkBankAccountRequest{
		ItemID:            "item-1",
		ExternalAccountID: "acc-1",
	})

	s.ErrorIs(err, repositories.ErrAccountAlreadyLinked)
}
