package repositories

import (
	"context"
	"testing"
	"time"

	"roundup-savings/internal/database"
	"roundup-savings/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestRoundupRepository(t *testing.T) {
	suite.Run(t, new(RoundupRepositorySuite))
}

type RoundupRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo RoundupRepositoryInterface
	user *models.User
	ctx  context.Context
}

func (s *RoundupRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewRoundupRepository(s.db.DB)
	s.user = database.CreateTestUser(s.T(), s.db, "roundups@example.com")
	s.ctx = context.Background()
}

func (s *RoundupRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *RoundupRepositorySuite) newRecord(original, rounded string, createdAt time.Time) *models.RoundupRecord {
	o := decimal.RequireFromString(original)
	r := decimal.RequireFromString(rounded)
	return &models.RoundupRecord{
		UserID:         s.user.ID,
		OriginalAmount: o,
		RoundingRule:   "fixed",
		RoundedAmount:  r,
		RoundupAmount:  r.Sub(o),
		CreatedAt:      createdAt,
	}
}

func (s *RoundupRepositorySuite) TestCreateAndGet() {
	record := s.newRecord("4.35", "5.00", time.Time{})
	s.Require().NoError(s.repo.Create(s.ctx, record))
	s.NotEqual(uuid.Nil, record.ID)
	s.False(record.CreatedAt.IsZero())

	found, err := s.repo.GetByIDForUser(s.ctx, s.user.ID, record.ID)
	s.Require().NoError(err)
	s.True(found.OriginalAmount.Equal(decimal.RequireFromString("4.35")))
	s.Equal("fixed", found.RoundingRule)
	s.False(found.CustomBoundary.Valid)
	s.True(found.RoundedAmount.Equal(decimal.RequireFromString("5.00")))
	s.True(found.RoundupAmount.Equal(decimal.RequireFromString("0.65")))

	_, err = s.repo.GetByIDForUser(s.ctx, uuid.New(), record.ID)
	s.Equal(ErrRoundupNotFound, err)

	txID := "tx-custom"
	custom := &models.RoundupRecord{
		UserID:         s.user.ID,
		TransactionID:  &txID,
		OriginalAmount: decimal.RequireFromString("12.34"),
		RoundingRule:   "custom",
		CustomBoundary: decimal.NewNullDecimal(decimal.RequireFromString("0.25")),
		RoundedAmount:  decimal.RequireFromString("12.50"),
		RoundupAmount:  decimal.RequireFromString("0.16"),
	}
	s.Require().NoError(s.repo.Create(s.ctx, custom))

	found, err = s.repo.GetByIDForUser(s.ctx, s.user.ID, custom.ID)
	s.Require().NoError(err)
	s.Require().NotNil(found.TransactionID)
	s.Equal(txID, *found.TransactionID)
	s.True(found.OriginalAmount.Equal(decimal.RequireFromString("12.34")))
	s.Equal("custom", found.RoundingRule)
	s.Require().True(found.CustomBoundary.Valid)
	s.True(found.CustomBoundary.Decimal.Equal(decimal.RequireFromString("0.25")))
	s.True(found.RoundedAmount.Equal(decimal.RequireFromString("12.50")))
	s.True(found.RoundupAmount.Equal(decimal.RequireFromString("0.16")))
	s.Equal("0.16", found.RoundupAmount.StringFixed(2))
}

func (s *RoundupRepositorySuite) TestCreate_RejectsInvalidRecord() {
	record := s.newRecord("4.35", "5.00", time.Time{})
	record.RoundupAmount = decimal.RequireFromString("0.60")
	s.ErrorIs(s.repo.Create(s.ctx, record), models.ErrRoundupMismatch)
}

func (s *RoundupRepositorySuite) TestCreateBatch_AllOrNothing() {
	bad := s.newRecord("2.00", "3.00", time.Time{})
	bad.RoundingRule = "bogus"

	err := s.repo.CreateBatch(s.ctx, []*models.RoundupRecord{
		s.newRecord("1.10", "2.00", time.Time{}),
		bad,
	})
	s.Error(err)

	_, total, err := s.repo.ListByUser(s.ctx, s.user.ID, 0, 10)
	s.NoError(err)
	s.Zero(total)

	s.NoError(s.repo.CreateBatch(s.ctx, nil))
}

func (s *RoundupRepositorySuite) TestListByUser_NewestFirstWithTotal() {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.Require().NoError(s.repo.CreateBatch(s.ctx, []*models.RoundupRecord{
		s.newRecord("1.10", "2.00", base),
		s.newRecord("2.20", "3.00", base.Add(time.Hour)),
		s.newRecord("3.30", "4.00", base.Add(2*time.Hour)),
	}))

	page, total, err := s.repo.ListByUser(s.ctx, s.user.ID, 0, 2)
	s.Require().NoError(err)
	s.Equal(int64(3), total)
	s.Require().Len(page, 2)
	s.True(page[0].OriginalAmount.Equal(decimal.RequireFromString("3.30")))
	s.True(page[1].OriginalAmount.Equal(decimal.RequireFromString("2.20")))

	page, total, err = s.repo.ListByUser(s.ctx, s.user.ID, 2, 2)
	s.Require().NoError(err)
	s.Equal(int64(3), total)
	s.Require().Len(page, 1)
	s.True(page[0].OriginalAmount.Equal(decimal.RequireFromString("1.10")))

	page, total, err = s.repo.ListByUser(s.ctx, uuid.New(), 0, 2)
	s.NoError(err)
	s.Zero(total)
	s.Empty(page)
}

func (s *RoundupRepositorySuite) TestListByUserInWindow() {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.Require().NoError(s.repo.CreateBatch(s.ctx, []*models.RoundupRecord{
		s.newRecord("1.10", "2.00", base.Add(-48*time.Hour)),
		s.newRecord("2.20", "3.00", base),
		s.newRecord("3.30", "4.00", base.Add(24*time.Hour)),
	}))

	records, err := s.repo.ListByUserInWindow(s.ctx, s.user.ID, base.Add(-time.Hour), base.Add(24*time.Hour))
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.True(records[0].OriginalAmount.Equal(decimal.RequireFromString("2.20")))
}

func (s *RoundupRepositorySuite) TestDeleteForUser() {
	record := s.newRecord("4.35", "5.00", time.Time{})
	s.Require().NoError(s.repo.Create(s.ctx, record))

	s.Equal(ErrRoundupNotFound, s.repo.DeleteForUser(s.ctx, uuid.New(), record.ID))
	s.NoError(s.repo.DeleteForUser(s.ctx, s.user.ID, record.ID))
	s.Equal(ErrRoundupNotFound, s.repo.DeleteForUser(s.ctx, s.user.ID, record.ID))
}
