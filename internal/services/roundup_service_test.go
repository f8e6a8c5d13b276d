package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"roundup-savings/internal/dto"
	"roundup-savings/internal/models"
	"roundup-savings/internal/repositories"
	"roundup-savings/internal/repositories/repository_mocks"
	"roundup-savings/internal/roundup"
	"roundup-savings/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type RoundupServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	ctx     context.Context
	repo    *repository_mocks.MockRoundupRepositoryInterface
	metrics *service_mocks.MockMetricsRecorderInterface
	service *RoundupService
	userID  uuid.UUID
	now     time.Time
}

func (s *RoundupServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.repo = repository_mocks.NewMockRoundupRepositoryInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()
	s.service = NewRoundupService(s.repo, s.metrics, slog.Default()).(*RoundupService)
	s.now = time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)
	s.service.now = func() time.Time { return s.now }
	s.userID = uuid.New()
}

func (s *RoundupServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRoundupServiceSuite(t *testing.T) {
	suite.Run(t, new(RoundupServiceTestSuite))
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func decPtr(v string) *decimal.Decimal {
	d := dec(v)
	return &d
}

func (s *RoundupServiceTestSuite) TestCalculate_Fixed() {
	txID := "tx-1"
	s.repo.EXPECT().Create(s.ctx, gomock.Any()).Return(nil)

	record, err := s.service.Calculate(s.ctx, s.userID, &dto.CalculateRoundupRequest{
		Amount:        dec("12.34"),
		RoundingRule:  "fixed",
		TransactionID: &txID,
	})

	s.Require().NoError(err)
	s.Equal(s.userID, record.UserID)
	s.True(dec("13.00").Equal(record.RoundedAmount))
	s.True(dec("0.66").Equal(record.RoundupAmount))
	s.False(record.CustomBoundary.Valid)
	s.Equal("tx-1", *record.TransactionID)
}

func (s *RoundupServiceTestSuite) TestCalculate_Custom() {
	s.repo.EXPECT().Create(s.ctx, gomock.Any()).Return(nil)

	record, err := s.service.Calculate(s.ctx, s.userID, &dto.CalculateRoundupRequest{
		Amount:               dec("12.34"),
		RoundingRule:         "custom",
		CustomRoundingAmount: decPtr("5"),
	})

	s.Require().NoError(err)
	s.True(dec("15.00").Equal(record.RoundedAmount))
	s.True(dec("2.66").Equal(record.RoundupAmount))
	s.True(record.CustomBoundary.Valid)
	s.True(dec("5").Equal(record.CustomBoundary.Decimal))
}

func (s *RoundupServiceTestSuite) TestCalculate_EngineErrors() {
	tests := []struct {
		name string
		req  *dto.CalculateRoundupRequest
		want error
	}{
		{"zero boundary", &dto.CalculateRoundupRequest{Amount: dec("1"), RoundingRule: "custom", CustomRoundingAmount: decPtr("0")}, roundup.ErrInvalidBoundary},
		{"negative boundary", &dto.CalculateRoundupRequest{Amount: dec("1"), RoundingRule: "custom", CustomRoundingAmount: decPtr("-5")}, roundup.ErrInvalidBoundary},
		{"missing boundary", &dto.CalculateRoundupRequest{Amount: dec("1"), RoundingRule: "custom"}, roundup.ErrInvalidBoundary},
		{"negative amount", &dto.CalculateRoundupRequest{Amount: dec("-1"), RoundingRule: "fixed"}, roundup.ErrInvalidAmount},
		{"sub-cent amount", &dto.CalculateRoundupRequest{Amount: dec("1.005"), RoundingRule: "fixed"}, roundup.ErrInvalidAmount},
		{"unknown rule", &dto.CalculateRoundupRequest{Amount: dec("1"), RoundingRule: "nearest"}, roundup.ErrInvalidRule},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.service.Calculate(s.ctx, s.userID, tt.req)
			s.ErrorIs(err, tt.want)
		})
	}
}

func (s *RoundupServiceTestSuite) TestHistory_ClampsPaging() {
	s.repo.EXPECT().ListByUser(s.ctx, s.userID, 0, DefaultHistoryLimit).Return([]models.RoundupRecord{}, int64(0), nil)
	_, _, err := s.service.History(s.ctx, s.userID, -3, 0)
	s.NoError(err)

	s.repo.EXPECT().ListByUser(s.ctx, s.userID, 10, MaxHistoryLimit).Return([]models.RoundupRecord{}, int64(12), nil)
	_, total, err := s.service.History(s.ctx, s.userID, 10, 500)
	s.NoError(err)
	s.Equal(int64(12), total)
}

func (s *RoundupServiceTestSuite) TestSummary() {
	start := s.now.AddDate(0, 0, -7)
	records := []models.RoundupRecord{
		{RoundingRule: "fixed", RoundupAmount: dec("0.66"), CreatedAt: s.now.Add(-time.Hour)},
		{RoundingRule: "fixed", RoundupAmount: dec("0.50"), CreatedAt: s.now.Add(-48 * time.Hour)},
		{RoundingRule: "custom", RoundupAmount: dec("2.66"), CreatedAt: s.now.Add(-72 * time.Hour)},
	}
	s.repo.EXPECT().ListByUserInWindow(s.ctx, s.userID, start, s.now).Return(records, nil)

	summary, err := s.service.Summary(s.ctx, s.userID, 7)

	s.Require().NoError(err)
	s.Equal(7, summary.PeriodDays)
	s.Equal(start, summary.StartDate)
	s.Equal(s.now, summary.EndDate)
	s.Equal(3, summary.TotalTransactions)
	s.True(dec("3.82").Equal(summary.TotalRoundup))
	s.True(dec("1.27").Equal(summary.AverageRoundup))
	s.Require().Len(summary.RoundingRuleStats, 2)
	s.Equal("fixed", summary.RoundingRuleStats[0].RoundingRule)
	s.Equal(2, summary.RoundingRuleStats[0].Count)
	s.Equal("custom", summary.RoundingRuleStats[1].RoundingRule)
	s.True(dec("2.66").Equal(summary.RoundingRuleStats[1].TotalRoundup))
}

func (s *RoundupServiceTestSuite) TestSummary_EmptyAndDefaultDays() {
	s.repo.EXPECT().ListByUserInWindow(s.ctx, s.userID, s.now.AddDate(0, 0, -30), s.now).Return(nil, nil)

	summary, err := s.service.Summary(s.ctx, s.userID, 0)

	s.Require().NoError(err)
	s.Equal(DefaultSummaryDays, summary.PeriodDays)
	s.Equal(0, summary.TotalTransactions)
	s.True(summary.TotalRoundup.IsZero())
	s.True(summary.AverageRoundup.IsZero())
	s.Len(summary.RoundingRuleStats, 2)
}

func (s *RoundupServiceTestSuite) TestBatchCalculate() {
	s.repo.EXPECT().CreateBatch(s.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, records []*models.RoundupRecord) error {
		s.Len(records, 2)
		s.Equal("1", *records[0].TransactionID)
		s.Equal("3", *records[1].TransactionID)
		return nil
	})

	resp, err := s.service.BatchCalculate(s.ctx, s.userID, &dto.BatchCalculateRequest{
		RoundingRule: "fixed",
		Transactions: []dto.BatchItem{
			{ID: "1", Amount: dec("12.34")},
			{ID: "2", Amount: dec("-5")},
			{ID: "3", Amount: dec("0.50")},
		},
	})

	s.Require().NoError(err)
	s.Equal(2, resp.ProcessedTransactions)
	s.Equal(1, resp.SkippedTransactions)
	s.True(dec("1.16").Equal(resp.TotalRoundup))
	s.Require().Len(resp.Results, 2)
	s.True(dec("0.66").Equal(resp.Results[0].RoundupAmount))
	s.True(dec("0.50").Equal(resp.Results[1].RoundupAmount))
}

func (s *RoundupServiceTestSuite) TestBatchCalculate_AllSkippedStoresNothing() {
	resp, err := s.service.BatchCalculate(s.ctx, s.userID, &dto.BatchCalculateRequest{
		RoundingRule: "fixed",
		Transactions: []dto.BatchItem{{ID: "1", Amount: dec("0")}},
	})

	s.Require().NoError(err)
	s.Equal(0, resp.ProcessedTransactions)
	s.Equal(1, resp.SkippedTransactions)
	s.Empty(resp.Results)
}

func (s *RoundupServiceTestSuite) TestBatchCalculate_InvalidBoundaryFailsWholeBatch() {
	_, err := s.service.BatchCalculate(s.ctx, s.userID, &dto.BatchCalculateRequest{
		RoundingRule:         "custom",
		CustomRoundingAmount: decPtr("0"),
		Transactions:         []dto.BatchItem{{ID: "1", Amount: dec("1.00")}},
	})

	s.ErrorIs(err, roundup.ErrInvalidBoundary)
}

func (s *RoundupServiceTestSuite) TestBatchCalculate_StorageFailure() {
	s.repo.EXPECT().CreateBatch(s.ctx, gomock.Any()).Return(errors.New("disk full"))

	_, err := s.service.BatchCalculate(s.ctx, s.userID, &dto.BatchCalculateRequest{
		RoundingRule: "fixed",
		Transactions: []dto.BatchItem{{ID: "1", Amount: dec("1.25")}},
	})

	s.Error(err)
}

func (s *RoundupServiceTestSuite) TestDelete() {
	recordID := uuid.New()
	s.repo.EXPECT().DeleteForUser(s.ctx, s.userID, recordID).Return(repositories.ErrRoundupNotFound)

	err := s.service.Delete(s.ctx, s.userID, recordID)

	s.ErrorIs(err, repositories.ErrRoundupNotFound)
}
