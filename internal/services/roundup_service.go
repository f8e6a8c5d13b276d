package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"roundup-savings/internal/dto"
	"roundup-savings/internal/models"
	"roundup-savings/internal/repositories"
	"roundup-savings/internal/roundup"

	"github.com/google/uuid"
)

const (
	DefaultSummaryDays = 30
	MaxSummaryDays     = 365

	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 100
)

// RoundupService persists roundup calculations and reports on them
type RoundupService struct {
	roundupRepo repositories.RoundupRepositoryInterface
	metrics     MetricsRecorderInterface
	audit       *AuditLogger
	now         func() time.Time
}

func NewRoundupService(
	roundupRepo repositories.RoundupRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) RoundupServiceInterface {
	return &RoundupService{
		roundupRepo: roundupRepo,
		metrics:     metrics,
		audit:       NewAuditLogger(logger),
		now:         time.Now,
	}
}

// Calculate computes one roundup and stores it. Engine errors are returned
// unwrapped so handlers can map them.
func (s *RoundupService) Calculate(ctx context.Context, userID uuid.UUID, req *dto.CalculateRoundupRequest) (*models.RoundupRecord, error) {
	rule := roundup.Rule(req.RoundingRule)

	result, err := roundup.Compute(req.Amount, rule, req.CustomRoundingAmount)
	if err != nil {
		return nil, err
	}

	record := models.NewRoundupRecord(userID, req.TransactionID, rule, req.CustomRoundingAmount, result)
	if err := s.roundupRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter(MetricRoundupCalculated, map[string]string{"rounding_rule": string(rule), "source": "single"})
	s.metrics.RecordGauge(MetricRoundupAmount, result.RoundupAmount.InexactFloat64(), nil)

	return record, nil
}

func (s *RoundupService) History(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.RoundupRecord, int64, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}

	return s.roundupRepo.ListByUser(ctx, userID, offset, limit)
}

// Summary aggregates the user's roundups over the last days days
func (s *RoundupService) Summary(ctx context.Context, userID uuid.UUID, days int) (*dto.RoundupSummaryResponse, error) {
	if days <= 0 {
		days = DefaultSummaryDays
	}
	if days > MaxSummaryDays {
		days = MaxSummaryDays
	}

	end := s.now().UTC()
	start := end.AddDate(0, 0, -days)

	records, err := s.roundupRepo.ListByUserInWindow(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	input := make([]roundup.Record, len(records))
	for i := range records {
		input[i] = records[i].SummaryRecord()
	}

	summary := roundup.Summarize(input, roundup.Window{Start: start, End: end})

	stats := make([]dto.RuleStats, len(summary.ByRule))
	for i, rs := range summary.ByRule {
		stats[i] = dto.RuleStats{
			RoundingRule: string(rs.Rule),
			Count:        rs.Count,
			TotalRoundup: rs.TotalRoundup,
		}
	}

	return &dto.RoundupSummaryResponse{
		PeriodDays:        days,
		StartDate:         start,
		EndDate:           end,
		TotalTransactions: summary.Count,
		TotalRoundup:      summary.TotalRoundup,
		AverageRoundup:    summary.AverageRoundup,
		RoundingRuleStats: stats,
	}, nil
}

// BatchCalculate applies one rule to many transactions and stores every
// processed item atomically.
func (s *RoundupService) BatchCalculate(ctx context.Context, userID uuid.UUID, req *dto.BatchCalculateRequest) (*dto.BatchCalculateResponse, error) {
	start := s.now()
	defer func() {
		s.metrics.RecordProcessingTime(MetricRoundupBatch, s.now().Sub(start))
	}()

	rule := roundup.Rule(req.RoundingRule)

	items := make([]roundup.Item, len(req.Transactions))
	for i, tx := range req.Transactions {
		items[i] = roundup.Item{ID: string(tx.ID), Amount: tx.Amount}
	}

	batch, err := roundup.BatchCompute(items, rule, req.CustomRoundingAmount)
	if err != nil {
		s.metrics.IncrementCounter(MetricRoundupBatch, map[string]string{"status": "rejected"})
		return nil, err
	}

	records := make([]*models.RoundupRecord, len(batch.Results))
	results := make([]dto.BatchItemResult, len(batch.Results))
	for i, res := range batch.Results {
		id := res.ID
		records[i] = models.NewRoundupRecord(userID, &id, rule, req.CustomRoundingAmount, res.Result)
		results[i] = dto.BatchItemResult{
			ID:             res.ID,
			OriginalAmount: res.OriginalAmount,
			RoundedAmount:  res.RoundedAmount,
			RoundupAmount:  res.RoundupAmount,
		}
	}

	if len(records) > 0 {
		if err := s.roundupRepo.CreateBatch(ctx, records); err != nil {
			s.metrics.IncrementCounter(MetricRoundupBatch, map[string]string{"status": "failed"})
			return nil, fmt.Errorf("failed to store batch: %w", err)
		}
	}

	s.metrics.IncrementCounter(MetricRoundupBatch, map[string]string{"status": "success"})
	s.audit.LogBatchStored(ctx, userID, batch.Processed, batch.Skipped, batch.TotalRoundup.StringFixed(roundup.CurrencyPlaces))

	return &dto.BatchCalculateResponse{
		ProcessedTransactions: batch.Processed,
		SkippedTransactions:   batch.Skipped,
		TotalRoundup:          batch.TotalRoundup,
		Results:               results,
	}, nil
}

func (s *RoundupService) Delete(ctx context.Context, userID, recordID uuid.UUID) error {
	return s.roundupRepo.DeleteForUser(ctx, userID, recordID)
}
