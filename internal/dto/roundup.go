package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CalculateRoundupRequest computes and persists one roundup
type CalculateRoundupRequest struct {
	Amount               decimal.Decimal  `json:"amount"`
	RoundingRule         string           `json:"rounding_rule" validate:"required,rounding_rule"`
	CustomRoundingAmount *decimal.Decimal `json:"custom_rounding_amount"`
	TransactionID        *string          `json:"transaction_id" validate:"omitempty,max=255"`
}

// BatchItemID is a caller chosen item id. Clients send either JSON strings
// or numbers; both are kept as the literal text.
type BatchItemID string

func (id *BatchItemID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = BatchItemID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("batch item id must be a string or a number: %w", err)
	}
	*id = BatchItemID(n.String())
	return nil
}

type BatchItem struct {
	ID     BatchItemID     `json:"id" validate:"required,max=255"`
	Amount decimal.Decimal `json:"amount"`
}

type BatchCalculateRequest struct {
	RoundingRule         string           `json:"rounding_rule" validate:"required,rounding_rule"`
	CustomRoundingAmount *decimal.Decimal `json:"custom_rounding_amount"`
	Transactions         []BatchItem      `json:"transactions" validate:"required,min=1,max=1000,dive"`
}

type BatchItemResult struct {
	ID             string          `json:"id"`
	OriginalAmount decimal.Decimal `json:"original_amount"`
	RoundedAmount  decimal.Decimal `json:"rounded_amount"`
	RoundupAmount  decimal.Decimal `json:"roundup_amount"`
}

type BatchCalculateResponse struct {
	ProcessedTransactions int               `json:"processed_transactions"`
	SkippedTransactions   int               `json:"skipped_transactions"`
	TotalRoundup          decimal.Decimal   `json:"total_roundup"`
	Results               []BatchItemResult `json:"results"`
}

// HistoryResponse is one page of roundup records, newest first
type HistoryResponse struct {
	Data interface{}    `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

type PaginationMeta struct {
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
	Total  int64 `json:"total"`
}

type RuleStats struct {
	RoundingRule string          `json:"rounding_rule"`
	Count        int             `json:"count"`
	TotalRoundup decimal.Decimal `json:"total_roundup"`
}

type RoundupSummaryResponse struct {
	PeriodDays        int             `json:"period_days"`
	StartDate         time.Time       `json:"start_date"`
	EndDate           time.Time       `json:"end_date"`
	TotalTransactions int             `json:"total_transactions"`
	TotalRoundup      decimal.Decimal `json:"total_roundup"`
	AverageRoundup    decimal.Decimal `json:"average_roundup"`
	RoundingRuleStats []RuleStats     `json:"rounding_rule_stats"`
}
