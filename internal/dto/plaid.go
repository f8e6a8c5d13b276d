package dto

import (
	"time"

	"roundup-savings/internal/plaid"

	"github.com/shopspring/decimal"
)

type LinkTokenResponse struct {
	LinkToken  string    `json:"link_token"`
	Expiration time.Time `json:"expiration"`
}

type ExchangeTokenRequest struct {
	PublicToken     string `json:"public_token" validate:"required"`
	InstitutionID   string `json:"institution_id" validate:"omitempty,max=255"`
	InstitutionName string `json:"institution_name" validate:"omitempty,max=255"`
}

type ExchangeTokenResponse struct {
	ItemID         string `json:"item_id"`
	AccountsLinked int    `json:"accounts_linked"`
	Success        bool   `json:"success"`
}

// PlaidAccount is one provider account under an active item
type PlaidAccount struct {
	AccountID string `json:"account_id"`
	ItemID    string `json:"item_id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Subtype   string `json:"subtype,omitempty"`
	Mask      string `json:"mask,omitempty"`
}

type BalanceResponse struct {
	AccountID string          `json:"account_id"`
	Balance   decimal.Decimal `json:"balance"`
}

type TransactionsQuery struct {
	StartDate string `query:"start_date" validate:"omitempty,ymd_date"`
	EndDate   string `query:"end_date" validate:"omitempty,ymd_date"`
}

type TransactionsResponse struct {
	StartDate    string              `json:"start_date"`
	EndDate      string              `json:"end_date"`
	Transactions []plaid.Transaction `json:"transactions"`
	Total        int                 `json:"total"`
}

// WebhookRequest is the subset of a provider webhook the service acts on
type WebhookRequest struct {
	WebhookType string        `json:"webhook_type" validate:"required"`
	WebhookCode string        `json:"webhook_code" validate:"required"`
	ItemID      string        `json:"item_id"`
	Error       *WebhookError `json:"error,omitempty"`
}

type WebhookError struct {
	ErrorType    string `json:"error_type"`
	ErrorCode    string `json:"error_code"`
	ErrorMessage string `json:"error_message"`
}
