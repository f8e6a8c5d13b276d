// Package plaid adapts the external bank-data API to the small surface the
// services need. Callers never see SDK types.
package plaid

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrUpstreamUnavailable = errors.New("bank data provider unavailable")
	ErrAccountNotFound     = errors.New("account not found at provider")
)

// LinkToken initializes the client-side Link flow.
type LinkToken struct {
	Token      string
	Expiration time.Time
}

// Exchange is the result of trading a public token for item credentials.
type Exchange struct {
	AccessToken string
	ItemID      string
}

type Account struct {
	ExternalAccountID string
	Name              string
	Type              string
	Subtype           string
	Mask              string
}

// Transaction is a posted or pending bank transaction. Positive amounts are
// money leaving the account.
type Transaction struct {
	ID           string          `json:"transaction_id"`
	AccountID    string          `json:"account_id"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date"`
	Name         string          `json:"name"`
	MerchantName string          `json:"merchant_name,omitempty"`
	Pending      bool            `json:"pending"`
	CurrencyCode string          `json:"iso_currency_code,omitempty"`
}

// Gateway is the account-data API consumed by the service layer.
type Gateway interface {
	CreateLinkToken(ctx context.Context, userID string) (*LinkToken, error)
	ExchangePublicToken(ctx context.Context, publicToken string) (*Exchange, error)
	ListAccounts(ctx context.Context, accessToken string) ([]Account, error)
	GetBalance(ctx context.Context, accessToken, externalAccountID string) (decimal.Decimal, error)
	ListTransactions(ctx context.Context, accessToken string, start, end time.Time) ([]Transaction, error)
}
