// Package cache keeps short-lived account balances so repeated balance reads
// do not each reach the bank-data provider.
package cache

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// BalanceCache stores balances under caller-chosen keys. A miss is reported
// with ok == false and a nil error.
type BalanceCache interface {
	GetBalance(ctx context.Context, key string) (balance decimal.Decimal, ok bool, err error)
	SetBalance(ctx context.Context, key string, balance decimal.Decimal, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// BalanceKey scopes a balance to the owning user and external account.
func BalanceKey(userID, externalAccountID string) string {
	return "balance:" + userID + ":" + externalAccountID
}
