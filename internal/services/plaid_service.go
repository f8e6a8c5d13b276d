package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"roundup-savings/internal/cache"
	"roundup-savings/internal/dto"
	"roundup-savings/internal/models"
	"roundup-savings/internal/plaid"
	"roundup-savings/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	plaidBreakerService = "plaid"
	transactionsLayout  = "2006-01-02"

	webhookTypeItem          = "ITEM"
	webhookCodeError         = "ERROR"
	webhookCodeRevoked       = "USER_PERMISSION_REVOKED"
	webhookCodePendingExpiry = "PENDING_EXPIRATION"
)

var (
	ErrNoActiveConnection = errors.New("no active bank connection")
	ErrInvalidDateRange   = errors.New("start date must not be after end date")
)

// PlaidService composes the bank-data gateway with the linked item registry.
// Every gateway call passes through the circuit breaker.
type PlaidService struct {
	gateway     plaid.Gateway
	itemRepo    repositories.LinkedItemRepositoryInterface
	accountRepo repositories.LinkedAccountRepositoryInterface
	cache       cache.BalanceCache
	balanceTTL  time.Duration
	breaker     CircuitBreakerInterface
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
	audit       *AuditLogger
}

func NewPlaidService(
	gateway plaid.Gateway,
	itemRepo repositories.LinkedItemRepositoryInterface,
	accountRepo repositories.LinkedAccountRepositoryInterface,
	balanceCache cache.BalanceCache,
	balanceTTL time.Duration,
	breaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) PlaidServiceInterface {
	return &PlaidService{
		gateway:     gateway,
		itemRepo:    itemRepo,
		accountRepo: accountRepo,
		cache:       balanceCache,
		balanceTTL:  balanceTTL,
		breaker:     breaker,
		metrics:     metrics,
		logger:      logger,
		audit:       NewAuditLogger(logger),
	}
}

func (s *PlaidService) CreateLinkToken(ctx context.Context, userID uuid.UUID) (*dto.LinkTokenResponse, error) {
	var token *plaid.LinkToken
	err := s.call(ctx, "create_link_token", func() error {
		var err error
		token, err = s.gateway.CreateLinkToken(ctx, userID.String())
		return err
	})
	if err != nil {
		return nil, err
	}

	return &dto.LinkTokenResponse{LinkToken: token.Token, Expiration: token.Expiration}, nil
}

// ExchangePublicToken trades a public token for an item, discovers its
// accounts and stores both in one transaction.
func (s *PlaidService) ExchangePublicToken(ctx context.Context, userID uuid.UUID, req *dto.ExchangeTokenRequest) (*dto.ExchangeTokenResponse, error) {
	var exchange *plaid.Exchange
	err := s.call(ctx, "exchange_public_token", func() error {
		var err error
		exchange, err = s.gateway.ExchangePublicToken(ctx, req.PublicToken)
		return err
	})
	if err != nil {
		return nil, err
	}

	var discovered []plaid.Account
	err = s.call(ctx, "list_accounts", func() error {
		var err error
		discovered, err = s.gateway.ListAccounts(ctx, exchange.AccessToken)
		return err
	})
	if err != nil {
		return nil, err
	}

	item := &models.LinkedItem{
		UserID:          userID,
		AccessToken:     exchange.AccessToken,
		ItemID:          exchange.ItemID,
		InstitutionID:   req.InstitutionID,
		InstitutionName: req.InstitutionName,
		Status:          models.LinkedItemStatusActive,
	}

	accounts := make([]models.LinkedAccount, 0, len(discovered))
	for _, acc := range discovered {
		accounts = append(accounts, models.LinkedAccount{
			ExternalAccountID: acc.ExternalAccountID,
			Name:              acc.Name,
			Type:              acc.Type,
			Subtype:           acc.Subtype,
			Mask:              acc.Mask,
		})
	}

	created, err := s.itemRepo.CreateWithAccounts(ctx, item, accounts)
	if err != nil {
		return nil, err
	}

	s.audit.LogItemLinked(ctx, userID, item.ItemID, len(created))

	return &dto.ExchangeTokenResponse{
		ItemID:         item.ItemID,
		AccountsLinked: len(created),
		Success:        true,
	}, nil
}

// ListAccounts returns the provider's accounts across all active items
func (s *PlaidService) ListAccounts(ctx context.Context, userID uuid.UUID) ([]dto.PlaidAccount, error) {
	items, err := s.activeItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.PlaidAccount, 0)
	for _, item := range items {
		var accounts []plaid.Account
		err := s.call(ctx, "list_accounts", func() error {
			var err error
			accounts, err = s.gateway.ListAccounts(ctx, item.AccessToken)
			return err
		})
		if err != nil {
			return nil, err
		}

		for _, acc := range accounts {
			result = append(result, dto.PlaidAccount{
				AccountID: acc.ExternalAccountID,
				ItemID:    item.ItemID,
				Name:      acc.Name,
				Type:      acc.Type,
				Subtype:   acc.Subtype,
				Mask:      acc.Mask,
			})
		}
	}

	return result, nil
}

// GetBalance returns the current balance of an owned, active account. Fresh
// balances are served from the cache.
func (s *PlaidService) GetBalance(ctx context.Context, userID uuid.UUID, externalAccountID string) (*dto.BalanceResponse, error) {
	account, err := s.accountRepo.GetActiveByExternalID(ctx, userID, externalAccountID)
	if err != nil {
		return nil, err
	}

	item, err := s.itemRepo.GetByID(ctx, account.LinkedItemID)
	if err != nil {
		return nil, err
	}
	if !item.IsActive() {
		return nil, ErrNoActiveConnection
	}

	key := cache.BalanceKey(userID.String(), externalAccountID)
	if balance, ok := s.cachedBalance(ctx, key); ok {
		return &dto.BalanceResponse{AccountID: externalAccountID, Balance: balance}, nil
	}

	var balance decimal.Decimal
	err = s.call(ctx, "get_balance", func() error {
		var err error
		balance, err = s.gateway.GetBalance(ctx, item.AccessToken, externalAccountID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetBalance(ctx, key, balance, s.balanceTTL); err != nil {
		s.logger.WarnContext(ctx, "failed to cache balance", "error", err)
	}

	return &dto.BalanceResponse{AccountID: externalAccountID, Balance: balance}, nil
}

// ListTransactions merges provider transactions from every active item,
// newest first.
func (s *PlaidService) ListTransactions(ctx context.Context, userID uuid.UUID, start, end time.Time) (*dto.TransactionsResponse, error) {
	if start.After(end) {
		return nil, ErrInvalidDateRange
	}

	items, err := s.activeItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	transactions := make([]plaid.Transaction, 0)
	for _, item := range items {
		var page []plaid.Transaction
		err := s.call(ctx, "list_transactions", func() error {
			var err error
			page, err = s.gateway.ListTransactions(ctx, item.AccessToken, start, end)
			return err
		})
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, page...)
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date > transactions[j].Date
	})

	return &dto.TransactionsResponse{
		StartDate:    start.Format(transactionsLayout),
		EndDate:      end.Format(transactionsLayout),
		Transactions: transactions,
		Total:        len(transactions),
	}, nil
}

// HandleWebhook applies item status changes reported by the provider. Events
// it does not act on, and unknown items, are logged and ignored.
func (s *PlaidService) HandleWebhook(ctx context.Context, req *dto.WebhookRequest) error {
	s.metrics.IncrementCounter(MetricWebhookReceived, map[string]string{
		"webhook_type": req.WebhookType,
		"webhook_code": req.WebhookCode,
	})

	logger := s.logger.With(
		"webhook_type", req.WebhookType,
		"webhook_code", req.WebhookCode,
		"item_id", req.ItemID)
	if req.Error != nil {
		logger = logger.With("error_code", req.Error.ErrorCode)
	}
	logger.InfoContext(ctx, "webhook received")

	status := webhookItemStatus(req.WebhookType, req.WebhookCode)
	if status == "" || req.ItemID == "" {
		return nil
	}

	if err := s.itemRepo.UpdateStatus(ctx, req.ItemID, status); err != nil {
		if errors.Is(err, repositories.ErrLinkedItemNotFound) {
			logger.WarnContext(ctx, "webhook for unknown item ignored")
			return nil
		}
		return err
	}

	s.audit.LogItemStatusChange(ctx, req.ItemID, status, req.WebhookCode)
	return nil
}

// UnlinkItem removes one of the user's items and its accounts
func (s *PlaidService) UnlinkItem(ctx context.Context, userID uuid.UUID, itemID string) error {
	if err := s.itemRepo.DeleteWithAccounts(ctx, userID, itemID); err != nil {
		return err
	}
	s.audit.LogItemUnlinked(ctx, userID, itemID)
	return nil
}

func webhookItemStatus(webhookType, webhookCode string) string {
	if webhookType != webhookTypeItem {
		return ""
	}
	switch webhookCode {
	case webhookCodeError:
		return models.LinkedItemStatusError
	case webhookCodeRevoked, webhookCodePendingExpiry:
		return models.LinkedItemStatusDisconnected
	default:
		return ""
	}
}

func (s *PlaidService) activeItems(ctx context.Context, userID uuid.UUID) ([]models.LinkedItem, error) {
	items, err := s.itemRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoActiveConnection
	}
	return items, nil
}

func (s *PlaidService) cachedBalance(ctx context.Context, key string) (decimal.Decimal, bool) {
	balance, ok, err := s.cache.GetBalance(ctx, key)
	if err != nil {
		s.logger.WarnContext(ctx, "balance cache lookup failed", "error", err)
		ok = false
	}

	result := "miss"
	if ok {
		result = "hit"
	}
	s.metrics.IncrementCounter(MetricBalanceCache, map[string]string{"result": result})

	return balance, ok
}

// call runs one gateway operation under the circuit breaker. Only upstream
// failures count against the breaker.
func (s *PlaidService) call(ctx context.Context, operation string, fn func() error) error {
	if s.breaker.IsOpen() {
		s.metrics.IncrementCounter(MetricPlaidRequest, map[string]string{"operation": operation, "status": "rejected"})
		return fmt.Errorf("%s: %w: %w", operation, ErrCircuitBreakerOpen, plaid.ErrUpstreamUnavailable)
	}

	start := time.Now()
	err := fn()
	s.metrics.RecordProcessingTime(MetricPlaidRequest, time.Since(start))

	if err != nil && errors.Is(err, plaid.ErrUpstreamUnavailable) {
		s.metrics.IncrementCounter(MetricPlaidRequest, map[string]string{"operation": operation, "status": "failed"})
		wasOpen := s.breaker.GetState() == StateOpen
		s.breaker.RecordFailure()
		if !wasOpen && s.breaker.GetState() == StateOpen {
			s.audit.LogCircuitBreakerStateChange(ctx, plaidBreakerService, operation, StateClosed.String(), StateOpen.String())
			s.metrics.IncrementCounter(MetricCircuitBreakerOpen, map[string]string{"service": plaidBreakerService})
		}
		return err
	}

	prev := s.breaker.GetState()
	s.breaker.RecordSuccess()
	if prev != StateClosed && s.breaker.GetState() == StateClosed {
		s.audit.LogCircuitBreakerStateChange(ctx, plaidBreakerService, operation, prev.String(), StateClosed.String())
		s.metrics.IncrementCounter(MetricCircuitBreakerClosed, map[string]string{"service": plaidBreakerService})
	}
	s.metrics.IncrementCounter(MetricPlaidRequest, map[string]string{"operation": operation, "status": "success"})
	return err
}
