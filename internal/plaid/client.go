package plaid

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"roundup-savings/internal/config"

	plaidsdk "github.com/plaid/plaid-go/v14/plaid"
	"github.com/shopspring/decimal"
)

const (
	dateLayout           = "2006-01-02"
	transactionsPageSize = 500
)

// Client implements Gateway over the Plaid SDK.
type Client struct {
	api        *plaidsdk.APIClient
	clientName string
	webhookURL string
	logger     *slog.Logger
}

// NewClient builds a gateway for cfg. An unknown environment name is treated
// as a base URL, which lets tests point the client at a local server.
func NewClient(cfg *config.PlaidConfig, logger *slog.Logger) *Client {
	sdkCfg := plaidsdk.NewConfiguration()
	sdkCfg.AddDefaultHeader("PLAID-CLIENT-ID", cfg.ClientID)
	sdkCfg.AddDefaultHeader("PLAID-SECRET", cfg.Secret)
	sdkCfg.UseEnvironment(environment(cfg.Environment))
	sdkCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &Client{
		api:        plaidsdk.NewAPIClient(sdkCfg),
		clientName: cfg.ClientName,
		webhookURL: cfg.WebhookURL,
		logger:     logger,
	}
}

func environment(name string) plaidsdk.Environment {
	switch name {
	case "sandbox":
		return plaidsdk.Sandbox
	case "development":
		return plaidsdk.Development
	case "production":
		return plaidsdk.Production
	default:
		return plaidsdk.Environment(name)
	}
}

func (c *Client) CreateLinkToken(ctx context.Context, userID string) (*LinkToken, error) {
	user := plaidsdk.LinkTokenCreateRequestUser{ClientUserId: userID}
	request := plaidsdk.NewLinkTokenCreateRequest(
		c.clientName,
		"en",
		[]plaidsdk.CountryCode{plaidsdk.COUNTRYCODE_US},
		user,
	)
	request.SetProducts([]plaidsdk.Products{plaidsdk.PRODUCTS_TRANSACTIONS})
	if c.webhookURL != "" {
		request.SetWebhook(c.webhookURL)
	}

	response, httpResp, err := c.api.PlaidApi.LinkTokenCreate(ctx).LinkTokenCreateRequest(*request).Execute()
	if err != nil {
		return nil, c.upstreamError("link token create", httpResp, err)
	}

	return &LinkToken{
		Token:      response.GetLinkToken(),
		Expiration: response.GetExpiration(),
	}, nil
}

func (c *Client) ExchangePublicToken(ctx context.Context, publicToken string) (*Exchange, error) {
	request := plaidsdk.NewItemPublicTokenExchangeRequest(publicToken)
	response, httpResp, err := c.api.PlaidApi.ItemPublicTokenExchange(ctx).ItemPublicTokenExchangeRequest(*request).Execute()
	if err != nil {
		return nil, c.upstreamError("public token exchange", httpResp, err)
	}

	return &Exchange{
		AccessToken: response.GetAccessToken(),
		ItemID:      response.GetItemId(),
	}, nil
}

func (c *Client) ListAccounts(ctx context.Context, accessToken string) ([]Account, error) {
	request := plaidsdk.NewAccountsGetRequest(accessToken)
	response, httpResp, err := c.api.PlaidApi.AccountsGet(ctx).AccountsGetRequest(*request).Execute()
	if err != nil {
		return nil, c.upstreamError("accounts get", httpResp, err)
	}

	accounts := make([]Account, 0, len(response.GetAccounts()))
	for _, acc := range response.GetAccounts() {
		accounts = append(accounts, Account{
			ExternalAccountID: acc.GetAccountId(),
			Name:              acc.GetName(),
			Type:              string(acc.GetType()),
			Subtype:           string(acc.GetSubtype()),
			Mask:              acc.GetMask(),
		})
	}

	return accounts, nil
}

// GetBalance returns the current balance of one account. A balance the
// provider does not report is zero.
func (c *Client) GetBalance(ctx context.Context, accessToken, externalAccountID string) (decimal.Decimal, error) {
	request := plaidsdk.NewAccountsBalanceGetRequest(accessToken)
	options := plaidsdk.NewAccountsBalanceGetRequestOptions()
	options.SetAccountIds([]string{externalAccountID})
	request.SetOptions(*options)

	response, httpResp, err := c.api.PlaidApi.AccountsBalanceGet(ctx).AccountsBalanceGetRequest(*request).Execute()
	if err != nil {
		return decimal.Zero, c.upstreamError("balance get", httpResp, err)
	}

	for _, acc := range response.GetAccounts() {
		if acc.GetAccountId() != externalAccountID {
			continue
		}
		if acc.Balances.Current.IsSet() && acc.Balances.Current.Get() != nil {
			return decimal.NewFromFloat(*acc.Balances.Current.Get()).Round(2), nil
		}
		return decimal.Zero, nil
	}

	return decimal.Zero, ErrAccountNotFound
}

// ListTransactions pages through every transaction dated in [start, end].
func (c *Client) ListTransactions(ctx context.Context, accessToken string, start, end time.Time) ([]Transaction, error) {
	var transactions []Transaction
	for {
		request := plaidsdk.NewTransactionsGetRequest(accessToken, start.Format(dateLayout), end.Format(dateLayout))
		options := plaidsdk.NewTransactionsGetRequestOptions()
		options.SetCount(transactionsPageSize)
		options.SetOffset(int32(len(transactions)))
		request.SetOptions(*options)

		response, httpResp, err := c.api.PlaidApi.TransactionsGet(ctx).TransactionsGetRequest(*request).Execute()
		if err != nil {
			return nil, c.upstreamError("transactions get", httpResp, err)
		}

		page := response.GetTransactions()
		for _, tx := range page {
			transactions = append(transactions, Transaction{
				ID:           tx.GetTransactionId(),
				AccountID:    tx.GetAccountId(),
				Amount:       decimal.NewFromFloat(tx.GetAmount()).Round(2),
				Date:         tx.GetDate(),
				Name:         tx.GetName(),
				MerchantName: tx.GetMerchantName(),
				Pending:      tx.GetPending(),
				CurrencyCode: tx.GetIsoCurrencyCode(),
			})
		}

		if len(page) == 0 || len(transactions) >= int(response.GetTotalTransactions()) {
			return transactions, nil
		}
	}
}

func (c *Client) upstreamError(operation string, resp *http.Response, err error) error {
	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	c.logger.Error("plaid request failed",
		"operation", operation,
		"status", status,
		"error", err,
	)
	return fmt.Errorf("%s: %w", operation, ErrUpstreamUnavailable)
}
