package plaid

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"roundup-savings/internal/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(&config.PlaidConfig{
		ClientID:    "client-id",
		Secret:      "secret",
		Environment: srv.URL,
		ClientName:  "Untether",
		WebhookURL:  "https://example.com/plaid/webhook",
		Timeout:     2 * time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func account(id, name string, current any) map[string]any {
	return map[string]any{
		"account_id": id,
		"balances": map[string]any{
			"available":                nil,
			"current":                  current,
			"iso_currency_code":        "USD",
			"unofficial_currency_code": nil,
		},
		"mask":          "0000",
		"name":          name,
		"official_name": nil,
		"type":          "depository",
		"subtype":       "checking",
	}
}

func TestClient_CreateLinkToken(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/link/token/create", r.URL.Path)
		assert.Equal(t, "client-id", r.Header.Get("PLAID-CLIENT-ID"))
		assert.Equal(t, "secret", r.Header.Get("PLAID-SECRET"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		writeJSON(t, w, http.StatusOK, map[string]any{
			"link_token": "link-sandbox-123",
			"expiration": "2026-10-15T12:00:00Z",
			"request_id": "req-1",
		})
	})

	token, err := client.CreateLinkToken(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, "link-sandbox-123", token.Token)
	assert.Equal(t, time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC), token.Expiration.UTC())
	assert.Equal(t, "Untether", body["client_name"])
	assert.Equal(t, "https://example.com/plaid/webhook", body["webhook"])
	assert.Equal(t, []any{"transactions"}, body["products"])
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "user-1", user["client_user_id"])
}

func TestClient_ExchangePublicToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/item/public_token/exchange", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{
			"access_token": "access-sandbox-abc",
			"item_id":      "item-1",
			"request_id":   "req-2",
		})
	})

	exchange, err := client.ExchangePublicToken(context.Background(), "public-sandbox-xyz")

	require.NoError(t, err)
	assert.Equal(t, "access-sandbox-abc", exchange.AccessToken)
	assert.Equal(t, "item-1", exchange.ItemID)
}

func TestClient_ListAccounts(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/get", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{
			"accounts": []any{
				account("acc-1", "Plaid Checking", 110.0),
				account("acc-2", "Plaid Saving", 210.0),
			},
			"request_id": "req-3",
		})
	})

	accounts, err := client.ListAccounts(context.Background(), "access-sandbox-abc")

	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, Account{
		ExternalAccountID: "acc-1",
		Name:              "Plaid Checking",
		Type:              "depository",
		Subtype:           "checking",
		Mask:              "0000",
	}, accounts[0])
}

func TestClient_GetBalance(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/balance/get", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{
			"accounts":   []any{account("acc-1", "Plaid Checking", 1234.56)},
			"request_id": "req-4",
		})
	})

	balance, err := client.GetBalance(context.Background(), "access-sandbox-abc", "acc-1")
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("1234.56")), balance.String())

	_, err = client.GetBalance(context.Background(), "access-sandbox-abc", "acc-missing")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestClient_UpstreamFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusInternalServerError, map[string]any{
			"error_type":    "API_ERROR",
			"error_code":    "INTERNAL_SERVER_ERROR",
			"error_message": "an unexpected error occurred",
			"request_id":    "req-5",
		})
	})

	ctx := context.Background()

	_, err := client.CreateLinkToken(ctx, "user-1")
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)

	_, err = client.ExchangePublicToken(ctx, "public-sandbox-xyz")
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)

	_, err = client.ListAccounts(ctx, "access-sandbox-abc")
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)

	_, err = client.GetBalance(ctx, "access-sandbox-abc", "acc-1")
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)

	_, err = client.ListTransactions(ctx, "access-sandbox-abc", time.Now().AddDate(0, 0, -30), time.Now())
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client := NewClient(&config.PlaidConfig{
		Environment: srv.URL,
		Timeout:     time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := client.ExchangePublicToken(context.Background(), "public-sandbox-xyz")
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestEnvironment(t *testing.T) {
	assert.Equal(t, "https://sandbox.plaid.com", string(environment("sandbox")))
	assert.Equal(t, "https://production.plaid.com", string(environment("production")))
	assert.Equal(t, "http://127.0.0.1:9999", string(environment("http://127.0.0.1:9999")))
}
