package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"roundup-savings/internal/dto"
	apierrors "roundup-savings/internal/errors"
	"roundup-savings/internal/services"
	"roundup-savings/internal/validation"

	"github.com/labstack/echo/v4"
)

const defaultTransactionWindowDays = 30

// PlaidHandler exposes the bank-data provider flows
type PlaidHandler struct {
	plaidService services.PlaidServiceInterface
	now          func() time.Time
}

func NewPlaidHandler(plaidService services.PlaidServiceInterface) *PlaidHandler {
	return &PlaidHandler{
		plaidService: plaidService,
		now:          time.Now,
	}
}

// CreateLinkToken
// @Summary Create a Link token
// @Tags Plaid
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.LinkTokenResponse
// @Failure 500 {object} errors.ErrorResponse "UPSTREAM_001"
// @Router /plaid/link-token [post]
func (h *PlaidHandler) CreateLinkToken(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	token, err := h.plaidService.CreateLinkToken(c.Request().Context(), userID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, token)
}

// ExchangeToken
// @Summary Exchange a public token and store the connection
// @Tags Plaid
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ExchangeTokenRequest true "Public token from Link"
// @Success 200 {object} dto.ExchangeTokenResponse
// @Failure 400 {object} errors.ErrorResponse "BANK_004"
// @Router /plaid/exchange-token [post]
func (h *PlaidHandler) ExchangeToken(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.ExchangeTokenRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	resp, err := h.plaidService.ExchangePublicToken(c.Request().Context(), userID, &req)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// ListAccounts
// @Summary List provider accounts across active connections
// @Tags Plaid
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.PlaidAccount
// @Failure 404 {object} errors.ErrorResponse "BANK_003"
// @Router /plaid/accounts [get]
func (h *PlaidHandler) ListAccounts(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	accounts, err := h.plaidService.ListAccounts(c.Request().Context(), userID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, accounts)
}

// GetBalance
// @Summary Get the balance of a linked account
// @Tags Plaid
// @Security BearerAuth
// @Produce json
// @Param id path string true "External account id"
// @Success 200 {object} dto.BalanceResponse
// @Failure 404 {object} errors.ErrorResponse "BANK_001"
// @Router /plaid/accounts/{id}/balance [get]
func (h *PlaidHandler) GetBalance(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	accountID := c.Param("id")
	if accountID == "" {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("account id is required"))
	}

	balance, err := h.plaidService.GetBalance(c.Request().Context(), userID, accountID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, balance)
}

// ListTransactions returns provider transactions between start_date and
// end_date, defaulting to the last 30 days.
// @Summary List provider transactions
// @Tags Plaid
// @Security BearerAuth
// @Produce json
// @Param start_date query string false "YYYY-MM-DD"
// @Param end_date query string false "YYYY-MM-DD"
// @Success 200 {object} dto.TransactionsResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_004"
// @Router /plaid/transactions [get]
func (h *PlaidHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var query dto.TransactionsQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return SendError(c, apierrors.ValidationInvalidDate)
	}

	if err := c.Validate(query); err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails("dates must use the YYYY-MM-DD format"))
	}

	start, end := h.transactionWindow(query)

	resp, err := h.plaidService.ListTransactions(c.Request().Context(), userID, start, end)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// transactionWindow resolves the requested dates. Both were validated, so
// parse errors cannot occur.
func (h *PlaidHandler) transactionWindow(query dto.TransactionsQuery) (time.Time, time.Time) {
	today := h.now().UTC().Truncate(24 * time.Hour)

	end := today
	if query.EndDate != "" {
		end, _ = time.Parse(validation.DateLayout, query.EndDate)
	}

	start := end.AddDate(0, 0, -defaultTransactionWindowDays)
	if query.StartDate != "" {
		start, _ = time.Parse(validation.DateLayout, query.StartDate)
	}

	return start, end
}

// Webhook receives provider notifications. It is unauthenticated and always
// acknowledges a well-formed body.
// @Summary Provider webhook
// @Tags Plaid
// @Accept json
// @Produce json
// @Param request body dto.WebhookRequest true "Webhook payload"
// @Success 200 {object} object{status=string}
// @Router /plaid/webhook [post]
func (h *PlaidHandler) Webhook(c echo.Context) error {
	var req dto.WebhookRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.plaidService.HandleWebhook(c.Request().Context(), &req); err != nil {
		slog.ErrorContext(c.Request().Context(), "webhook processing failed",
			"trace_id", getTraceID(c),
			"webhook_type", req.WebhookType,
			"webhook_code", req.WebhookCode,
			"error", err)
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "received"})
}

// UnlinkItem
// @Summary Remove a bank connection and its accounts
// @Tags Plaid
// @Security BearerAuth
// @Produce json
// @Param item_id path string true "Provider item id"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} errors.ErrorResponse "BANK_001"
// @Router /plaid/items/{item_id} [delete]
func (h *PlaidHandler) UnlinkItem(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	if err := h.plaidService.UnlinkItem(c.Request().Context(), userID, c.Param("item_id")); err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "Bank connection removed"})
}
