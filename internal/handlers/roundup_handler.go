package handlers

import (
	"net/http"

	"roundup-savings/internal/dto"
	apierrors "roundup-savings/internal/errors"
	"roundup-savings/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RoundupHandler serves roundup calculations and their history
type RoundupHandler struct {
	roundupService services.RoundupServiceInterface
}

func NewRoundupHandler(roundupService services.RoundupServiceInterface) *RoundupHandler {
	return &RoundupHandler{roundupService: roundupService}
}

// CalculateRoundup computes and stores one roundup
// @Summary Calculate a roundup
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CalculateRoundupRequest true "Amount and rule"
// @Success 201 {object} models.RoundupRecord
// @Failure 400 {object} errors.ErrorResponse "ROUNDUP_001, ROUNDUP_002 or ROUNDUP_003"
// @Router /transactions/calculate-roundup [post]
func (h *RoundupHandler) CalculateRoundup(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.CalculateRoundupRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	record, err := h.roundupService.Calculate(c.Request().Context(), userID, &req)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, record)
}

// GetHistory pages through the caller's roundups, newest first
// @Summary Roundup history
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param limit query int false "1-100, default 50"
// @Param offset query int false ">= 0"
// @Success 200 {object} dto.HistoryResponse
// @Router /transactions/roundup-history [get]
func (h *RoundupHandler) GetHistory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	limit, err := getIntParam(c, "limit", services.DefaultHistoryLimit)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(err.Error()))
	}
	if limit < 1 || limit > services.MaxHistoryLimit {
		return SendError(c, apierrors.ValidationOutOfRange, apierrors.WithDetails("limit must be between 1 and 100"))
	}

	offset, err := getIntParam(c, "offset", 0)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(err.Error()))
	}
	if offset < 0 {
		return SendError(c, apierrors.ValidationOutOfRange, apierrors.WithDetails("offset must not be negative"))
	}

	records, total, err := h.roundupService.History(c.Request().Context(), userID, offset, limit)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.HistoryResponse{
		Data: records,
		Meta: dto.PaginationMeta{Limit: limit, Offset: offset, Total: total},
	})
}

// GetSummary totals the caller's roundups over the last days days
// @Summary Roundup summary
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param days query int false "1-365, default 30"
// @Success 200 {object} dto.RoundupSummaryResponse
// @Router /transactions/roundup-summary [get]
func (h *RoundupHandler) GetSummary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	days, err := getIntParam(c, "days", services.DefaultSummaryDays)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(err.Error()))
	}
	if days < 1 || days > services.MaxSummaryDays {
		return SendError(c, apierrors.ValidationOutOfRange, apierrors.WithDetails("days must be between 1 and 365"))
	}

	summary, err := h.roundupService.Summary(c.Request().Context(), userID, days)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}

// BatchCalculate computes roundups for many transactions in one request
// @Summary Batch roundup calculation
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.BatchCalculateRequest true "Rule and up to 1000 transactions"
// @Success 200 {object} dto.BatchCalculateResponse
// @Router /transactions/batch-calculate [post]
func (h *RoundupHandler) BatchCalculate(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.BatchCalculateRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	resp, err := h.roundupService.BatchCalculate(c.Request().Context(), userID, &req)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// DeleteRoundup removes one of the caller's calculations
// @Summary Delete a roundup calculation
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Calculation id"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} errors.ErrorResponse "ROUNDUP_004"
// @Router /transactions/roundup/{id} [delete]
func (h *RoundupHandler) DeleteRoundup(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.RoundupNotFound)
	}

	if err := h.roundupService.Delete(c.Request().Context(), userID, recordID); err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "Calculation deleted"})
}
