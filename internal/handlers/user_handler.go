package handlers

import (
	"net/http"

	"roundup-savings/internal/dto"
	apierrors "roundup-savings/internal/errors"
	"roundup-savings/internal/services"

	"github.com/labstack/echo/v4"
)

// UserHandler serves the authenticated user's profile, settings and
// manually linked bank accounts
type UserHandler struct {
	userService        services.UserServiceInterface
	preferenceService  services.PreferenceServiceInterface
	bankAccountService services.BankAccountServiceInterface
}

func NewUserHandler(
	userService services.UserServiceInterface,
	preferenceService services.PreferenceServiceInterface,
	bankAccountService services.BankAccountServiceInterface,
) *UserHandler {
	return &UserHandler{
		userService:        userService,
		preferenceService:  preferenceService,
		bankAccountService: bankAccountService,
	}
}

// GetMe returns the caller's profile
// @Summary Get current user
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.User
// @Router /users/me [get]
func (h *UserHandler) GetMe(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	user, err := h.userService.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, user)
}

// UpdateMe applies a partial profile update. A username change answers with
// a replacement token because the old one names the previous username.
// @Summary Update current user
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateUserRequest true "Fields to change"
// @Success 200 {object} dto.UserUpdateResponse
// @Router /users/me [put]
func (h *UserHandler) UpdateMe(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	user, newToken, err := h.userService.UpdateProfile(c.Request().Context(), userID, &req)
	if err != nil {
		return sendServiceError(c, err)
	}

	if newToken == "" {
		return c.JSON(http.StatusOK, user)
	}

	return c.JSON(http.StatusOK, dto.UserUpdateResponse{
		User:      user,
		NewToken:  newToken,
		TokenType: dto.TokenTypeBearer,
	})
}

// ChangePassword
// @Summary Change password
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse "USER_004, USER_005 or VALIDATION_005"
// @Router /users/me/password [put]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.userService.ChangePassword(c.Request().Context(), userID, &req); err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Password updated successfully"})
}

// DeleteMe removes the caller's account and everything it owns
// @Summary Delete current user
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /users/me [delete]
func (h *UserHandler) DeleteMe(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	if err := h.userService.DeleteAccount(c.Request().Context(), userID); err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "Account deleted"})
}

// @Summary Get roundup preferences
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Preference
// @Router /users/me/preferences [get]
func (h *UserHandler) GetPreferences(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	pref, err := h.preferenceService.GetPreferences(c.Request().Context(), userID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, pref)
}

// @Summary Update roundup preferences
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdatePreferencesRequest true "Settings to change"
// @Success 200 {object} models.Preference
// @Router /users/me/preferences [put]
func (h *UserHandler) UpdatePreferences(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.UpdatePreferencesRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	pref, err := h.preferenceService.UpdatePreferences(c.Request().Context(), userID, &req)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, pref)
}

// @Summary List linked bank accounts
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.LinkedAccount
// @Router /users/me/bank-accounts [get]
func (h *UserHandler) ListBankAccounts(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	accounts, err := h.bankAccountService.ListAccounts(c.Request().Context(), userID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, accounts)
}

// @Summary Link a bank account under an existing connection
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.LinkBankAccountRequest true "Item and account ids"
// @Success 201 {object} models.LinkedAccount
// @Failure 400 {object} errors.ErrorResponse "BANK_002"
// @Failure 404 {object} errors.ErrorResponse "BANK_001"
// @Router /users/me/bank-accounts [post]
func (h *UserHandler) LinkBankAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.LinkBankAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	account, err := h.bankAccountService.LinkAccount(c.Request().Context(), userID, &req)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, account)
}
