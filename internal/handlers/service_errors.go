package handlers

import (
	"errors"

	apierrors "roundup-savings/internal/errors"
	"roundup-savings/internal/models"
	"roundup-savings/internal/plaid"
	"roundup-savings/internal/repositories"
	"roundup-savings/internal/roundup"
	"roundup-savings/internal/services"

	"github.com/labstack/echo/v4"
)

// serviceErrorCodes maps service and repository sentinels to API codes.
// Anything not listed is a system error.
var serviceErrorCodes = []struct {
	err  error
	code apierrors.ErrorCode
}{
	{services.ErrInvalidCredentials, apierrors.AuthInvalidCredentials},
	{services.ErrAccountDisabled, apierrors.AuthAccountDisabled},
	{repositories.ErrUserNotFound, apierrors.UserNotFound},
	{repositories.ErrEmailAlreadyExists, apierrors.UserEmailExists},
	{repositories.ErrUsernameAlreadyExists, apierrors.UserUsernameExists},
	{repositories.ErrUserAlreadyExists, apierrors.UserEmailExists},
	{services.ErrInvalidCurrentPassword, apierrors.UserInvalidCurrentPassword},
	{services.ErrSamePassword, apierrors.UserSamePassword},
	{models.ErrInvalidMultiplier, apierrors.ValidationOutOfRange},
	{repositories.ErrLinkedItemNotFound, apierrors.BankAccountNotFound},
	{repositories.ErrLinkedAccountNotFound, apierrors.BankAccountNotFound},
	{plaid.ErrAccountNotFound, apierrors.BankAccountNotFound},
	{repositories.ErrAccountAlreadyLinked, apierrors.BankAccountAlreadyLinked},
	{repositories.ErrItemAlreadyLinked, apierrors.BankItemAlreadyLinked},
	{services.ErrNoActiveConnection, apierrors.BankNoActiveConnection},
	{services.ErrInvalidDateRange, apierrors.ValidationInvalidDate},
	{roundup.ErrInvalidRule, apierrors.RoundupInvalidRule},
	{roundup.ErrInvalidBoundary, apierrors.RoundupInvalidBoundary},
	{roundup.ErrInvalidAmount, apierrors.RoundupInvalidAmount},
	{repositories.ErrRoundupNotFound, apierrors.RoundupNotFound},
	{plaid.ErrUpstreamUnavailable, apierrors.UpstreamUnavailable},
}

// sendServiceError renders err with the code registered for it
func sendServiceError(c echo.Context, err error) error {
	if services.IsPasswordPolicyError(err) {
		return SendError(c, apierrors.ValidationWeakPassword, apierrors.WithDetails(passwordPolicyDetail(err)))
	}

	for _, m := range serviceErrorCodes {
		if errors.Is(err, m.err) {
			return SendError(c, m.code)
		}
	}

	return SendSystemError(c, err)
}

func passwordPolicyDetail(err error) string {
	for unwrapped := errors.Unwrap(err); unwrapped != nil; unwrapped = errors.Unwrap(err) {
		err = unwrapped
	}
	return err.Error()
}
