package middleware

import (
	stderrors "errors"

	"roundup-savings/internal/errors"
	"roundup-savings/internal/handlers"
	"roundup-savings/internal/repositories"
	"roundup-savings/internal/services"

	"github.com/labstack/echo/v4"
)

// Context keys set by RequireAuth in addition to handlers.UserIDContextKey
const (
	UsernameContextKey = "username"
	TokenJTIContextKey = "token_jti"
)

// RequireAuth creates a middleware that requires a valid access token whose
// subject is an active user
func RequireAuth(tokenService services.TokenServiceInterface, userService services.UserServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateAccessToken(token)
			if err != nil {
				if stderrors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			// The subject is re-resolved on every request so a deleted or
			// renamed user's outstanding tokens stop working.
			user, err := userService.ResolveActiveUser(c.Request().Context(), claims.Subject)
			if err != nil {
				if stderrors.Is(err, repositories.ErrUserNotFound) {
					return handlers.SendError(c, errors.UserNotFound)
				}
				return handlers.SendSystemError(c, err)
			}

			c.Set(handlers.UserIDContextKey, user.ID)
			c.Set(UsernameContextKey, user.Username)
			c.Set(TokenJTIContextKey, claims.ID)

			return next(c)
		}
	}
}
