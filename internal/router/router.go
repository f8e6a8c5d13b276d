package router

import (
	"net/http"

	"roundup-savings/internal/config"
	"roundup-savings/internal/handlers"

	"github.com/labstack/echo/v4"
)

// Handlers groups the HTTP handlers of every logical service. Handlers of a
// service that is not mounted may be nil.
type Handlers struct {
	Auth    *handlers.AuthHandler
	User    *handlers.UserHandler
	Plaid   *handlers.PlaidHandler
	Roundup *handlers.RoundupHandler
	Health  *handlers.HealthCheckHandler
	Docs    *handlers.DocsHandler
}

// Register mounts the operational endpoints and the route groups selected
// by serviceName. requireAuth guards every authenticated route.
func Register(e *echo.Echo, serviceName string, h Handlers, requireAuth echo.MiddlewareFunc, metrics http.Handler) {
	e.GET("/health", h.Health.HealthCheck)
	e.GET("/health/ready", h.Health.ReadinessCheck)
	e.GET("/metrics", echo.WrapHandler(metrics))

	if h.Docs != nil {
		e.GET("/docs", h.Docs.ServeScalarUI)
		e.GET(handlers.OpenAPIPath, h.Docs.ServeOpenAPI)
	}

	if Mounts(serviceName, config.ServiceIdentity) {
		registerIdentity(e, h, requireAuth)
	}
	if Mounts(serviceName, config.ServicePlaid) {
		registerPlaid(e, h, requireAuth)
	}
	if Mounts(serviceName, config.ServiceTransactions) {
		registerTransactions(e, h, requireAuth)
	}
}

// Mounts reports whether a process named serviceName serves group
func Mounts(serviceName, group string) bool {
	return serviceName == config.ServiceAll || serviceName == group
}

func registerIdentity(e *echo.Echo, h Handlers, requireAuth echo.MiddlewareFunc) {
	auth := e.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)

	users := e.Group("/users/me", requireAuth)
	users.GET("", h.User.GetMe)
	users.PUT("", h.User.UpdateMe)
	users.DELETE("", h.User.DeleteMe)
	users.PUT("/password", h.User.ChangePassword)
	users.GET("/preferences", h.User.GetPreferences)
	users.PUT("/preferences", h.User.UpdatePreferences)
	users.GET("/bank-accounts", h.User.ListBankAccounts)
	users.POST("/bank-accounts", h.User.LinkBankAccount)
}

func registerPlaid(e *echo.Echo, h Handlers, requireAuth echo.MiddlewareFunc) {
	// The provider calls the webhook without a bearer token.
	e.POST("/plaid/webhook", h.Plaid.Webhook)

	p := e.Group("/plaid", requireAuth)
	p.POST("/link-token", h.Plaid.CreateLinkToken)
	p.POST("/exchange-token", h.Plaid.ExchangeToken)
	p.GET("/accounts", h.Plaid.ListAccounts)
	p.GET("/accounts/:id/balance", h.Plaid.GetBalance)
	p.GET("/transactions", h.Plaid.ListTransactions)
	p.DELETE("/items/:item_id", h.Plaid.UnlinkItem)
}

func registerTransactions(e *echo.Echo, h Handlers, requireAuth echo.MiddlewareFunc) {
	t := e.Group("/transactions", requireAuth)
	t.POST("/calculate-roundup", h.Roundup.CalculateRoundup)
	t.GET("/roundup-history", h.Roundup.GetHistory)
	t.GET("/roundup-summary", h.Roundup.GetSummary)
	t.POST("/batch-calculate", h.Roundup.BatchCalculate)
	t.DELETE("/roundup/:id", h.Roundup.DeleteRoundup)
}
