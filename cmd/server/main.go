package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"roundup-savings/internal/cache"
	"roundup-savings/internal/config"
	"roundup-savings/internal/database"
	"roundup-savings/internal/handlers"
	"roundup-savings/internal/middleware"
	"roundup-savings/internal/plaid"
	"roundup-savings/internal/repositories"
	"roundup-savings/internal/router"
	"roundup-savings/internal/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

// @title Roundup Savings API
// @version 1.0.0
// @description Users, linked bank accounts and roundup savings
// @BasePath /
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description "Enter your Bearer token in the format: `Bearer {token}`"
func main() {
	if err := run(); err != nil {
		slog.Error("Application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	slog.SetDefault(newLogger(&cfg.Log))
	logger := slog.Default()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}()

	balanceCache := newBalanceCache(ctx, &cfg.Cache, logger)
	defer func() {
		if err := balanceCache.Close(); err != nil {
			logger.Error("Failed to close balance cache", "error", err)
		}
	}()

	// the default registry carries the runtime collectors and api_errors_total
	registry := prometheus.NewRegistry()
	gatherers := prometheus.Gatherers{prometheus.DefaultGatherer, registry}
	metrics := services.NewPrometheusMetrics(registry)

	userRepo := repositories.NewUserRepository(db.DB)
	preferenceRepo := repositories.NewPreferenceRepository(db.DB)
	itemRepo := repositories.NewLinkedItemRepository(db.DB)
	accountRepo := repositories.NewLinkedAccountRepository(db.DB)
	roundupRepo := repositories.NewRoundupRepository(db.DB)

	passwordService := services.NewPasswordService(cfg.Security.BCryptCost)
	tokenService := services.NewTokenService(&cfg.JWT)
	authService := services.NewAuthService(userRepo, passwordService, tokenService, metrics, logger)
	userService := services.NewUserService(userRepo, passwordService, tokenService, logger)
	preferenceService := services.NewPreferenceService(preferenceRepo)
	bankAccountService := services.NewBankAccountService(itemRepo, accountRepo, logger)
	plaidService := services.NewPlaidService(
		plaid.NewClient(&cfg.Plaid, logger),
		itemRepo,
		accountRepo,
		balanceCache,
		cfg.Cache.BalanceTTL,
		services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig()),
		metrics,
		logger,
	)
	roundupService := services.NewRoundupService(roundupRepo, metrics, logger)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()
	e.IPExtractor = echo.ExtractIPFromXFFHeader()
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	rateLimiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond)
	go rateLimiter.Run(ctx)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	e.Use(middleware.HTTPMetrics(registry))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
			middleware.TraceIDHeader,
		},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))
	e.Use(echomiddleware.BodyLimit("1M"))
	e.Use(rateLimiter.Middleware())

	router.Register(e, cfg.Server.ServiceName, router.Handlers{
		Auth:    handlers.NewAuthHandler(authService),
		User:    handlers.NewUserHandler(userService, preferenceService, bankAccountService),
		Plaid:   handlers.NewPlaidHandler(plaidService),
		Roundup: handlers.NewRoundupHandler(roundupService),
		Health:  handlers.NewHealthCheckHandler(db.DB, cfg.Server.ServiceName),
		Docs:    handlers.NewDocsHandler("docs", "Roundup Savings"),
	},
		middleware.RequireAuth(tokenService, userService),
		promhttp.HandlerFor(gatherers, promhttp.HandlerOpts{}),
	)

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server",
			"service", cfg.Server.ServiceName,
			"env", cfg.Server.Environment,
			"address", addr,
		)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}

func newLogger(cfg *config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

// newBalanceCache uses Redis when REDIS_ADDR is set and reachable, and the
// in-process cache otherwise.
func newBalanceCache(ctx context.Context, cfg *config.CacheConfig, logger *slog.Logger) cache.BalanceCache {
	if cfg.RedisAddr == "" {
		return cache.NewMemoryCache()
	}

	redisCache := cache.NewRedisCache(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, cfg.Prefix, logger)

	if err := redisCache.Ping(ctx); err != nil {
		logger.Warn("Redis unreachable, caching balances in memory", "addr", cfg.RedisAddr, "error", err)
		_ = redisCache.Close()
		return cache.NewMemoryCache()
	}

	return redisCache
}
