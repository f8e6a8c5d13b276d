package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"roundup-savings/internal/cache"
	"roundup-savings/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	jsonLogger := newLogger(&config.LogConfig{Level: "debug", Format: "json"})
	assert.IsType(t, &slog.JSONHandler{}, jsonLogger.Handler())
	assert.True(t, jsonLogger.Enabled(context.Background(), slog.LevelDebug))

	textLogger := newLogger(&config.LogConfig{Level: "warn", Format: "text"})
	assert.IsType(t, &slog.TextHandler{}, textLogger.Handler())
	assert.False(t, textLogger.Enabled(context.Background(), slog.LevelInfo))
}

func TestNewBalanceCache(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("memory without redis address", func(t *testing.T) {
		c := newBalanceCache(context.Background(), &config.CacheConfig{}, logger)
		defer c.Close()
		assert.IsType(t, &cache.MemoryCache{}, c)
	})

	t.Run("memory when redis is unreachable", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		c := newBalanceCache(ctx, &config.CacheConfig{RedisAddr: "127.0.0.1:1", Prefix: "roundup:"}, logger)
		defer c.Close()
		assert.IsType(t, &cache.MemoryCache{}, c)
	})
}
