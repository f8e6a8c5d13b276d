package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newUnreachableRedisCache(t *testing.T) *RedisCache {
	t.Helper()
	c := NewRedisCache(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	}, "roundup:", slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestRedisCache_Key(t *testing.T) {
	c := newUnreachableRedisCache(t)
	assert.Equal(t, "roundup:balance:u1:acc-1", c.key(BalanceKey("u1", "acc-1")))
}

func TestRedisCache_UnreachableServerReturnsErrors(t *testing.T) {
	c := newUnreachableRedisCache(t)
	ctx := context.Background()

	_, ok, err := c.GetBalance(ctx, "k")
	assert.Error(t, err)
	assert.False(t, ok)

	assert.Error(t, c.SetBalance(ctx, "k", decimal.NewFromInt(1), time.Minute))
	assert.Error(t, c.Delete(ctx, "k"))
	assert.Error(t, c.Ping(ctx))
}
