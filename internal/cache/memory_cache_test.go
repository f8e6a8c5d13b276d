package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMemoryCache(t *testing.T) (*MemoryCache, *time.Time) {
	t.Helper()
	c := NewMemoryCache()
	t.Cleanup(func() { _ = c.Close() })

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	return c, &now
}

func TestMemoryCache_SetGet(t *testing.T) {
	c, _ := newTestMemoryCache(t)
	ctx := context.Background()

	_, ok, err := c.GetBalance(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.SetBalance(ctx, "k", decimal.RequireFromString("12.34"), time.Minute))

	balance, ok, err := c.GetBalance(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "12.34", balance.StringFixed(2))
}

func TestMemoryCache_Expiry(t *testing.T) {
	c, now := newTestMemoryCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetBalance(ctx, "k", decimal.NewFromInt(5), time.Minute))

	*now = now.Add(59 * time.Second)
	_, ok, _ := c.GetBalance(ctx, "k")
	assert.True(t, ok)

	*now = now.Add(time.Second)
	_, ok, _ = c.GetBalance(ctx, "k")
	assert.False(t, ok)

	c.evictExpired()
	c.mu.RLock()
	assert.Empty(t, c.entries)
	c.mu.RUnlock()
}

func TestMemoryCache_Delete(t *testing.T) {
	c, _ := newTestMemoryCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetBalance(ctx, "k", decimal.NewFromInt(5), time.Minute))
	require.NoError(t, c.Delete(ctx, "k"))

	_, ok, err := c.GetBalance(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	c := NewMemoryCache()
	defer c.Close()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := BalanceKey("user", string(rune('a'+i)))
			_ = c.SetBalance(ctx, key, decimal.NewFromInt(int64(i)), time.Minute)
			_, _, _ = c.GetBalance(ctx, key)
		}(i)
	}
	wg.Wait()

	assert.NoError(t, c.Close())
	assert.NoError(t, c.Close())
}

func TestBalanceKey(t *testing.T) {
	assert.Equal(t, "balance:u1:acc-1", BalanceKey("u1", "acc-1"))
}
