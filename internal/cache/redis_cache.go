package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// RedisCache implements BalanceCache using Redis. Balances are stored as
// decimal strings.
type RedisCache struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisCache creates a new RedisCache from redis.Options
func NewRedisCache(opt *redis.Options, prefix string, logger *slog.Logger) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(opt),
		prefix: prefix,
		logger: logger,
	}
}

func (r *RedisCache) key(key string) string {
	return r.prefix + key
}

func (r *RedisCache) GetBalance(ctx context.Context, key string) (decimal.Decimal, bool, error) {
	val, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		r.logger.Debug("Redis cache miss", "key", key)
		return decimal.Zero, false, nil
	}
	if err != nil {
		r.logger.Error("Redis cache get error", "key", key, "error", err)
		return decimal.Zero, false, err
	}

	balance, err := decimal.NewFromString(val)
	if err != nil {
		r.logger.Error("Redis cache decode error", "key", key, "error", err)
		return decimal.Zero, false, err
	}

	r.logger.Debug("Redis cache hit", "key", key)
	return balance, true, nil
}

func (r *RedisCache) SetBalance(ctx context.Context, key string, balance decimal.Decimal, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.key(key), balance.String(), ttl).Err(); err != nil {
		r.logger.Error("Redis cache set error", "key", key, "error", err)
		return err
	}
	r.logger.Debug("Redis cache set", "key", key, "ttl", ttl)
	return nil
}

func (r *RedisCache) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		r.logger.Error("Redis cache delete error", "key", key, "error", err)
		return err
	}
	return nil
}

// Ping reports whether Redis answers.
func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}
