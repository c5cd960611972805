package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache is a thin JSON cache over Redis. All operations are best-effort:
// a missing or unreachable Redis degrades to cache misses, never to
// request failures.
type Cache struct {
	client *redis.Client
	logger *zap.Logger
}

// New wraps a go-redis client. A nil client yields a disabled cache.
func New(client *redis.Client, logger *zap.Logger) *Cache {
	return &Cache{client: client, logger: logger}
}

// GetJSON loads and unmarshals the value at key into dest. Returns false
// on miss or any error.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if c == nil || c.client == nil {
		return false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("cache get failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.logger.Debug("cache decode failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// SetJSON marshals value and stores it under key with the given TTL.
func (c *Cache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.Debug("cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		c.logger.Debug("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// Delete removes the given keys.
func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Debug("cache delete failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
