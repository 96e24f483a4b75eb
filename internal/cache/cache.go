// Package cache is a small redis-backed JSON cache for hot list endpoints.
// When redis is not configured every operation is a no-op, so callers never
// branch on whether caching is enabled.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/strongfit/studio/internal/config"
	"go.uber.org/zap"
)

type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func New(cfg config.Config, log *zap.Logger) *Cache {
	c := &Cache{
		ttl: time.Duration(cfg.CacheTTL) * time.Second,
		log: log.Named("cache"),
	}
	if !cfg.CacheEnabled || cfg.RedisAddr == "" {
		return c
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		c.log.Warn("redis unreachable, caching disabled", zap.Error(err))
		_ = client.Close()
		return c
	}

	c.client = client
	return c
}

// Get unmarshals the cached value under key into dest. Returns false on a
// miss or when caching is disabled.
func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil || c.client == nil {
		return false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.Warn("cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *Cache) Set(ctx context.Context, key string, value any) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn("cache invalidate failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
