// Package redis provides the Redis-backed cache used for list responses.
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache implements the domain.Cache interface using Redis.
// All keys are namespaced under the configured prefix.
type Cache struct {
	client    *redis.Client
	logger    *zap.Logger
	keyPrefix string
}

// NewCache creates a new Redis cache instance.
func NewCache(client *redis.Client, logger *zap.Logger, keyPrefix string) *Cache {
	return &Cache{
		client:    client,
		logger:    logger,
		keyPrefix: keyPrefix,
	}
}

// Get retrieves a value by key. Returns nil if the key doesn't exist.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	fullKey := c.buildKey(key)

	data, err := c.client.Get(ctx, fullKey).Bytes()
	if err == redis.Nil {
		// Key doesn't exist - not an error condition
		return nil, nil
	}
	if err != nil {
		c.logger.Error("cache get failed",
			zap.String("key", key),
			zap.Error(err),
		)

		return nil, err
	}

	c.logger.Debug("cache hit",
		zap.String("key", key),
		zap.Int("bytes", len(data)),
	)

	return data, nil
}

// Set stores a value with the given TTL.
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	fullKey := c.buildKey(key)

	err := c.client.Set(ctx, fullKey, value, ttl).Err()
	if err != nil {
		c.logger.Error("cache set failed",
			zap.String("key", key),
			zap.Int("bytes", len(value)),
			zap.Error(err),
		)

		return err
	}

	c.logger.Debug("cache set",
		zap.String("key", key),
		zap.Int("bytes", len(value)),
		zap.Duration("ttl", ttl),
	)

	return nil
}

// Delete removes a value by key. Idempotent.
func (c *Cache) Delete(ctx context.Context, key string) error {
	fullKey := c.buildKey(key)

	err := c.client.Del(ctx, fullKey).Err()
	if err != nil {
		c.logger.Error("cache delete failed",
			zap.String("key", key),
			zap.Error(err),
		)

		return err
	}

	return nil
}

// buildKey creates a fully-qualified key under the configured prefix.
func (c *Cache) buildKey(key string) string {
	return c.keyPrefix + ":" + key
}
