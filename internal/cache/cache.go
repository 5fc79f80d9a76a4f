// Package cache provides a redis-backed read-through cache for task data.
//
// Cached entries are JSON-serialized and expire after the configured TTL.
// Every task mutation invalidates the affected keys, so readers observe
// stale data for at most one write cycle, never across one.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-task-manager/internal/config"
	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Cache wraps a redis client with JSON get/set helpers.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

// NewConnectRedis dials the configured redis server and verifies the
// connection with a ping. Returns an error if the server is unreachable.
func NewConnectRedis(ctx context.Context, cfg config.Redis, log *logger.Logger) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("error connecting redis (ping)")
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Str("func", "NewConnectRedis").Msg("connected to redis successfully")

	return &Cache{
		client: client,
		ttl:    cfg.TTL,
		logger: log,
	}, nil
}

// Get looks the key up and unmarshals the cached JSON into result.
// The first return value reports whether the key was present.
func (c *Cache) Get(ctx context.Context, key string, result any) (bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error reading cache key %q: %w", key, err)
	}

	if err := json.Unmarshal([]byte(val), result); err != nil {
		return false, fmt.Errorf("error decoding cache key %q: %w", key, err)
	}

	return true, nil
}

// Set stores the JSON serialization of value under the key with the
// configured TTL.
func (c *Cache) Set(ctx context.Context, key string, value any) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error encoding cache key %q: %w", key, err)
	}

	if err := c.client.Set(ctx, key, jsonData, c.ttl).Err(); err != nil {
		return fmt.Errorf("error writing cache key %q: %w", key, err)
	}

	return nil
}

// Invalidate removes the given keys. Missing keys are not an error.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("error invalidating cache keys %v: %w", keys, err)
	}

	return nil
}

// Close releases the underlying redis connection.
func (c *Cache) Close() error {
	return c.client.Close()
}
