package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"time"          // Time durations

	"github.com/go-faster/errors"  // Error wrapping
	"github.com/redis/go-redis/v9" // Redis client
)

// Cache is a JSON value cache with per-key TTL
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Cache keys
const (
	ItemsAllKey = "items:all" // Whole catalog listing
)

// ItemsByNameKey is the cache key for a catalog search by exact name
func ItemsByNameKey(name string) string {
	return "items:name:" + name
}

// OrderHistoryKey is the cache key for the order history of a user
func OrderHistoryKey(username string) string {
	return "orders:user:" + username
}

// RedisCache stores JSON encoded values in Redis
type RedisCache struct {
	rdb *redis.Client // Redis client
}

// NewRedisCache wraps a Redis client
func NewRedisCache(rdb *redis.Client) *RedisCache {
	return &RedisCache{rdb: rdb}
}

// Get implements Cache
func (c *RedisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	return GetCache(ctx, c.rdb, key, dest)
}

// Set implements Cache
func (c *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return SetCache(ctx, c.rdb, key, value, ttl)
}

// Delete implements Cache
func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	return DeleteCache(ctx, c.rdb, keys...)
}

// NopCache never stores anything; used when Redis is not configured
type NopCache struct{}

// Get implements Cache
func (NopCache) Get(context.Context, string, any) (bool, error) { return false, nil }

// Set implements Cache
func (NopCache) Set(context.Context, string, any, time.Duration) error { return nil }

// Delete implements Cache
func (NopCache) Delete(context.Context, ...string) error { return nil }

// GetCache retrieves a value from Redis and unmarshals it into dest
func GetCache(ctx context.Context, rdb *redis.Client, key string, dest any) (bool, error) {
	val, err := rdb.Get(ctx, key).Result() // Get value from Redis
	if errors.Is(err, redis.Nil) {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, errors.Wrapf(err, "get %q", key) // Other Redis error
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, errors.Wrapf(err, "decode %q", key) // Corrupt entry counts as a miss
	}
	return true, nil
}

// SetCache sets a value in Redis with a specified TTL
func SetCache(ctx context.Context, rdb *redis.Client, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return errors.Wrapf(err, "encode %q", key) // Return error if marshaling fails
	}
	return rdb.Set(ctx, key, b, ttl).Err() // Set value in Redis with TTL
}

// DeleteCache deletes keys from Redis in one round trip
func DeleteCache(ctx context.Context, rdb *redis.Client, keys ...string) error {
	if len(keys) == 0 {
		return nil // Nothing to delete
	}
	if err := rdb.Del(ctx, keys...).Err(); err != nil {
		return errors.Wrapf(err, "delete %v", keys) // Redis error
	}
	return nil
}
