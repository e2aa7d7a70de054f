package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shopsage/backend/internal/domain"
)

// RedisCache implements domain.CacheRepository on top of a redis instance.
// Values are stored as JSON strings.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a redis-backed cache from a redis URL
// (redis://[user:pass@]host:port/db).
func NewRedisCache(redisURL string) (*RedisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	return &RedisCache{client: redis.NewClient(opts)}, nil
}

// Get retrieves a value from redis
func (c *RedisCache) Get(ctx context.Context, key string) (interface{}, error) {
	data, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, domain.ErrCacheMiss
	} else if err != nil {
		return nil, fmt.Errorf("redis GET error: %w", err)
	}

	var value interface{}
	if err := json.Unmarshal([]byte(data), &value); err != nil {
		// Treat corrupt entries as a miss and drop them
		c.client.Del(ctx, key)
		return nil, domain.ErrCacheMiss
	}
	return value, nil
}

// Set stores a value in redis with TTL
func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, key, string(payload), ttl).Err(); err != nil {
		return fmt.Errorf("redis SET error: %w", err)
	}
	return nil
}

// Delete removes a value from redis
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// Exists checks if a key exists in redis
func (c *RedisCache) Exists(ctx context.Context, key string) (bool, error) {
	n, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("redis EXISTS error: %w", err)
	}
	return n > 0, nil
}

// Close releases the underlying redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
