package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache stores entries in Redis. Expiry is delegated to Redis TTLs.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to the Redis instance at url
// (for example "redis://localhost:6379/0"). The connection is lazy; use
// [RedisCache.Ping] to check it.
func NewRedisCache(url string) (*RedisCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return NewRedisCacheFromClient(redis.NewClient(opts)), nil
}

// NewRedisCacheFromClient wraps an existing client. Close closes the client.
func NewRedisCacheFromClient(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// DialRedis connects to url and waits until Redis answers a ping, retrying
// with backoff while the server is starting up. The client is closed on
// failure.
func DialRedis(ctx context.Context, url string, attempts int) (*RedisCache, error) {
	c, err := NewRedisCache(url)
	if err != nil {
		return nil, err
	}
	err = Retry(ctx, attempts, 200*time.Millisecond, func() error {
		if err := c.Ping(ctx); err != nil {
			return &RetryableError{Err: err}
		}
		return nil
	})
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}

// Ping checks connectivity.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Get reads key; a missing key is a miss, not an error.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores key with the given ttl; zero means no expiry.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, data, ttl).Err()
}

// Delete removes key.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// Close closes the underlying client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

var _ Cache = (*RedisCache)(nil)
