// Package cache provides the Redis-backed rate limiting applied to the
// auth endpoints. It is optional: main wires a Cache only when REDIS_URL
// is set, and the limiter middleware fails open without one.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache holds the Redis connection shared by the rate limiter and the
// readiness check.
type Cache struct {
	client *redis.Client
}

// New connects to Redis at redisURL and verifies the connection before
// returning. The pool is kept small: only register/login traffic goes
// through it.
func New(ctx context.Context, redisURL string) (*Cache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	opt.PoolSize = 4
	opt.MinIdleConns = 1
	opt.PoolTimeout = 3 * time.Second
	opt.ConnMaxIdleTime = 5 * time.Minute

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Cache{client: client}, nil
}

// Ping checks Redis connectivity for the readiness probe.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis client.
func (c *Cache) Close() error {
	return c.client.Close()
}

// FlushDB clears the current database. Integration tests call it to
// start from an empty keyspace; nothing in the serving path does.
func (c *Cache) FlushDB(ctx context.Context) error {
	return c.client.FlushDB(ctx).Err()
}
