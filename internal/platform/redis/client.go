// Package redis builds the shared Redis connection used by the record map
// backend.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"recordkeeper/internal/platform/config"
)

// Client owns one go-redis connection pool.
type Client struct {
	rdb *redis.Client
}

// New connects using cfg and fails fast if the server does not answer PING.
func New(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	if cfg.Addr == "" {
		return nil, errors.New("redis address is required")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
	c := &Client{rdb: rdb}

	if err := c.Health(ctx); err != nil {
		rdb.Close() //nolint:errcheck // best-effort cleanup on init failure
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return c, nil
}

// Cmdable is the command surface record maps are built on.
func (c *Client) Cmdable() redis.Cmdable {
	return c.rdb
}

// Health pings the server; it doubles as a readiness check.
func (c *Client) Health(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
