// Package redis wraps the go-redis client for the small slice of Redis
// this service uses: a bootstrap connectivity check and the
// fixed-window rate limiter backing register/login.
package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const pingTimeout = 2 * time.Second

// Client owns the underlying connection pool. Redis is optional for
// this service; an unreachable client just disables rate limiting.
type Client struct {
	rdb *goredis.Client
}

func New(addr, password string, db int) *Client {
	return &Client{
		rdb: goredis.NewClient(&goredis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

// Ping verifies connectivity with a short deadline so bootstrap fails
// over quickly instead of hanging on a dead address.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return c.rdb.Ping(ctx).Err()
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
