package redis

import (
	"context"
	"fmt"
	"time"
)

// FixedWindowLimiter implements a fixed-window rate limiter on Redis:
// INCR key; on first hit, EXPIRE key to the window length.
// The key should already include identity + route + window bucket.
type FixedWindowLimiter struct {
	client *Client
}

func NewFixedWindowLimiter(c *Client) *FixedWindowLimiter {
	return &FixedWindowLimiter{client: c}
}

type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration // 0 if allowed
	Count      int
}

// AllowFixedWindow returns whether the request is allowed for key+window.
// With no Redis configured it fails open.
func (l *FixedWindowLimiter) AllowFixedWindow(ctx context.Context, key string, limit int, window time.Duration) (Decision, error) {
	if limit <= 0 {
		return Decision{Allowed: true, Limit: limit, Remaining: limit}, nil
	}
	if window <= 0 {
		window = time.Minute
	}
	if l == nil || l.client == nil {
		return Decision{Allowed: true, Limit: limit, Remaining: limit}, nil
	}

	// Lua keeps INCR + first-hit PEXPIRE atomic. Returns {count, pttl_ms}.
	const lua = `
local c = redis.call("INCR", KEYS[1])
if c == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
return {c, ttl}
`
	res, err := l.client.rdb.Eval(ctx, lua, []string{key}, window.Milliseconds()).Result()
	if err != nil {
		return Decision{}, fmt.Errorf("ratelimit redis eval: %w", err)
	}

	arr, ok := res.([]any)
	if !ok || len(arr) != 2 {
		return Decision{}, fmt.Errorf("ratelimit redis eval: unexpected result type")
	}

	count := int(arr[0].(int64))
	ttl := time.Duration(arr[1].(int64)) * time.Millisecond

	d := Decision{
		Allowed:   count <= limit,
		Limit:     limit,
		Remaining: max(0, limit-count),
		Count:     count,
	}
	if !d.Allowed {
		d.RetryAfter = ttl
		if d.RetryAfter <= 0 {
			d.RetryAfter = window
		}
	}
	return d, nil
}
