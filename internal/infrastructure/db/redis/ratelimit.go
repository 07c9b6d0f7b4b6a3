package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter provides a fixed-window counter backed by Redis.
// Key format: ratelimit:login:<key>
type RateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewRateLimiter creates a limiter allowing limit calls per window per key.
func NewRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	if limit <= 0 {
		limit = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{client: client, limit: limit, window: window}
}

// Allow increments the caller's window counter and reports whether the
// call is within the limit. The window expiry is set when the counter is
// first created.
func (rl *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := rl.key(key)

	n, err := rl.client.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		if err := rl.client.Expire(ctx, k, rl.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n <= int64(rl.limit), nil
}

func (rl *RateLimiter) key(key string) string {
	return "ratelimit:login:" + key
}
