package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "contact:ratelimit:"

// RedisLimiter is a fixed-window counter backed by a shared Redis instance,
// for deployments with more than one server process. The window is enforced
// with INCR + PEXPIRE, so all instances see the same counts.
type RedisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewRedisLimiter creates a limiter allowing limit requests per window per key.
func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, limit: limit, window: window}
}

// Allow implements Limiter. On a Redis error it fails open (Allowed=true) and
// returns the error so the caller can log it: losing rate limiting briefly is
// preferable to rejecting legitimate submissions.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	now := time.Now()
	redisKey := redisKeyPrefix + key

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	ttl := pipe.PTTL(ctx, redisKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return Decision{Allowed: true, Remaining: l.limit - 1, ResetTime: now.Add(l.window)}, err
	}

	count := int(incr.Val())
	resetTime := now.Add(l.window)
	if count == 1 || ttl.Val() < 0 {
		// First request in the window, or a key left without expiry.
		if err := l.client.PExpire(ctx, redisKey, l.window).Err(); err != nil {
			return Decision{Allowed: true, Remaining: l.limit - 1, ResetTime: resetTime}, err
		}
	} else {
		resetTime = now.Add(ttl.Val())
	}

	if count > l.limit {
		return Decision{Allowed: false, Remaining: 0, ResetTime: resetTime}, nil
	}
	return Decision{Allowed: true, Remaining: l.limit - count, ResetTime: resetTime}, nil
}
