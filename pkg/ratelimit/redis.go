package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter allows at most limit requests per key in each fixed window.
// The counter lives in Redis so every instance shares it.
type RedisLimiter struct {
	client *redis.Client
	prefix string
	limit  int
	window time.Duration
}

func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: "ratelimit:search",
		limit:  limit,
		window: window,
	}
}

// WindowKey is the redis key counting requests of key in the window containing now.
func (l *RedisLimiter) WindowKey(key string, now time.Time) string {
	return fmt.Sprintf("%s:%s:%d", l.prefix, key, now.UnixNano()/int64(l.window))
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	windowKey := l.WindowKey(key, time.Now())

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, windowKey)
	pipe.Expire(ctx, windowKey, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit counter: %w", err)
	}

	return incr.Val() <= int64(l.limit), nil
}
