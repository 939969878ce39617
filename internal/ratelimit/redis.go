package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// slidingWindowScript trims the key's sorted set to the window, then records the
// request only when the remaining count is under the limit.
const slidingWindowScript = `
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])
local member = ARGV[4]

redis.call("ZREMRANGEBYSCORE", key, "-inf", "(" .. (now - window))

if redis.call("ZCARD", key) >= limit then
    return 0
end

redis.call("ZADD", key, now, member)
redis.call("PEXPIRE", key, window)
return 1
`

// RedisLimiter shares the request log between replicas through a Redis sorted set per key.
type RedisLimiter struct {
	client *redis.Client
	script *redis.Script
	prefix string
	now    func() time.Time
}

// NewRedisLimiter creates a RedisLimiter storing its keys under "ratelimit:".
func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		script: redis.NewScript(slidingWindowScript),
		prefix: "ratelimit:",
		now:    time.Now,
	}
}

var _ Limiter = (*RedisLimiter)(nil)

// Allow implements Limiter.
func (l *RedisLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	now := l.now().UnixMilli()
	allowed, err := l.script.Run(ctx, l.client,
		[]string{l.prefix + key},
		now,
		window.Milliseconds(),
		limit,
		fmt.Sprintf("%d-%s", now, uuid.NewString()),
	).Int()
	if err != nil {
		return false, fmt.Errorf("rate limit check for %s failed: %w", key, err)
	}
	return allowed == 1, nil
}
