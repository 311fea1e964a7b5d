package ratelimit

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisLimiter is a fixed-window limiter shared by every API instance through Redis.
type RedisLimiter struct {
	rdb    redis.Scripter
	limit  int
	window time.Duration
	prefix string
}

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

func NewRedisLimiter(rdb redis.Scripter, limit int, window time.Duration, prefix string) *RedisLimiter {
	if limit <= 0 {
		limit = 60
	}
	if window <= 0 {
		window = time.Minute
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "rl"
	}
	return &RedisLimiter{rdb: rdb, limit: limit, window: window, prefix: prefix}
}

// Middleware counts requests per client IP. With failOpen, Redis errors let the request through.
func (l *RedisLimiter) Middleware(logger *zap.Logger, failOpen bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := l.prefix + ":" + c.ClientIP()

		count, err := l.Allow(c.Request.Context(), key)
		if err != nil {
			logger.Warn("redis rate limiter error", zap.String("key", key), zap.Error(err))
			if failOpen {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"error":   "rate_limiter_unavailable",
				"message": "rate limiter unavailable",
			})
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(l.limit))
		remaining := int64(l.limit) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(l.limit) {
			c.Header("Retry-After", strconv.Itoa(int(l.window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   "rate_limited",
				"message": "too many requests, try again later",
			})
			return
		}

		c.Next()
	}
}

// Allow increments the counter of key and returns its value within the current window.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (int64, error) {
	ms := l.window.Milliseconds()
	if ms <= 0 {
		ms = time.Minute.Milliseconds()
	}

	res, err := fixedWindowScript.Run(ctx, l.rdb, []string{key}, ms).Result()
	if err != nil {
		return 0, err
	}

	switch v := res.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, err
		}
		return n, nil
	default:
		return 0, fmt.Errorf("unexpected redis script result type %T", res)
	}
}
