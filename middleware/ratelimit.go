package middleware

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"travel-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// Limiter counts hits for a key inside a fixed window.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// RedisLimiter keeps one counter per key and window in Redis.
type RedisLimiter struct {
	Client *redis.Client
}

func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	return &RedisLimiter{Client: client}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	count, err := l.Client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := l.Client.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(limit), nil
}

// RateLimit caps requests per client IP for one scope. A nil limiter or a
// non-positive limit turns it off. Limiter errors let the request through.
func RateLimit(limiter Limiter, scope string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil || limit <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s:%s", scope, c.ClientIP())
		allowed, err := limiter.Allow(c.Request.Context(), key, limit, window)
		if err != nil {
			log.Printf("⚠️ rate limiter unavailable for %s: %v", scope, err)
			c.Next()
			return
		}
		if !allowed {
			utils.AbortWithError(c, http.StatusTooManyRequests, "Too many requests, please try again later.")
			return
		}
		c.Next()
	}
}
