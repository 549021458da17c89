package middleware

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/undead-bacteria/ecommerce-api-men/domain"
	"github.com/undead-bacteria/ecommerce-api-men/internal/http/respond"
)

// RateLimiter throttles requests per client IP over a fixed window backed
// by a Redis counter.
type RateLimiter struct {
	rdb    *redis.Client
	window time.Duration
	max    int64
}

// NewRateLimiter creates a rate limiter with the default per-window limit
func NewRateLimiter(rdb *redis.Client, window time.Duration, max int64) *RateLimiter {
	return &RateLimiter{
		rdb:    rdb,
		window: window,
		max:    max,
	}
}

// Limit throttles the route to max requests per window and IP. Zero means
// the limiter's default. Redis failures let the request through.
func (rl *RateLimiter) Limit(max int64) gin.HandlerFunc {
	if max <= 0 {
		max = rl.max
	}
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := fmt.Sprintf("ratelimit:%s:%s", c.FullPath(), c.ClientIP())

		count, err := rl.rdb.Incr(ctx, key).Result()
		if err != nil {
			log.Printf("RATE_LIMIT_SKIPPED: key=%s error=%v", key, err)
			c.Next()
			return
		}
		if count == 1 {
			rl.rdb.Expire(ctx, key, rl.window)
		}

		if count > max {
			respond.AbortError(c, domain.NewError(http.StatusTooManyRequests, "Too many requests, please try again later."))
			return
		}
		c.Next()
	}
}
