package api

import (
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	caterr "github.com/KirkDiggler/dnd-item-catalog/internal/errors"
)

// RateLimiter counts requests per client IP and route in fixed windows.
// A Redis failure lets the request through.
func RateLimiter(client redis.UniversalClient, maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := "rl:" + c.ClientIP() + ":" + c.Request.Method + ":" + c.FullPath()

		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			log.Printf("Rate limiter unavailable for %s: %v", key, err)
			c.Next()
			return
		}
		if count == 1 {
			if err := client.Expire(ctx, key, window).Err(); err != nil {
				log.Printf("Failed to set rate limit window for %s: %v", key, err)
			}
		}

		remaining := int64(maxRequests) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(maxRequests))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(maxRequests) {
			writeError(c, caterr.RateLimitedf("too many requests, limit is %d per %s", maxRequests, window).
				WithMeta("limit", maxRequests))
			return
		}

		c.Next()
	}
}
