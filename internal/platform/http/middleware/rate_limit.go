package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"garden_backend/internal/shared/ratelimiter"
)

// RateLimit rejects clients that exceed limiter with 429, keyed by client IP.
func RateLimit(limiter ratelimiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, retryAfter := limiter.Allow(c.ClientIP())
		if ok {
			c.Next()
			return
		}
		slog.Warn("rate limit exceeded", "path", c.FullPath(), "remote_addr", c.ClientIP())
		c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
	}
}
