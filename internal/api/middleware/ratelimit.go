package middleware

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"job-tracker-api/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimit allows at most limit requests per client IP within window for one scope.
// A limiter error lets the request through.
func RateLimit(limiter ratelimit.Limiter, scope string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ip:%s:%s", c.ClientIP(), scope)
		allowed, err := limiter.Allow(c.Request.Context(), key, limit, window)
		if err != nil {
			log.Printf("RateLimit: limiter error for %s, allowing request: %v", key, err)
			c.Next()
			return
		}
		if !allowed {
			log.Printf("RateLimit: %s exceeded %d requests per %s", key, limit, window)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}
		c.Next()
	}
}
