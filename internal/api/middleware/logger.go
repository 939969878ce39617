package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger logs one line per request: method, path, client IP, status, latency and,
// when the route is authenticated, the caller's user ID.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + raw
		}

		c.Next()

		user := "-"
		if userID, err := GetUserIDFromContext(c); err == nil {
			user = userID.String()
		}

		log.Printf(
			"[%s] %s %s user=%s %d %s",
			c.Request.Method,
			path,
			c.ClientIP(),
			user,
			c.Writer.Status(),
			time.Since(start),
		)
		if len(c.Errors) > 0 {
			log.Printf("Request errors for %s %s: %s", c.Request.Method, path, c.Errors.String())
		}
	}
}
