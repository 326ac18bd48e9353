package middlewares

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// Deadline bounds every request with a timeout so a hung store call
// cannot block a request indefinitely. Repositories pick it up via
// WithContext.
func Deadline(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
