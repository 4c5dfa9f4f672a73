package middleware

import "github.com/gin-gonic/gin"

// CacheControlMiddleware marks a route's responses as cacheable for the
// given number of seconds. Used for read-mostly routes like the built-in
// blueprint catalog.
func CacheControlMiddleware(duration string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "private, max-age="+duration)
		c.Next()
	}
}
