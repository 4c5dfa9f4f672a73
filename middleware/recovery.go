package middleware

import (
	"log"

	"github.com/gin-gonic/gin"

	"goalquest/utils"
)

func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic recovered: %v (%s %s)", err, c.Request.Method, c.Request.URL.Path)
				utils.TrackError("panic", "handler")
				utils.InternalError(c, "Internal server error")
				c.Abort()
			}
		}()
		c.Next()
	}
}
