package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"goalquest/utils"
)

// CORSMiddleware allows the configured frontend origin. ALLOWED_ORIGIN
// defaults to "*" for local development.
func CORSMiddleware() gin.HandlerFunc {
	allowedOrigin := utils.GetEnvAsString("ALLOWED_ORIGIN", "*")

	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods",
			"POST, GET, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
