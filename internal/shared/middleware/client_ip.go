package middleware

import (
	"github.com/gin-gonic/gin"

	"bookstore-search/internal/shared/utils"
)

// ClientIPMiddleware extracts the client IP address once and stores it as "client_ip"
// for the logger and the rate limiter.
//
// Usage:
//
//	router.Use(middleware.ClientIPMiddleware())
func ClientIPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("client_ip", utils.ExtractClientIP(c.Request))
		c.Next()
	}
}

// clientIP falls back to extracting the address when the middleware did not run
func clientIP(c *gin.Context) string {
	if ip := c.GetString("client_ip"); ip != "" {
		return ip
	}
	return utils.ExtractClientIP(c.Request)
}
