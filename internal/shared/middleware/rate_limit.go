package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookstore-search/internal/shared/response"
	"bookstore-search/pkg/metrics"
	"bookstore-search/pkg/ratelimit"
)

// RateLimit rejects requests over the limiter's budget with 429, keyed by client IP.
// When the limiter itself fails the request is let through.
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := clientIP(c)

		allowed, err := limiter.Allow(c.Request.Context(), ip)
		if err != nil {
			log.Warn().Err(err).Str("ip", ip).Msg("Rate limiter unavailable, allowing request")
			c.Next()
			return
		}

		if !allowed {
			metrics.RateLimitedTotal.Inc()
			response.TooManyRequests(c, "Too many requests, please slow down")
			return
		}

		c.Next()
	}
}
