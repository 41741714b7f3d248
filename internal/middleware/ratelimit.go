package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
)

// RateLimit rejects requests once limiter is exhausted.
func RateLimit(limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			logger.Named("stubapi").Warnw("rate limit exceeded", "path", c.Request.URL.Path)
			abortWithError(c, apperrors.ErrRateLimited)
			return
		}
		c.Next()
	}
}
