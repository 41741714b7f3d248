package middleware

import (
	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
)

// PlatformHeader identifies the calling client.
const PlatformHeader = "X-Client-Platform"

// RequirePlatform rejects requests that do not identify their client
// platform.
func RequirePlatform() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader(PlatformHeader) == "" {
			abortWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Missing "+PlatformHeader+" header"))
			return
		}
		c.Next()
	}
}
