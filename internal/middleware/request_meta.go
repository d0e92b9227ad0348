package middleware

import (
	"braik-api/internal/audit"
	"braik-api/internal/logger"

	"github.com/gin-gonic/gin"
)

// RequestMeta copies the request ID, client IP and user agent into the
// request context for audit rows. Must run after logger.GinMiddleware.
func RequestMeta() gin.HandlerFunc {
	return func(c *gin.Context) {
		meta := audit.MetaFromContext(c.Request.Context())
		meta.RequestID = c.GetString(logger.RequestIDKey)
		meta.IPAddress = c.ClientIP()
		meta.UserAgent = c.Request.UserAgent()
		c.Request = c.Request.WithContext(audit.WithRequestMeta(c.Request.Context(), meta))
		c.Next()
	}
}
