package middleware

import (
	apperrors "braik-api/internal/errors"
	"braik-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequirePlatformAdmin allows only platform admins and owners. While
// impersonating the effective user is the target, so admin routes are refused.
func RequirePlatformAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetSessionUser(c)
		if !ok {
			response.Unauthorized(c, "user not authenticated")
			c.Abort()
			return
		}
		if IsImpersonating(c) {
			abortWithError(c, apperrors.ErrImpersonationRestricted)
			return
		}
		if !user.IsPlatformAdmin() {
			abortWithError(c, apperrors.ErrPlatformAdminRequired)
			return
		}
		c.Next()
	}
}

// DenyDuringImpersonation refuses the route while an admin is impersonating.
func DenyDuringImpersonation() gin.HandlerFunc {
	return func(c *gin.Context) {
		if IsImpersonating(c) {
			abortWithError(c, apperrors.ErrImpersonationRestricted)
			return
		}
		c.Next()
	}
}
