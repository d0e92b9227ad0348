package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	apperrors "braik-api/internal/errors"
	"braik-api/internal/models"
	"braik-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "braik_session"

// SessionResolver turns a session token into the user it belongs to.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (*models.SessionUser, error)
}

// Auth returns a middleware that requires a valid session token, read from
// the Authorization header or the session cookie.
func Auth(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := sessionToken(c)
		if !ok {
			response.Unauthorized(c, "missing session")
			c.Abort()
			return
		}

		user, err := resolver.ResolveSession(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, apperrors.ErrTokenExpired) {
				response.Unauthorized(c, "session expired")
				c.Abort()
				return
			}
			if errors.Is(err, apperrors.ErrInvalidToken) || errors.Is(err, apperrors.ErrUnauthorized) {
				response.Unauthorized(c, "invalid session")
				c.Abort()
				return
			}
			abortWithError(c, err)
			return
		}

		c.Set(SessionUserKey, user)
		c.Next()
	}
}

func sessionToken(c *gin.Context) (string, bool) {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return "", false
		}
		return strings.TrimSpace(parts[1]), true
	}

	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie == "" {
		return "", false
	}
	return cookie, true
}

// SetSessionCookie stores the session token until expiresAt.
func SetSessionCookie(c *gin.Context, token string, expiresAt time.Time, secure bool) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c *gin.Context, secure bool) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
