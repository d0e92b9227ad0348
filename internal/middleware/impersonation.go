package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"braik-api/internal/audit"
	apperrors "braik-api/internal/errors"
	"braik-api/internal/logger"
	"braik-api/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// SupportCookieName is the cookie carrying the raw impersonation token.
const SupportCookieName = "braik_support_token"

// ImpersonationResolver looks up a live impersonation session by raw token.
type ImpersonationResolver interface {
	Resolve(ctx context.Context, rawToken string) (*models.ImpersonationSession, error)
}

// UserLoader loads a user record.
type UserLoader interface {
	GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// Impersonation swaps the effective user for the session's target when the
// support cookie belongs to the signed-in admin. A dead or foreign cookie is
// cleared and the request continues as the admin. Must run after Auth.
func Impersonation(resolver ImpersonationResolver, users UserLoader, secureCookies bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SupportCookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		admin, ok := GetSessionUser(c)
		if !ok {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		log := logger.FromContext(ctx)

		session, err := resolver.Resolve(ctx, token)
		if err != nil {
			if !isImpersonationRejection(err) {
				log.Error("impersonation lookup failed", zap.Error(err))
			}
			ClearSupportCookie(c, secureCookies)
			c.Next()
			return
		}

		if session.ActorAdminID != admin.ID || !admin.IsPlatformAdmin() {
			log.Warn("support token presented by another user",
				zap.String("user_id", admin.ID.Hex()),
				zap.String("session_id", session.ID.Hex()))
			ClearSupportCookie(c, secureCookies)
			c.Next()
			return
		}

		target, err := users.GetUser(ctx, session.TargetUserID)
		if err != nil {
			log.Warn("impersonation target unavailable",
				zap.String("target_user_id", session.TargetUserID.Hex()), zap.Error(err))
			ClearSupportCookie(c, secureCookies)
			c.Next()
			return
		}

		c.Set(ImpersonatorKey, admin)
		c.Set(ImpersonationKey, session)
		c.Set(SessionUserKey, models.NewSessionUser(target))
		c.Request = c.Request.WithContext(audit.WithImpersonator(ctx, admin.ID))
		c.Next()
	}
}

func isImpersonationRejection(err error) bool {
	return errors.Is(err, apperrors.ErrImpersonationInvalid) || errors.Is(err, apperrors.ErrImpersonationExpired)
}

// SetSupportCookie stores the raw impersonation token until expiresAt.
func SetSupportCookie(c *gin.Context, token string, expiresAt time.Time, secure bool) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     SupportCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSupportCookie expires the impersonation cookie.
func ClearSupportCookie(c *gin.Context, secure bool) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     SupportCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
