package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	"fintrack/internal/session"
)

// Context keys set by AccessGate.
const (
	UserIDKey  = "userID"
	EmailKey   = "email"
	SessionKey = "session"
)

// AllowListChecker answers whether an email may use the application.
type AllowListChecker interface {
	IsAllowListed(ctx context.Context, email string) (bool, error)
}

// AccessGate resolves the bearer token to a session and admits it only when
// its email is allow-listed. A session that fails the allow-list is signed
// out before the request is rejected.
func AccessGate(provider session.Provider, allowList AllowListChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortWithError(c, apperrors.ErrUnauthorized)
			return
		}

		ctx := c.Request.Context()
		sess, err := provider.Authenticate(ctx, token)
		if err != nil {
			if !errors.Is(err, session.ErrInvalidSession) {
				logger.Get().Warnw("session provider error", "error", err, "path", c.Request.URL.Path)
			}
			abortWithError(c, apperrors.ErrInvalidSession)
			return
		}

		allowed, err := allowList.IsAllowListed(ctx, sess.Email)
		if err != nil {
			abortWithError(c, err)
			return
		}
		if !allowed {
			if err := provider.SignOut(ctx, sess); err != nil {
				logger.Get().Errorw("failed to sign out rejected session", "user_id", sess.UserID, "error", err)
			}
			logger.Get().Warnw("rejected session for email not on the allow-list",
				"user_id", sess.UserID,
				"email", sess.Email,
			)
			abortWithError(c, apperrors.ErrNotAllowListed)
			return
		}

		c.Set(UserIDKey, sess.UserID)
		c.Set(EmailKey, sess.Email)
		c.Set(SessionKey, sess)
		c.Next()
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}
