package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/alumnet/admin-gateway/internal/session"
	appErrors "github.com/alumnet/admin-gateway/pkg/errors"
	"github.com/alumnet/admin-gateway/pkg/response"
)

// ContextSessionKey is the gin context key storing the resolved session.
const ContextSessionKey = "currentSession"

// RequireSession protects routes by requiring an established admin session.
// The token comes from the session cookie or a bearer header; either way it
// must resolve to a stored session slot.
func RequireSession(store *session.Store, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c, cookieName)
		if token == "" {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		sess, err := store.Get(c.Request.Context(), token)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		if store.TokenExpired(sess.Token) {
			_ = store.Clear(c.Request.Context(), token)
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "Session expired. Please log in again."))
			c.Abort()
			return
		}

		c.Set(ContextSessionKey, sess)
		c.Next()
	}
}

func extractToken(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
