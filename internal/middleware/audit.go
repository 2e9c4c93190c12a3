package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/alumnet/admin-gateway/internal/models"
	"github.com/alumnet/admin-gateway/internal/repository"
	"github.com/alumnet/admin-gateway/pkg/middleware/requestid"
)

// Audit records mutations relayed upstream after they succeed. A nil
// repository disables auditing.
func Audit(repo *repository.AuditRepository, action, resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if repo == nil || c.Writer.Status() >= 400 {
			return
		}

		var actorID string
		if stored, ok := c.Get(ContextSessionKey); ok {
			if sess, ok := stored.(*models.Session); ok {
				actorID = sess.User.ID
			}
		}

		_ = repo.Record(c.Request.Context(), &models.AuditEntry{
			ActorID:   actorID,
			Action:    action,
			Resource:  resource,
			TargetID:  c.Param("id"),
			Status:    c.Writer.Status(),
			RequestID: requestid.Value(c),
		})
	}
}
