package middleware

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/acadledger-api/internal/models"
	"github.com/noah-isme/acadledger-api/pkg/middleware/requestid"
)

// AuditRecorder appends journal entries. Satisfied by the audit repository.
type AuditRecorder interface {
	Create(ctx context.Context, entry *models.AuditEntry) error
}

// Audit creates middleware that journals successful mutating requests.
// Journal failures never affect the request outcome.
func Audit(recorder AuditRecorder, action, resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now().UTC()
		c.Next()

		if recorder == nil || c.Writer.Status() >= 400 {
			return
		}

		var caller *models.Identity
		if id := CallerIdentity(c); !id.IsZero() {
			caller = &id
		}

		detail, _ := json.Marshal(map[string]interface{}{
			"path":    c.FullPath(),
			"method":  c.Request.Method,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).Milliseconds(),
		})

		_ = recorder.Create(c.Request.Context(), &models.AuditEntry{
			Caller:    caller,
			Action:    action,
			Resource:  resource,
			RequestID: requestid.Value(c),
			Status:    c.Writer.Status(),
			Detail:    detail,
			IPAddress: c.ClientIP(),
			UserAgent: c.GetHeader("User-Agent"),
		})
	}
}
