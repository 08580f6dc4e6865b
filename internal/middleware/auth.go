package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/acadledger-api/internal/models"
	"github.com/noah-isme/acadledger-api/internal/service"
	appErrors "github.com/noah-isme/acadledger-api/pkg/errors"
	"github.com/noah-isme/acadledger-api/pkg/response"
)

// ContextIdentityKey is the gin context key storing the caller identity.
const ContextIdentityKey = "callerIdentity"

// Auth protects routes by requiring a valid bearer token. It resolves the
// token to an opaque identity; role decisions belong to the ledger.
func Auth(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "invalid authorization header"))
			c.Abort()
			return
		}

		identity, err := authService.ValidateToken(parts[1])
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(ContextIdentityKey, identity)
		c.Next()
	}
}

// CallerIdentity returns the identity resolved by Auth, or the zero value.
func CallerIdentity(c *gin.Context) models.Identity {
	if v, ok := c.Get(ContextIdentityKey); ok {
		if id, ok := v.(models.Identity); ok {
			return id
		}
	}
	return ""
}
