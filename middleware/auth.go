package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"foodhub-api/apperr"
	"foodhub-api/models"
	"foodhub-api/response"
	"foodhub-api/services"
)

const (
	identityKey = "identity"
	tokenKey    = "token"
)

// AuthRequired resolves the bearer token to an identity through the
// session store and injects it into the request context.
func AuthRequired(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.Error(c, apperr.Unauthenticated("Authentication required"))
			c.Abort()
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		ident, err := auth.ResolveSession(c.Request.Context(), token)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(identityKey, ident)
		c.Set(tokenKey, token)
		c.Next()
	}
}

// RoleRequired rejects callers whose resolved role is not in the allowed
// set. Runs after AuthRequired; pure in-memory check.
func RoleRequired(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := GetIdentity(c)
		if ident == nil {
			response.Error(c, apperr.Unauthenticated("Authentication required"))
			c.Abort()
			return
		}
		for _, r := range roles {
			if ident.Role == r {
				c.Next()
				return
			}
		}
		response.Error(c, apperr.Forbidden("You do not have permission to perform this action"))
		c.Abort()
	}
}

// GetIdentity returns the caller resolved by AuthRequired, or nil.
func GetIdentity(c *gin.Context) *services.Identity {
	val, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	ident, _ := val.(*services.Identity)
	return ident
}

// GetToken returns the bearer token presented on this request.
func GetToken(c *gin.Context) string {
	return c.GetString(tokenKey)
}
