package middleware

import (
	autherrors "go-attendance/internal/auth/errors"

	"github.com/gin-gonic/gin"
)

// Enforcer decides whether a role may perform action on resource.
type Enforcer interface {
	Enforce(role, resource, action string) (bool, error)
}

// RequireRole runs after AuthMiddleware, so the role it checks is the live one.
func RequireRole(enforcer Enforcer, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		if role == "" {
			reject(c, autherrors.ErrTokenMissing)
			return
		}

		allowed, err := enforcer.Enforce(role, resource, action)
		if err != nil {
			reject(c, err)
			return
		}
		if !allowed {
			reject(c, autherrors.ErrRoleNotAuthorized(role))
			return
		}
		c.Next()
	}
}
