package employee

import (
	"go-attendance/internal/middleware"
	"go-attendance/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authn gin.HandlerFunc, gate middleware.Enforcer) {
	employees := r.Group("/employees")
	employees.Use(authn)
	{
		employees.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RequireRole(gate, rbac.ResourceEmployees, rbac.ActionManage),
			handler.GetAll,
		)

		// Employees may read their own record; the service enforces ownership.
		employees.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RequireRole(gate, rbac.ResourceEmployees, rbac.ActionSelf),
			handler.GetByID,
		)

		employees.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RequireRole(gate, rbac.ResourceEmployees, rbac.ActionManage),
			handler.Update,
		)

		employees.DELETE("/:id",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RequireRole(gate, rbac.ResourceEmployees, rbac.ActionManage),
			handler.Delete,
		)
	}
}
