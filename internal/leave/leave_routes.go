package leave

import (
	"go-attendance/internal/middleware"
	"go-attendance/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authn gin.HandlerFunc, gate middleware.Enforcer) {
	leave := r.Group("/leave")
	leave.Use(authn)
	{
		leave.GET("/my-balance", middleware.RequireRole(gate, rbac.ResourceLeave, rbac.ActionSelf), handler.MyBalance)
	}
}
