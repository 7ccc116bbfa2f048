package auth

import (
	"go-attendance/internal/middleware"
	"go-attendance/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authn gin.HandlerFunc, gate middleware.Enforcer) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", middleware.RateLimitByIP(0.1, 5), handler.Register)
		auth.POST("/login", middleware.RateLimitByIP(0.08, 5), handler.Login)
		auth.POST("/logout", handler.Logout)

		auth.GET("/me", authn, middleware.RequireRole(gate, rbac.ResourceAccount, rbac.ActionSelf), handler.Me)
		auth.PUT("/profile", authn, middleware.RequireRole(gate, rbac.ResourceAccount, rbac.ActionSelf), middleware.RateLimitByUser(2, 5), handler.UpdateProfile)

		auth.POST("/admin/register", authn, middleware.RequireRole(gate, rbac.ResourceAccount, rbac.ActionCreate), handler.AdminRegister)
	}
}
