package payroll

import (
	"go-attendance/internal/middleware"
	"go-attendance/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authn gin.HandlerFunc, gate middleware.Enforcer) {
	payroll := r.Group("/payroll")
	payroll.Use(authn)
	{
		payroll.GET("/me", middleware.RequireRole(gate, rbac.ResourcePayroll, rbac.ActionSelf), handler.Me)
		payroll.GET("/me/dashboard", middleware.RequireRole(gate, rbac.ResourcePayroll, rbac.ActionSelf), handler.Dashboard)
		payroll.GET("/estimate", middleware.RequireRole(gate, rbac.ResourcePayroll, rbac.ActionManage), handler.Estimate)
	}
}
