package report

import (
	"go-attendance/internal/middleware"
	"go-attendance/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authn gin.HandlerFunc, gate middleware.Enforcer) {
	r.GET("/attendance/export", authn, middleware.RequireRole(gate, rbac.ResourceReports, rbac.ActionManage), h.ExportAttendance)
	r.GET("/payroll/me/statement", authn, middleware.RequireRole(gate, rbac.ResourcePayroll, rbac.ActionSelf), h.PayrollStatement)
}
