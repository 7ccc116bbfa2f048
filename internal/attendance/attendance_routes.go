package attendance

import (
	"go-attendance/internal/middleware"
	"go-attendance/internal/rbac"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts /attendance. idempotency guards check-in/check-out
// and may be nil when Redis is not configured.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, authn gin.HandlerFunc, gate middleware.Enforcer, idempotency gin.HandlerFunc) {
	self := middleware.RequireRole(gate, rbac.ResourceAttendance, rbac.ActionSelf)
	manage := middleware.RequireRole(gate, rbac.ResourceAttendance, rbac.ActionManage)

	writes := func(h gin.HandlerFunc) []gin.HandlerFunc {
		chain := []gin.HandlerFunc{self, middleware.RateLimitByUser(1, 5)}
		if idempotency != nil {
			chain = append(chain, idempotency)
		}
		return append(chain, h)
	}

	attendance := r.Group("/attendance")
	attendance.Use(authn)
	{
		attendance.GET("", manage, h.List)
		attendance.GET("/me", self, h.ListMine)
		attendance.GET("/today", self, h.Today)
		attendance.POST("/check-in", writes(h.CheckIn)...)
		attendance.POST("/check-out", writes(h.CheckOut)...)
		attendance.PUT("/:id", manage, h.Update)
	}
}
