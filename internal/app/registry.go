package app

import (
	"net/http"
	"time"

	"go-attendance/internal/attendance"
	"go-attendance/internal/auth"
	"go-attendance/internal/auth/token"
	"go-attendance/internal/bootstrap"
	"go-attendance/internal/employee"
	"go-attendance/internal/leave"
	"go-attendance/internal/middleware"
	"go-attendance/internal/payroll"
	"go-attendance/internal/rbac"
	"go-attendance/internal/report"
	"go-attendance/internal/shared/config"
	"go-attendance/internal/shared/response"
	"go-attendance/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const idempotencyTTL = 24 * time.Hour

// registerModules wires repositories, services and handlers. rdb may be nil.
func registerModules(
	router *gin.Engine,
	cfg config.Config,
	db *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
	audit bootstrap.AuditLogger,
) error {
	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS.Origins),
	)

	// --- Repositories ---
	userRepo := user.NewRepository(db)
	attendanceRepo := attendance.NewRepository(db)

	// --- Access control ---
	rbacService, err := rbac.NewService(rbac.DefaultPolicies(), logger)
	if err != nil {
		return err
	}
	tokens := token.NewManager(cfg.JWT.Secret, cfg.JWT.TTL)
	authn := middleware.AuthMiddleware(tokens, userRepo)

	var idempotency gin.HandlerFunc
	if rdb != nil {
		idempotency = middleware.Idempotency(rdb, idempotencyTTL)
	}

	// --- Services ---
	authService := auth.NewService(userRepo, tokens, auth.WithAuditLogger(audit), auth.WithLogger(logger))
	employeeService := employee.NewService(userRepo, audit, logger)
	attendanceService := attendance.NewService(attendanceRepo, attendance.WithAuditLogger(audit), attendance.WithLogger(logger))
	payrollService := payroll.NewService(attendanceRepo, userRepo, payroll.WithLogger(logger))
	reportService := report.NewService(attendanceRepo, userRepo, payrollService, report.WithLogger(logger))
	leaveService := leave.NewService(cfg.Leave.Balance, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, !cfg.IsDevelopment(), logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	attendanceHandler := attendance.NewHandler(attendanceService, logger)
	payrollHandler := payroll.NewHandler(payrollService, logger)
	reportHandler := report.NewHandler(reportService)
	leaveHandler := leave.NewHandler(leaveService, logger)

	// --- Routes Registration ---
	router.GET("/healthz", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"}, nil)
	})

	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler, authn, rbacService)
		employee.RegisterRoutes(api, employeeHandler, authn, rbacService)
		attendance.RegisterRoutes(api, attendanceHandler, authn, rbacService, idempotency)
		payroll.RegisterRoutes(api, payrollHandler, authn, rbacService)
		report.RegisterRoutes(api, reportHandler, authn, rbacService)
		leave.RegisterRoutes(api, leaveHandler, authn, rbacService)
	}

	router.NoRoute(response.NoRoute)
	return nil
}
