package app

import (
	"go-attendance/internal/attendance"
	"go-attendance/internal/bootstrap"
	"go-attendance/internal/shared/config"
	"go-attendance/internal/shared/connection"
	"go-attendance/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// BuildApp connects the stores, migrates the schema and mounts every module on router.
func BuildApp(router *gin.Engine, cfg config.Config, logger *zap.Logger, audit bootstrap.AuditLogger) error {
	db, err := connection.ConnectGORMWithRetry(cfg.DB, logger)
	if err != nil {
		return err
	}

	if err := db.AutoMigrate(&user.User{}, &attendance.Attendance{}); err != nil {
		return err
	}
	logger.Info("schema migrated")

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.Redis, logger)
		if err != nil {
			return err
		}
	} else {
		logger.Info("REDIS_ADDR not set, idempotency keys disabled")
	}

	return registerModules(router, cfg, db, rdb, logger, audit)
}
