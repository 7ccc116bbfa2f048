package leave

import (
	"context"

	"go-attendance/internal/shared/contextutil"

	"go.uber.org/zap"
)

// Service reports leave entitlements. Every account gets the configured
// annual allowance; nothing is debited yet.
type Service interface {
	Balance(ctx context.Context, userID string) (BalanceResponse, error)
}

type service struct {
	annual int
	logger *zap.Logger
}

func NewService(annual int, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{annual: annual, logger: l}
}

func (s *service) Balance(ctx context.Context, userID string) (BalanceResponse, error) {
	contextutil.GetLogger(ctx, s.logger).Debug("leave balance requested", zap.String("user_id", userID))
	return BalanceResponse{Balance: s.annual}, nil
}
