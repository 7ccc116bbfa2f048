package report

import (
	"context"
	"net/http"
	"time"

	"go-attendance/internal/attendance"
	"go-attendance/internal/payroll"
	"go-attendance/internal/shared/apperror"
	"go-attendance/internal/shared/contextutil"
	"go-attendance/internal/shared/timeutil"
	"go-attendance/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	AttendanceWorkbook(ctx context.Context, filter attendance.ListFilter) ([]byte, error)
	PayrollStatement(ctx context.Context, userID string, rng timeutil.Range) ([]byte, error)
}

type service struct {
	attendances attendance.Repository
	users       user.Repository
	payrolls    payroll.Service
	now         timeutil.Clock
	logger      *zap.Logger
}

type Option func(*service)

func WithClock(now timeutil.Clock) Option {
	return func(s *service) { s.now = now }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *service) {
		if l != nil {
			s.logger = l.Named("report.service")
		}
	}
}

func NewService(attendances attendance.Repository, users user.Repository, payrolls payroll.Service, opts ...Option) Service {
	s := &service{
		attendances: attendances,
		users:       users,
		payrolls:    payrolls,
		now:         timeutil.SystemClock,
		logger:      zap.L().Named("report.service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func renderFailed(err error) error {
	return apperror.Wrap(err, apperror.CodeInternalError, "Failed to generate report", http.StatusInternalServerError)
}

// AttendanceWorkbook exports the filtered records plus one payroll estimate
// per employee that appears in them.
func (s *service) AttendanceWorkbook(ctx context.Context, filter attendance.ListFilter) ([]byte, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	records, err := s.attendances.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{})
	ids := make([]uuid.UUID, 0)
	for _, r := range records {
		if _, ok := seen[r.UserID]; ok {
			continue
		}
		seen[r.UserID] = struct{}{}
		ids = append(ids, r.UserID)
	}

	accounts, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out, err := renderWorkbook(records, buildPayrollRows(records, accounts))
	if err != nil {
		log.Error("attendance workbook render failed", zap.Error(err))
		return nil, renderFailed(err)
	}

	log.Info("attendance workbook exported",
		zap.Int("records", len(records)),
		zap.Int("employees", len(accounts)),
	)
	return out, nil
}

func (s *service) PayrollStatement(ctx context.Context, userID string, rng timeutil.Range) ([]byte, error) {
	est, err := s.payrolls.Estimate(ctx, userID, rng)
	if err != nil {
		return nil, err
	}

	out, err := renderStatement(est, s.now().Format(time.RFC1123))
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("payroll statement render failed", zap.Error(err))
		return nil, renderFailed(err)
	}
	return out, nil
}
