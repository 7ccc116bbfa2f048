package payroll

import (
	"context"
	"errors"
	"time"

	"go-attendance/internal/attendance"
	attendanceerrors "go-attendance/internal/attendance/errors"
	"go-attendance/internal/shared/contextutil"
	"go-attendance/internal/shared/timeutil"
	"go-attendance/internal/user"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Estimate(ctx context.Context, userID string, rng timeutil.Range) (EstimateResponse, error)
	Dashboard(ctx context.Context, userID string) (DashboardResponse, error)
}

type service struct {
	attendances attendance.Repository
	users       user.Repository
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
			s.logger = l.Named("payroll.service")
		}
	}
}

func NewService(attendances attendance.Repository, users user.Repository, opts ...Option) Service {
	s := &service{
		attendances: attendances,
		users:       users,
		now:         timeutil.SystemClock,
		logger:      zap.L().Named("payroll.service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Estimate prices userID's records in rng at the account's current hourly rate.
func (s *service) Estimate(ctx context.Context, userID string, rng timeutil.Range) (EstimateResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return EstimateResponse{}, err
	}

	records, err := s.attendances.FindAll(ctx, attendance.ListFilter{UserID: userID, Range: rng})
	if err != nil {
		log.Error("payroll estimate load failed", zap.String("user_id", userID), zap.Error(err))
		return EstimateResponse{}, err
	}

	summary := Estimate(records, decimal.NewFromFloat(u.HourlyRate))
	resp := ToEstimateResponse(summary, rng)
	resp.UserID = u.ID.String()
	resp.Name = u.Name
	resp.Email = u.Email

	log.Debug("payroll estimated",
		zap.String("user_id", userID),
		zap.Int("days_worked", summary.DaysWorked),
		zap.String("total_pay", summary.TotalPay.StringFixed(2)),
	)
	return resp, nil
}

func (s *service) Dashboard(ctx context.Context, userID string) (DashboardResponse, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return DashboardResponse{}, err
	}
	rate := decimal.NewFromFloat(u.HourlyRate)
	now := s.now()

	resp := DashboardResponse{HourlyRate: money(rate)}

	today, err := s.attendances.FindByUserAndDate(ctx, userID, timeutil.StartOfDay(now))
	switch {
	case err == nil:
		resp.HoursToday = DailyHours(today.TotalSeconds).InexactFloat64()
	case !errors.Is(err, attendanceerrors.ErrAttendanceNotFound):
		return DashboardResponse{}, err
	}

	current, err := s.monthSummary(ctx, userID, now, rate)
	if err != nil {
		return DashboardResponse{}, err
	}
	resp.MonthHours = current.TotalHours.InexactFloat64()
	resp.CurrentMonthPayroll = money(current.TotalPay)
	resp.DaysWorkedCurrentMonth = current.DaysWorked

	last, err := s.monthSummary(ctx, userID, timeutil.StartOfMonth(now).AddDate(0, -1, 0), rate)
	if err != nil {
		return DashboardResponse{}, err
	}
	resp.LastMonthHours = last.TotalHours.InexactFloat64()
	resp.LastMonthPay = money(last.TotalPay)
	resp.DaysWorkedLastMonth = last.DaysWorked

	return resp, nil
}

func (s *service) monthSummary(ctx context.Context, userID string, inMonth time.Time, rate decimal.Decimal) (Summary, error) {
	records, err := s.attendances.FindAll(ctx, attendance.ListFilter{
		UserID: userID,
		Range:  timeutil.MonthRange(inMonth),
	})
	if err != nil {
		return Summary{}, err
	}
	return Estimate(records, rate), nil
}
