package attendance

import (
	"context"
	"errors"
	"time"

	attendanceerrors "go-attendance/internal/attendance/errors"
	"go-attendance/internal/bootstrap"
	"go-attendance/internal/shared/contextutil"
	"go-attendance/internal/shared/timeutil"
	usererrors "go-attendance/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	CheckIn(ctx context.Context, userID string, req CheckInRequest) (Response, error)
	CheckOut(ctx context.Context, userID string, req CheckOutRequest) (Response, error)
	Today(ctx context.Context, userID string) (*Response, error)
	ListMine(ctx context.Context, userID string, rng timeutil.Range) ([]Response, error)
	List(ctx context.Context, filter ListFilter) ([]Response, error)
	Update(ctx context.Context, id string, req UpdateRequest) (Response, error)
}

type service struct {
	repo   Repository
	now    timeutil.Clock
	audit  bootstrap.AuditLogger
	logger *zap.Logger
}

type Option func(*service)

func WithClock(now timeutil.Clock) Option {
	return func(s *service) { s.now = now }
}

func WithAuditLogger(a bootstrap.AuditLogger) Option {
	return func(s *service) { s.audit = a }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *service) {
		if l != nil {
			s.logger = l.Named("attendance.service")
		}
	}
}

func NewService(repo Repository, opts ...Option) Service {
	s := &service{
		repo:   repo,
		now:    timeutil.SystemClock,
		audit:  bootstrap.NopAuditLogger{},
		logger: zap.L().Named("attendance.service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) CheckIn(ctx context.Context, userID string, req CheckInRequest) (Response, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	uid, err := uuid.Parse(userID)
	if err != nil {
		return Response{}, usererrors.ErrInvalidUserID
	}

	now := s.now()
	project := req.Project
	if project == "" {
		project = DefaultProject
	}

	row := &Attendance{
		ID:       uuid.New(),
		UserID:   uid,
		WorkDate: timeutil.StartOfDay(now),
		CheckIn:  now,
		Status:   StatusPresent,
		Project:  project,
	}

	if err := s.repo.Create(ctx, row); err != nil {
		if errors.Is(err, attendanceerrors.ErrAlreadyCheckedIn) {
			log.Warn("check-in rejected, already checked in", zap.String("user_id", userID))
		} else {
			log.Error("check-in persist failed", zap.Error(err))
		}
		return Response{}, err
	}

	log.Info("check-in recorded",
		zap.String("user_id", userID),
		zap.String("attendance_id", row.ID.String()),
		zap.String("project", project),
	)
	return ToResponse(*row), nil
}

func (s *service) CheckOut(ctx context.Context, userID string, req CheckOutRequest) (Response, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	now := s.now()
	row, err := s.repo.FindByUserAndDate(ctx, userID, timeutil.StartOfDay(now))
	if err != nil {
		if errors.Is(err, attendanceerrors.ErrAttendanceNotFound) {
			log.Warn("check-out rejected, no check-in today", zap.String("user_id", userID))
			return Response{}, attendanceerrors.ErrNoCheckIn
		}
		return Response{}, err
	}
	if row.CheckOut != nil {
		return Response{}, attendanceerrors.ErrAlreadyCheckedOut
	}

	row.CheckOut = &now
	row.Notes = req.Notes
	row.recompute()

	if err := s.repo.CheckOut(ctx, row); err != nil {
		if !errors.Is(err, attendanceerrors.ErrAlreadyCheckedOut) {
			log.Error("check-out persist failed", zap.Error(err))
		}
		return Response{}, err
	}

	log.Info("check-out recorded",
		zap.String("user_id", userID),
		zap.String("attendance_id", row.ID.String()),
		zap.Int64("total_seconds", row.TotalSeconds),
	)
	return ToResponse(*row), nil
}

// Today returns nil when the caller has not checked in today.
func (s *service) Today(ctx context.Context, userID string) (*Response, error) {
	row, err := s.repo.FindByUserAndDate(ctx, userID, timeutil.StartOfDay(s.now()))
	if err != nil {
		if errors.Is(err, attendanceerrors.ErrAttendanceNotFound) {
			return nil, nil
		}
		return nil, err
	}
	resp := ToResponse(*row)
	return &resp, nil
}

func (s *service) ListMine(ctx context.Context, userID string, rng timeutil.Range) ([]Response, error) {
	rows, err := s.repo.FindAll(ctx, ListFilter{UserID: userID, Range: rng})
	if err != nil {
		return nil, err
	}
	out := ToListResponse(rows)
	for i := range out {
		out[i].User = nil
	}
	return out, nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]Response, error) {
	if filter.UserID != "" {
		if _, err := uuid.Parse(filter.UserID); err != nil {
			return nil, usererrors.ErrInvalidUserID
		}
	}
	rows, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ToListResponse(rows), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (Response, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Response{}, err
	}

	if req.Status != nil {
		if !IsValidStatus(*req.Status) {
			return Response{}, attendanceerrors.ErrInvalidStatus
		}
		row.Status = *req.Status
	}
	if req.Project != nil {
		row.Project = *req.Project
	}
	if req.Notes != nil {
		row.Notes = *req.Notes
	}
	if req.CheckIn != nil {
		row.CheckIn = *req.CheckIn
		row.WorkDate = timeutil.StartOfDay(row.CheckIn.In(time.Local))
	}
	if req.CheckOut != nil {
		co := *req.CheckOut
		row.CheckOut = &co
	}
	if row.CheckOut != nil && row.CheckOut.Before(row.CheckIn) {
		return Response{}, attendanceerrors.ErrCheckOutBeforeCheckIn
	}
	row.recompute()

	if err := s.repo.Update(ctx, row); err != nil {
		log.Error("attendance update failed", zap.String("attendance_id", id), zap.Error(err))
		return Response{}, err
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "ATTENDANCE_UPDATED",
		Target:  row.ID.String(),
		Message: "Attendance record edited by admin",
		Meta: map[string]any{
			"user_id":       row.UserID.String(),
			"status":        row.Status,
			"total_seconds": row.TotalSeconds,
		},
	})
	return ToResponse(*row), nil
}
