package employee

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go-attendance/internal/bootstrap"
	employeeerrors "go-attendance/internal/employee/errors"
	"go-attendance/internal/shared/apperror"
	"go-attendance/internal/shared/contextutil"
	"go-attendance/internal/shared/timeutil"
	"go-attendance/internal/user"
	usererrors "go-attendance/internal/user/errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]user.Response, error)
	GetByID(ctx context.Context, actor Actor, id string) (user.Response, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (user.Response, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	users  user.Repository
	audit  bootstrap.AuditLogger
	logger *zap.Logger
}

func NewService(users user.Repository, audit bootstrap.AuditLogger, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if audit == nil {
		audit = bootstrap.NopAuditLogger{}
	}
	return &service{users: users, audit: audit, logger: l}
}

func mapNotFound(err error) error {
	if errors.Is(err, usererrors.ErrUserNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}
	return err
}

func (s *service) GetAll(ctx context.Context) ([]user.Response, error) {
	users, err := s.users.FindAll(ctx, user.ListFilter{Role: user.RoleEmployee})
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list employees failed", zap.Error(err))
		return nil, err
	}
	return user.ToListResponse(users), nil
}

// GetByID lets admins read anyone and everyone else read only themselves.
func (s *service) GetByID(ctx context.Context, actor Actor, id string) (user.Response, error) {
	if actor.Role != user.RoleAdmin && actor.ID != id {
		contextutil.GetLogger(ctx, s.logger).Warn("employee read denied",
			zap.String("actor_id", actor.ID),
			zap.String("employee_id", id),
		)
		return user.Response{}, employeeerrors.ErrNotAuthorized
	}

	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return user.Response{}, mapNotFound(err)
	}
	return user.ToResponse(*u), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (user.Response, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("update employee requested", zap.String("employee_id", id))

	if req.HourlyRate != nil && *req.HourlyRate < 0 {
		return user.Response{}, usererrors.ErrInvalidHourlyRate
	}
	if req.Role != nil && !user.IsValidRole(*req.Role) {
		return user.Response{}, employeeerrors.ErrInvalidRole
	}
	if req.Status != nil && !user.IsValidStatus(*req.Status) {
		return user.Response{}, employeeerrors.ErrInvalidStatus
	}

	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return user.Response{}, mapNotFound(err)
	}
	before := user.ToResponse(*u)

	if err := applyUpdate(u, req); err != nil {
		return user.Response{}, err
	}

	if err := s.users.Update(ctx, u); err != nil {
		log.Error("update employee persist failed", zap.String("employee_id", id), zap.Error(err))
		return user.Response{}, mapNotFound(err)
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "EMPLOYEE_UPDATED",
		ActorID: contextutil.GetUserID(ctx),
		Target:  id,
		Message: "Employee updated by admin",
		Meta: map[string]any{
			"role_before":        before.Role,
			"role_after":         u.Role,
			"hourly_rate_before": before.HourlyRate,
			"hourly_rate_after":  u.HourlyRate,
		},
	})
	log.Info("update employee success", zap.String("employee_id", id))
	return user.ToResponse(*u), nil
}

func applyUpdate(u *user.User, req UpdateEmployeeRequest) error {
	if req.Name != nil {
		u.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return apperror.Wrap(err, apperror.CodeInternalError, "Failed to hash password", http.StatusInternalServerError)
		}
		u.Password = string(hashed)
	}
	if req.Role != nil {
		u.Role = *req.Role
	}
	if req.Phone != nil {
		u.Phone = *req.Phone
	}
	if req.Position != nil {
		u.Position = *req.Position
	}
	if req.Department != nil {
		u.Department = *req.Department
	}
	if req.Address != nil {
		u.Address = *req.Address
	}
	if req.JoinDate != nil {
		jd, err := timeutil.ParseDate(*req.JoinDate)
		if err != nil {
			return apperror.InvalidField("Join Date")
		}
		u.JoinDate = jd
	}
	if req.HourlyRate != nil {
		u.HourlyRate = *req.HourlyRate
	}
	if req.Status != nil {
		u.Status = *req.Status
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return mapNotFound(err)
	}
	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "EMPLOYEE_DELETED",
		ActorID: contextutil.GetUserID(ctx),
		Target:  id,
		Message: "Employee deleted by admin",
	})
	contextutil.GetLogger(ctx, s.logger).Info("delete employee success", zap.String("employee_id", id))
	return nil
}
