package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	autherrors "go-attendance/internal/auth/errors"
	"go-attendance/internal/bootstrap"
	"go-attendance/internal/shared/apperror"
	"go-attendance/internal/shared/contextutil"
	"go-attendance/internal/shared/timeutil"
	"go-attendance/internal/user"
	usererrors "go-attendance/internal/user/errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultPosition   = "New Employee"
	defaultDepartment = "Unassigned"
)

type TokenIssuer interface {
	Issue(userID, role string) (string, error)
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)
	GetMe(ctx context.Context, userID string) (user.Response, error)
	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (user.Response, error)
	AdminRegister(ctx context.Context, req AdminRegisterRequest) (user.Response, error)
}

type service struct {
	users  user.Repository
	tokens TokenIssuer
	audit  bootstrap.AuditLogger
	now    timeutil.Clock
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
			s.logger = l.Named("auth.service")
		}
	}
}

func NewService(users user.Repository, tokens TokenIssuer, opts ...Option) Service {
	s := &service{
		users:  users,
		tokens: tokens,
		audit:  bootstrap.NopAuditLogger{},
		now:    timeutil.SystemClock,
		logger: zap.L().Named("auth.service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("register requested", zap.String("email", req.Email))

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return AuthResponse{}, err
	}

	u := &user.User{
		Name:       strings.TrimSpace(req.Name),
		Email:      req.Email,
		Password:   hashed,
		Role:       user.RoleEmployee,
		Position:   defaultPosition,
		Department: defaultDepartment,
		JoinDate:   s.now(),
		HourlyRate: 0,
		Status:     user.StatusActive,
	}

	// uq_users_email decides duplicates; there is no read-before-write.
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, usererrors.ErrEmailAlreadyExists) {
			log.Warn("register duplicate email", zap.String("email", req.Email))
		} else {
			log.Error("register persist failed", zap.Error(err))
		}
		return AuthResponse{}, err
	}

	resp, err := s.issue(*u)
	if err != nil {
		log.Error("register token issue failed", zap.Error(err))
		return AuthResponse{}, err
	}

	log.Info("register success", zap.String("user_id", u.ID.String()))
	return resp, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("login requested", zap.String("email", req.Email))

	u, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, usererrors.ErrUserNotFound) {
			log.Warn("login unknown email", zap.String("email", req.Email))
			return AuthResponse{}, autherrors.ErrInvalidCredentials
		}
		log.Error("login lookup failed", zap.Error(err))
		return AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		log.Warn("login wrong password", zap.String("user_id", u.ID.String()))
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if !user.IsValidRole(u.Role) {
		log.Warn("login invalid role", zap.String("user_id", u.ID.String()), zap.String("role", u.Role))
		return AuthResponse{}, autherrors.ErrInvalidRole
	}

	resp, err := s.issue(*u)
	if err != nil {
		log.Error("login token issue failed", zap.Error(err))
		return AuthResponse{}, err
	}

	log.Info("login success", zap.String("user_id", u.ID.String()), zap.String("role", u.Role))
	return resp, nil
}

func (s *service) GetMe(ctx context.Context, userID string) (user.Response, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return user.Response{}, err
	}
	return user.ToResponse(*u), nil
}

func (s *service) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (user.Response, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("update profile requested", zap.String("user_id", userID))

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return user.Response{}, err
	}

	if req.Name != nil {
		u.Name = strings.TrimSpace(*req.Name)
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
			return user.Response{}, apperror.InvalidField("Join Date")
		}
		u.JoinDate = jd
	}

	if err := s.users.Update(ctx, u); err != nil {
		log.Error("update profile persist failed", zap.Error(err))
		return user.Response{}, err
	}

	log.Info("update profile success", zap.String("user_id", userID))
	return user.ToResponse(*u), nil
}

func (s *service) AdminRegister(ctx context.Context, req AdminRegisterRequest) (user.Response, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("admin register requested", zap.String("email", req.Email))

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return user.Response{}, err
	}

	u := &user.User{
		Name:       strings.TrimSpace(req.Name),
		Email:      req.Email,
		Password:   hashed,
		Role:       user.RoleEmployee,
		Phone:      req.Phone,
		Position:   req.Position,
		Department: req.Department,
		Address:    req.Address,
		JoinDate:   s.now(),
		Status:     user.StatusActive,
	}
	if req.Role != "" {
		u.Role = req.Role
	}
	if req.Status != "" {
		u.Status = req.Status
	}
	if req.HourlyRate != nil {
		if *req.HourlyRate < 0 {
			return user.Response{}, usererrors.ErrInvalidHourlyRate
		}
		u.HourlyRate = *req.HourlyRate
	}
	if req.JoinDate != "" {
		jd, err := timeutil.ParseDate(req.JoinDate)
		if err != nil {
			return user.Response{}, apperror.InvalidField("Join Date")
		}
		u.JoinDate = jd
	}

	if err := s.users.Create(ctx, u); err != nil {
		log.Warn("admin register persist failed", zap.Error(err))
		return user.Response{}, err
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "ACCOUNT_CREATED",
		Target:  u.ID.String(),
		Message: "Account created by admin",
		Meta:    map[string]any{"role": u.Role, "hourly_rate": u.HourlyRate},
	})
	log.Info("admin register success", zap.String("user_id", u.ID.String()))
	return user.ToResponse(*u), nil
}

func (s *service) issue(u user.User) (AuthResponse, error) {
	tok, err := s.tokens.Issue(u.ID.String(), u.Role)
	if err != nil {
		return AuthResponse{}, err
	}
	return AuthResponse{
		Token: tok,
		User: SessionUser{
			ID:         u.ID.String(),
			Name:       u.Name,
			Email:      u.Email,
			Role:       u.Role,
			HourlyRate: u.HourlyRate,
		},
	}, nil
}

func hashPassword(pw string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", apperror.Wrap(err, apperror.CodeInternalError, "Failed to hash password", http.StatusInternalServerError)
	}
	return string(hashed), nil
}
