package rbac

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"go.uber.org/zap"
)

const (
	ResourceAccount    = "account"
	ResourceAttendance = "attendance"
	ResourcePayroll    = "payroll"
	ResourceLeave      = "leave"
	ResourceEmployees  = "employees"
	ResourceReports    = "reports"

	// ActionSelf covers operations on the caller's own data; ActionManage covers everyone's.
	ActionSelf   = "self"
	ActionManage = "manage"
	ActionCreate = "create"
)

const modelText = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

type Policy struct {
	Role     string
	Resource string
	Action   string
}

// DefaultPolicies grants employees their own data and admins everything, admin inheriting employee.
func DefaultPolicies() []Policy {
	return []Policy{
		{"employee", ResourceAccount, ActionSelf},
		{"employee", ResourceAttendance, ActionSelf},
		{"employee", ResourcePayroll, ActionSelf},
		{"employee", ResourceLeave, ActionSelf},
		{"employee", ResourceEmployees, ActionSelf},
		{"admin", ResourceAccount, ActionCreate},
		{"admin", ResourceEmployees, ActionManage},
		{"admin", ResourceAttendance, ActionManage},
		{"admin", ResourcePayroll, ActionManage},
		{"admin", ResourceReports, ActionManage},
	}
}

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

func NewService(policies []Policy, logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}

	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("rbac model: %w", err)
	}
	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("rbac enforcer: %w", err)
	}

	for _, p := range policies {
		if _, err := enforcer.AddPolicy(p.Role, p.Resource, p.Action); err != nil {
			return nil, fmt.Errorf("rbac policy %v: %w", p, err)
		}
	}
	if _, err := enforcer.AddGroupingPolicy("admin", "employee"); err != nil {
		return nil, fmt.Errorf("rbac grouping: %w", err)
	}

	l.Info("rbac policy loaded", zap.Int("policies", len(policies)))
	return &service{enforcer: enforcer, logger: l}, nil
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(role, resource, action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", role),
			zap.String("resource", resource),
			zap.String("action", action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", role),
		zap.String("resource", resource),
		zap.String("action", action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}
