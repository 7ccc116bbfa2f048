package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go-attendance/internal/attendance"
	"go-attendance/internal/auth"
	"go-attendance/internal/leave"
	"go-attendance/internal/payroll"
	"go-attendance/internal/shared/response"
	"go-attendance/internal/user"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultTimeout     = 15 * time.Second
	employeesPageSize  = 100
	headerIdempotency  = "Idempotency-Key"
	headerClientType   = "X-Client-Type"
	clientTypeTerminal = "cli"
)

// APIError is a non-2xx reply decoded from the error envelope.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error (%d %s): %s", e.Status, e.Code, e.Message)
}

// Range bounds list and payroll queries. Both ends must be set for the server to apply it.
type Range struct {
	StartDate string
	EndDate   string
}

func (r Range) params() map[string]string {
	p := map[string]string{}
	if r.StartDate != "" {
		p["startDate"] = r.StartDate
	}
	if r.EndDate != "" {
		p["endDate"] = r.EndDate
	}
	return p
}

type envelope[T any] struct {
	Ok    bool                     `json:"ok"`
	Data  T                        `json:"data"`
	Meta  *response.PaginationMeta `json:"meta"`
	Error *response.ErrorBody      `json:"error"`
}

type Client struct {
	http    *resty.Client
	session *Session
	logger  *zap.Logger
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.SetTimeout(d) }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l.Named("client") }
}

// New builds a client for the API rooted at baseURL (for example http://localhost:5000/api).
func New(baseURL string, session *Session, opts ...Option) *Client {
	if session == nil {
		session = &Session{}
	}
	c := &Client{
		session: session,
		logger:  zap.L().Named("client"),
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(defaultTimeout).
			SetHeader("Content-Type", "application/json").
			SetHeader("Accept", "application/json").
			SetHeader(headerClientType, clientTypeTerminal).
			SetRetryCount(2).
			SetRetryWaitTime(200 * time.Millisecond).
			SetRetryMaxWaitTime(2 * time.Second),
	}
	c.http.AddRetryCondition(retryCondition)
	c.http.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if c.session.Token != "" {
			r.SetAuthToken(c.session.Token)
		}
		return nil
	})
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Session() *Session {
	return c.session
}

func retryCondition(r *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if r == nil {
		return false
	}
	code := r.StatusCode()
	return code == http.StatusBadGateway || code == http.StatusServiceUnavailable || code == http.StatusGatewayTimeout
}

// failure turns an error reply into an APIError. A 401 drops the session token.
func (c *Client) failure(resp *resty.Response, body *response.ErrorBody) error {
	if resp.StatusCode() == http.StatusUnauthorized {
		c.session.Clear()
	}
	apiErr := &APIError{Status: resp.StatusCode(), Message: http.StatusText(resp.StatusCode())}
	if body != nil {
		apiErr.Code = body.Code
		apiErr.Message = body.Message
	}
	c.logger.Debug("api request failed",
		zap.String("url", resp.Request.URL),
		zap.Int("status", apiErr.Status),
		zap.String("code", apiErr.Code),
	)
	return apiErr
}

func call[T any](ctx context.Context, c *Client, method, path string, body any, query map[string]string, headers map[string]string) (envelope[T], error) {
	var env envelope[T]
	req := c.http.R().
		SetContext(ctx).
		SetQueryParams(query).
		SetHeaders(headers).
		SetResult(&env).
		SetError(&env)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return env, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		return env, c.failure(resp, env.Error)
	}
	return env, nil
}

func do[T any](ctx context.Context, c *Client, method, path string, body any, query map[string]string) (T, error) {
	env, err := call[T](ctx, c, method, path, body, query, nil)
	return env.Data, err
}

func (c *Client) download(ctx context.Context, path string, query map[string]string) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(query).
		SetHeader("Accept", "*/*").
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	if resp.IsError() {
		var env envelope[json.RawMessage]
		_ = json.Unmarshal(resp.Body(), &env)
		return nil, c.failure(resp, env.Error)
	}
	return resp.Body(), nil
}

func (c *Client) adopt(resp auth.AuthResponse) *Session {
	*c.session = Session{
		Token:      resp.Token,
		UserID:     resp.User.ID,
		Name:       resp.User.Name,
		Email:      resp.User.Email,
		Role:       resp.User.Role,
		HourlyRate: resp.User.HourlyRate,
	}
	return c.session
}

func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := do[auth.AuthResponse](ctx, c, http.MethodPost, "/auth/login", auth.LoginRequest{Email: email, Password: password}, nil)
	if err != nil {
		return nil, err
	}
	return c.adopt(resp), nil
}

func (c *Client) Register(ctx context.Context, name, email, password string) (*Session, error) {
	resp, err := do[auth.AuthResponse](ctx, c, http.MethodPost, "/auth/register", auth.RegisterRequest{Name: name, Email: email, Password: password}, nil)
	if err != nil {
		return nil, err
	}
	return c.adopt(resp), nil
}

func (c *Client) Logout(ctx context.Context) error {
	_, err := do[json.RawMessage](ctx, c, http.MethodPost, "/auth/logout", nil, nil)
	c.session.Clear()
	return err
}

func (c *Client) Me(ctx context.Context) (user.Response, error) {
	return do[user.Response](ctx, c, http.MethodGet, "/auth/me", nil, nil)
}

// CheckIn and CheckOut send a fresh Idempotency-Key so transport retries replay instead of repeating.
func (c *Client) CheckIn(ctx context.Context, project string) (attendance.Response, error) {
	env, err := call[attendance.Response](ctx, c, http.MethodPost, "/attendance/check-in",
		attendance.CheckInRequest{Project: project}, nil,
		map[string]string{headerIdempotency: uuid.NewString()})
	return env.Data, err
}

func (c *Client) CheckOut(ctx context.Context, notes string) (attendance.Response, error) {
	env, err := call[attendance.Response](ctx, c, http.MethodPost, "/attendance/check-out",
		attendance.CheckOutRequest{Notes: notes}, nil,
		map[string]string{headerIdempotency: uuid.NewString()})
	return env.Data, err
}

// Today returns nil when the caller has not checked in today.
func (c *Client) Today(ctx context.Context) (*attendance.Response, error) {
	return do[*attendance.Response](ctx, c, http.MethodGet, "/attendance/today", nil, nil)
}

func (c *Client) MyAttendance(ctx context.Context, rng Range) ([]attendance.Response, error) {
	return do[[]attendance.Response](ctx, c, http.MethodGet, "/attendance/me", nil, rng.params())
}

func (c *Client) Attendance(ctx context.Context, userID string, rng Range) ([]attendance.Response, error) {
	q := rng.params()
	if userID != "" {
		q["userId"] = userID
	}
	return do[[]attendance.Response](ctx, c, http.MethodGet, "/attendance", nil, q)
}

func (c *Client) Dashboard(ctx context.Context) (payroll.DashboardResponse, error) {
	return do[payroll.DashboardResponse](ctx, c, http.MethodGet, "/payroll/me/dashboard", nil, nil)
}

func (c *Client) MyPayroll(ctx context.Context, rng Range) (payroll.EstimateResponse, error) {
	return do[payroll.EstimateResponse](ctx, c, http.MethodGet, "/payroll/me", nil, rng.params())
}

func (c *Client) Estimate(ctx context.Context, userID string, rng Range) (payroll.EstimateResponse, error) {
	q := rng.params()
	q["userId"] = userID
	return do[payroll.EstimateResponse](ctx, c, http.MethodGet, "/payroll/estimate", nil, q)
}

func (c *Client) LeaveBalance(ctx context.Context) (int, error) {
	resp, err := do[leave.BalanceResponse](ctx, c, http.MethodGet, "/leave/my-balance", nil, nil)
	return resp.Balance, err
}

// Employees walks every page of the employee listing.
func (c *Client) Employees(ctx context.Context, q string) ([]user.Response, error) {
	var all []user.Response
	for page := 1; ; page++ {
		query := map[string]string{
			"page":      strconv.Itoa(page),
			"page_size": strconv.Itoa(employeesPageSize),
		}
		if q != "" {
			query["q"] = q
		}
		env, err := call[[]user.Response](ctx, c, http.MethodGet, "/employees", nil, query, nil)
		if err != nil {
			return nil, err
		}
		all = append(all, env.Data...)
		if env.Meta == nil || page >= env.Meta.TotalPages {
			return all, nil
		}
	}
}

func (c *Client) ExportAttendance(ctx context.Context, userID string, rng Range) ([]byte, error) {
	q := rng.params()
	if userID != "" {
		q["userId"] = userID
	}
	return c.download(ctx, "/attendance/export", q)
}

func (c *Client) PayrollStatement(ctx context.Context, rng Range) ([]byte, error) {
	return c.download(ctx, "/payroll/me/statement", rng.params())
}
