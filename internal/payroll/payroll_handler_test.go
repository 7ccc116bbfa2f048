package payroll_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-attendance/internal/payroll"
	payrollMock "go-attendance/internal/payroll/mock"
	"go-attendance/internal/shared/timeutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRequest(target string, userID string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	if userID != "" {
		c.Set("user_id", userID)
	}
	return c, w
}

func TestHandler_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := payrollMock.NewMockService(ctrl)
	h := payroll.NewHandler(svc)

	svc.EXPECT().Estimate(gomock.Any(), "u-1", timeutil.Range{}).
		Return(payroll.EstimateResponse{TotalPay: 220, DaysWorked: 1}, nil)

	c, w := newRequest("/payroll/me", "u-1")
	h.Me(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalPay":220`)
}

func TestHandler_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := payrollMock.NewMockService(ctrl)
	svc.EXPECT().Dashboard(gomock.Any(), "u-1").Return(payroll.DashboardResponse{HoursToday: 1.5}, nil)

	c, w := newRequest("/payroll/me/dashboard", "u-1")
	payroll.NewHandler(svc).Dashboard(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"hoursToday":1.5`)
}

func TestHandler_Estimate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := payrollMock.NewMockService(ctrl)
	h := payroll.NewHandler(svc)

	t.Run("requires userId", func(t *testing.T) {
		c, w := newRequest("/payroll/estimate", "admin-1")
		h.Estimate(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "userId is required")
	})

	t.Run("estimates the requested employee", func(t *testing.T) {
		svc.EXPECT().Estimate(gomock.Any(), "emp-9", gomock.Any()).Return(payroll.EstimateResponse{UserID: "emp-9"}, nil)

		c, w := newRequest("/payroll/estimate?userId=emp-9&startDate=2024-03-01&endDate=2024-03-31", "admin-1")
		h.Estimate(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("reversed range", func(t *testing.T) {
		c, w := newRequest("/payroll/estimate?userId=emp-9&startDate=2024-03-31&endDate=2024-03-01", "admin-1")
		h.Estimate(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
