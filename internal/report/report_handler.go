package report

import (
	"fmt"
	"net/http"

	"go-attendance/internal/attendance"
	"go-attendance/internal/middleware"
	"go-attendance/internal/shared/apperror"
	"go-attendance/internal/shared/response"
	"go-attendance/internal/shared/timeutil"

	"github.com/gin-gonic/gin"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func filename(prefix, ext string, rng timeutil.Range) string {
	if rng.IsZero() {
		return prefix + "." + ext
	}
	return fmt.Sprintf("%s-%s-%s.%s", prefix,
		rng.From.Format(timeutil.DateLayout), rng.To.Format(timeutil.DateLayout), ext)
}

func attach(c *gin.Context, contentType, name string, body []byte) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Data(http.StatusOK, contentType, body)
}

func (h *Handler) ExportAttendance(c *gin.Context) {
	rng, err := attendance.ParseRangeQuery(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	out, err := h.service.AttendanceWorkbook(c.Request.Context(), attendance.ListFilter{
		UserID: c.Query("userId"),
		Range:  rng,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	attach(c, contentTypeXLSX, filename("attendance", "xlsx", rng), out)
}

func (h *Handler) PayrollStatement(c *gin.Context) {
	rng, err := attendance.ParseRangeQuery(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	out, err := h.service.PayrollStatement(c.Request.Context(), c.GetString(middleware.ContextUserID), rng)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	attach(c, contentTypePDF, filename("payroll-statement", "pdf", rng), out)
}
