package payroll

import (
	"go-attendance/internal/shared/timeutil"

	"github.com/shopspring/decimal"
)

type DayResponse struct {
	Date          string  `json:"date"`
	Hours         float64 `json:"hours"`
	RegularHours  float64 `json:"regularHours"`
	OvertimeHours float64 `json:"overtimeHours"`
	Pay           float64 `json:"pay"`
}

type EstimateResponse struct {
	UserID        string        `json:"userId"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	StartDate     string        `json:"startDate,omitempty"`
	EndDate       string        `json:"endDate,omitempty"`
	HourlyRate    float64       `json:"hourlyRate"`
	TotalHours    float64       `json:"totalHours"`
	RegularHours  float64       `json:"regularHours"`
	OvertimeHours float64       `json:"overtimeHours"`
	TotalPay      float64       `json:"totalPay"`
	DaysWorked    int           `json:"daysWorked"`
	Days          []DayResponse `json:"days"`
}

type DashboardResponse struct {
	HourlyRate             float64 `json:"hourlyRate"`
	HoursToday             float64 `json:"hoursToday"`
	MonthHours             float64 `json:"monthHours"`
	CurrentMonthPayroll    float64 `json:"currentMonthPayroll"`
	DaysWorkedCurrentMonth int     `json:"daysWorkedCurrentMonth"`
	LastMonthHours         float64 `json:"lastMonthHours"`
	LastMonthPay           float64 `json:"lastMonthPay"`
	DaysWorkedLastMonth    int     `json:"daysWorkedLastMonth"`
}

// money rounds to cents for display; the fold itself keeps full precision.
func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func ToEstimateResponse(s Summary, rng timeutil.Range) EstimateResponse {
	resp := EstimateResponse{
		HourlyRate:    money(s.HourlyRate),
		TotalHours:    s.TotalHours.InexactFloat64(),
		RegularHours:  s.RegularHours.InexactFloat64(),
		OvertimeHours: s.OvertimeHours.InexactFloat64(),
		TotalPay:      money(s.TotalPay),
		DaysWorked:    s.DaysWorked,
		Days:          make([]DayResponse, len(s.Days)),
	}
	if !rng.IsZero() {
		resp.StartDate = rng.From.Format(timeutil.DateLayout)
		resp.EndDate = rng.To.Format(timeutil.DateLayout)
	}
	for i, d := range s.Days {
		resp.Days[i] = DayResponse{
			Date:          d.Date.Format(timeutil.DateLayout),
			Hours:         d.Hours.InexactFloat64(),
			RegularHours:  d.RegularHours.InexactFloat64(),
			OvertimeHours: d.OvertimeHours.InexactFloat64(),
			Pay:           money(d.Pay),
		}
	}
	return resp
}
