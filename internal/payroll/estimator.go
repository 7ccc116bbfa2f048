package payroll

import (
	"time"

	"go-attendance/internal/attendance"

	"github.com/shopspring/decimal"
)

var (
	regularHoursPerDay = decimal.NewFromInt(8)
	overtimeMultiplier = decimal.NewFromFloat(1.5)
	secondsPerHour     = decimal.NewFromInt(3600)
)

type Day struct {
	Date          time.Time
	Hours         decimal.Decimal
	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
	Pay           decimal.Decimal
}

type Summary struct {
	HourlyRate    decimal.Decimal
	TotalHours    decimal.Decimal
	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
	TotalPay      decimal.Decimal
	DaysWorked    int
	Days          []Day
}

// DailyHours is the worked time in hours rounded to one decimal place.
func DailyHours(totalSeconds int64) decimal.Decimal {
	return decimal.NewFromInt(totalSeconds).Div(secondsPerHour).Round(1)
}

// Estimate folds records into pay at rate. Each day's hours are rounded before
// the 8h regular/overtime split; the hour total is rounded once after summing.
// Every record counts as a day worked, open ones included.
func Estimate(records []attendance.Attendance, rate decimal.Decimal) Summary {
	sum := Summary{
		HourlyRate: rate,
		Days:       make([]Day, 0, len(records)),
	}
	overtimeRate := rate.Mul(overtimeMultiplier)

	for _, r := range records {
		hours := DailyHours(r.TotalSeconds)
		regular := decimal.Min(hours, regularHoursPerDay)
		overtime := decimal.Max(decimal.Zero, hours.Sub(regularHoursPerDay))
		pay := regular.Mul(rate).Add(overtime.Mul(overtimeRate))

		sum.TotalHours = sum.TotalHours.Add(hours)
		sum.RegularHours = sum.RegularHours.Add(regular)
		sum.OvertimeHours = sum.OvertimeHours.Add(overtime)
		sum.TotalPay = sum.TotalPay.Add(pay)
		sum.DaysWorked++
		sum.Days = append(sum.Days, Day{
			Date:          r.WorkDate,
			Hours:         hours,
			RegularHours:  regular,
			OvertimeHours: overtime,
			Pay:           pay,
		})
	}

	sum.TotalHours = sum.TotalHours.Round(1)
	return sum
}
