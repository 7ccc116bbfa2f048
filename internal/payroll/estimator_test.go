package payroll

import (
	"testing"
	"time"

	"go-attendance/internal/attendance"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(seconds int64, d int) attendance.Attendance {
	return attendance.Attendance{
		WorkDate:     time.Date(2024, 3, d, 0, 0, 0, 0, time.Local),
		TotalSeconds: seconds,
	}
}

func TestEstimate(t *testing.T) {
	tests := []struct {
		name       string
		records    []attendance.Attendance
		rate       float64
		wantHours  string
		wantPay    string
		wantDays   int
		wantOTHour string
	}{
		{
			name:       "ten hour day splits into overtime",
			records:    []attendance.Attendance{day(36000, 1)},
			rate:       20,
			wantHours:  "10",
			wantPay:    "220",
			wantDays:   1,
			wantOTHour: "2",
		},
		{
			name:       "short day is all regular",
			records:    []attendance.Attendance{day(21600, 1)},
			rate:       15,
			wantHours:  "6",
			wantPay:    "90",
			wantDays:   1,
			wantOTHour: "0",
		},
		{
			name:       "two days",
			records:    []attendance.Attendance{day(28800, 1), day(36000, 2)},
			rate:       10,
			wantHours:  "18",
			wantPay:    "190",
			wantDays:   2,
			wantOTHour: "2",
		},
		{
			name:       "open record counts as a day with no hours",
			records:    []attendance.Attendance{day(0, 1), day(28800, 2)},
			rate:       10,
			wantHours:  "8",
			wantPay:    "80",
			wantDays:   2,
			wantOTHour: "0",
		},
		{
			name:      "no records",
			rate:      10,
			wantHours: "0",
			wantPay:   "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Estimate(tt.records, decimal.NewFromFloat(tt.rate))

			assert.Equal(t, tt.wantHours, got.TotalHours.String())
			assert.Equal(t, tt.wantPay, got.TotalPay.String())
			assert.Equal(t, tt.wantDays, got.DaysWorked)
			assert.Len(t, got.Days, len(tt.records))
			if tt.wantOTHour != "" {
				assert.Equal(t, tt.wantOTHour, got.OvertimeHours.String())
			}
		})
	}
}

func TestEstimate_DailyRoundingBeforeSplit(t *testing.T) {
	// 8h 3m = 8.05h rounds to 8.1h, so 0.1h is overtime.
	got := Estimate([]attendance.Attendance{day(8*3600+180, 1)}, decimal.NewFromInt(10))

	assert.Equal(t, "8.1", got.TotalHours.String())
	assert.Equal(t, "81.5", got.TotalPay.String())
}

func TestEstimate_OrderIndependent(t *testing.T) {
	rate := decimal.NewFromFloat(12.5)
	a := Estimate([]attendance.Attendance{day(30000, 1), day(7000, 2), day(40000, 3)}, rate)
	b := Estimate([]attendance.Attendance{day(40000, 3), day(30000, 1), day(7000, 2)}, rate)

	assert.True(t, a.TotalPay.Equal(b.TotalPay))
	assert.True(t, a.TotalHours.Equal(b.TotalHours))
	assert.Equal(t, a.DaysWorked, b.DaysWorked)
}

func TestDailyHours(t *testing.T) {
	assert.Equal(t, "0", DailyHours(0).String())
	assert.Equal(t, "1", DailyHours(3599).String())
	assert.Equal(t, "0.1", DailyHours(180).String())
	assert.Equal(t, "2.5", DailyHours(9000).String())
}
