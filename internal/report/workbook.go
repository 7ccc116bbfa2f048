package report

import (
	"fmt"
	"sort"
	"time"

	"go-attendance/internal/attendance"
	"go-attendance/internal/payroll"
	"go-attendance/internal/shared/timeutil"
	"go-attendance/internal/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	SheetAttendance = "Attendance"
	SheetPayroll    = "Payroll"

	timestampLayout = "2006-01-02 15:04:05"
)

var (
	attendanceHeader = []any{"Date", "Employee", "Email", "Check In", "Check Out", "Hours", "Status", "Project", "Notes"}
	payrollHeader    = []any{"Employee", "Email", "Hourly Rate", "Days Worked", "Total Hours", "Regular Hours", "Overtime Hours", "Total Pay"}
)

// payrollRow is one employee's estimate over the exported records.
type payrollRow struct {
	account user.User
	summary payroll.Summary
}

func buildPayrollRows(records []attendance.Attendance, accounts []user.User) []payrollRow {
	byUser := make(map[uuid.UUID][]attendance.Attendance)
	for _, r := range records {
		byUser[r.UserID] = append(byUser[r.UserID], r)
	}

	rows := make([]payrollRow, 0, len(accounts))
	for _, a := range accounts {
		recs, ok := byUser[a.ID]
		if !ok {
			continue
		}
		rows = append(rows, payrollRow{
			account: a,
			summary: payroll.Estimate(recs, decimal.NewFromFloat(a.HourlyRate)),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].account.Name != rows[j].account.Name {
			return rows[i].account.Name < rows[j].account.Name
		}
		return rows[i].account.Email < rows[j].account.Email
	})
	return rows
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func formatTimestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.In(time.Local).Format(timestampLayout)
}

func renderWorkbook(records []attendance.Attendance, rows []payrollRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetAttendance); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(SheetPayroll); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	if err := writeRow(f, SheetAttendance, 1, attendanceHeader); err != nil {
		return nil, err
	}
	for i, r := range records {
		name, email := "", ""
		if r.User != nil {
			name, email = r.User.Name, r.User.Email
		}
		checkIn := r.CheckIn
		values := []any{
			r.WorkDate.Format(timeutil.DateLayout),
			name,
			email,
			formatTimestamp(&checkIn),
			formatTimestamp(r.CheckOut),
			payroll.DailyHours(r.TotalSeconds).InexactFloat64(),
			r.Status,
			r.Project,
			r.Notes,
		}
		if err := writeRow(f, SheetAttendance, i+2, values); err != nil {
			return nil, err
		}
	}

	if err := writeRow(f, SheetPayroll, 1, payrollHeader); err != nil {
		return nil, err
	}
	for i, row := range rows {
		s := row.summary
		values := []any{
			row.account.Name,
			row.account.Email,
			s.HourlyRate.InexactFloat64(),
			s.DaysWorked,
			s.TotalHours.InexactFloat64(),
			s.RegularHours.InexactFloat64(),
			s.OvertimeHours.InexactFloat64(),
			s.TotalPay.Round(2).InexactFloat64(),
		}
		if err := writeRow(f, SheetPayroll, i+2, values); err != nil {
			return nil, err
		}
	}

	for _, sheet := range []string{SheetAttendance, SheetPayroll} {
		if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, "A", "I", 16); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
