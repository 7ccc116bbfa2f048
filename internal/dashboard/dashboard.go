// Package dashboard renders API responses for the terminal.
package dashboard

import (
	"fmt"
	"io"
	"strings"

	"go-attendance/internal/attendance"
	"go-attendance/internal/payroll"
	"go-attendance/internal/user"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title  lipgloss.Style
	muted  lipgloss.Style
	card   lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	header lipgloss.Style
	cell   lipgloss.Style
	ok     lipgloss.Style
	warn   lipgloss.Style
}

// Renderer formats views for one output. Color is dropped when w is not a terminal.
type Renderer struct {
	s styles
}

func New(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	return &Renderer{s: styles{
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		muted:  r.NewStyle().Foreground(lipgloss.Color("#888888")),
		card:   r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#555555")).Padding(0, 1).Width(26),
		label:  r.NewStyle().Foreground(lipgloss.Color("#888888")),
		value:  r.NewStyle().Bold(true),
		header: r.NewStyle().Bold(true).Underline(true).PaddingRight(2),
		cell:   r.NewStyle().PaddingRight(2),
		ok:     r.NewStyle().Foreground(lipgloss.Color("#04B575")),
		warn:   r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
	}}
}

// FormatDuration renders whole hours and minutes, e.g. "9h 30m".
func FormatDuration(seconds int64) string {
	if seconds <= 0 {
		return "0h 0m"
	}
	return fmt.Sprintf("%dh %dm", seconds/3600, (seconds%3600)/60)
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func (r *Renderer) card(label, value string) string {
	return r.s.card.Render(r.s.label.Render(label) + "\n" + r.s.value.Render(value))
}

// Dashboard is the employee overview: today's state plus this and last month's totals.
func (r *Renderer) Dashboard(name string, d payroll.DashboardResponse, today *attendance.Response) string {
	var b strings.Builder
	b.WriteString(r.s.title.Render("Employee Dashboard"))
	b.WriteString("\n")
	b.WriteString(r.s.muted.Render(fmt.Sprintf("Welcome back, %s! Hourly rate: %s/hour", name, money(d.HourlyRate))))
	b.WriteString("\n\n")
	b.WriteString(r.todayLine(today))
	b.WriteString("\n\n")

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		r.card("Hours Today", fmt.Sprintf("%.1fh", d.HoursToday)),
		r.card("Current Month Hours", fmt.Sprintf("%.1fh (%d days)", d.MonthHours, d.DaysWorkedCurrentMonth)),
		r.card("Current Month Pay", money(d.CurrentMonthPayroll)),
	)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		r.card("Last Month Hours", fmt.Sprintf("%.1fh (%d days)", d.LastMonthHours, d.DaysWorkedLastMonth)),
		r.card("Last Month Pay", money(d.LastMonthPay)),
	)
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, top, bottom))
	b.WriteString("\n")
	return b.String()
}

func (r *Renderer) todayLine(today *attendance.Response) string {
	switch {
	case today == nil:
		return r.s.warn.Render("Not checked in today")
	case today.CheckOut == nil:
		return r.s.ok.Render(fmt.Sprintf("Checked in at %s (%s)", today.CheckIn.Local().Format("15:04"), today.Project))
	default:
		return r.s.ok.Render(fmt.Sprintf("Checked out at %s, worked %s",
			today.CheckOut.Local().Format("15:04"), FormatDuration(today.TotalTimeInSeconds)))
	}
}

// Record renders a single check-in or check-out result.
func (r *Renderer) Record(a attendance.Response) string {
	return r.todayLine(&a) + "\n"
}

func (r *Renderer) table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	line := make([]string, len(headers))
	for i, h := range headers {
		line[i] = r.s.header.Width(widths[i] + 2).Render(h)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, line...))
	b.WriteString("\n")
	for _, row := range rows {
		for i, cell := range row {
			line[i] = r.s.cell.Width(widths[i] + 2).Render(cell)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, line...))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) Attendance(records []attendance.Response) string {
	if len(records) == 0 {
		return r.s.muted.Render("No attendance records") + "\n"
	}
	rows := make([][]string, 0, len(records))
	for _, a := range records {
		who := a.UserID
		if a.User != nil {
			who = a.User.Name
		}
		out := "-"
		if a.CheckOut != nil {
			out = a.CheckOut.Local().Format("15:04")
		}
		rows = append(rows, []string{
			a.Date, who, a.CheckIn.Local().Format("15:04"), out,
			FormatDuration(a.TotalTimeInSeconds), a.Status, a.Project,
		})
	}
	return r.table([]string{"Date", "Employee", "In", "Out", "Worked", "Status", "Project"}, rows)
}

func (r *Renderer) Estimate(e payroll.EstimateResponse) string {
	var b strings.Builder
	period := "all time"
	if e.StartDate != "" && e.EndDate != "" {
		period = e.StartDate + " to " + e.EndDate
	}
	b.WriteString(r.s.title.Render(fmt.Sprintf("Payroll estimate for %s", e.Name)))
	b.WriteString("\n")
	b.WriteString(r.s.muted.Render(fmt.Sprintf("%s, %s/hour", period, money(e.HourlyRate))))
	b.WriteString("\n\n")

	rows := make([][]string, 0, len(e.Days))
	for _, d := range e.Days {
		rows = append(rows, []string{
			d.Date,
			fmt.Sprintf("%.1f", d.Hours),
			fmt.Sprintf("%.1f", d.RegularHours),
			fmt.Sprintf("%.1f", d.OvertimeHours),
			money(d.Pay),
		})
	}
	b.WriteString(r.table([]string{"Date", "Hours", "Regular", "Overtime", "Pay"}, rows))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		r.card("Total Hours", fmt.Sprintf("%.1fh (%d days)", e.TotalHours, e.DaysWorked)),
		r.card("Overtime", fmt.Sprintf("%.1fh", e.OvertimeHours)),
		r.card("Estimated Pay", money(e.TotalPay)),
	))
	b.WriteString("\n")
	return b.String()
}

func (r *Renderer) Employees(list []user.Response) string {
	if len(list) == 0 {
		return r.s.muted.Render("No employees") + "\n"
	}
	rows := make([][]string, 0, len(list))
	for _, u := range list {
		rows = append(rows, []string{u.ID, u.Name, u.Email, u.Department, u.Position, money(u.HourlyRate), u.Status})
	}
	return r.table([]string{"ID", "Name", "Email", "Department", "Position", "Rate", "Status"}, rows)
}
