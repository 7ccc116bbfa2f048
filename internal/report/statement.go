package report

import (
	"bytes"
	"fmt"

	"go-attendance/internal/payroll"

	"github.com/jung-kurt/gofpdf"
)

func renderStatement(est payroll.EstimateResponse, generatedAt string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payroll statement", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Payroll statement")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	period := "All records"
	if est.StartDate != "" {
		period = est.StartDate + " to " + est.EndDate
	}
	for _, line := range [][2]string{
		{"Employee", est.Name},
		{"Email", est.Email},
		{"Period", period},
		{"Hourly rate", fmt.Sprintf("%.2f", est.HourlyRate)},
		{"Generated", generatedAt},
	} {
		pdf.CellFormat(40, 7, line[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, line[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	widths := []float64{40, 30, 30, 30, 40}
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range []string{"Date", "Hours", "Regular", "Overtime", "Pay"} {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, d := range est.Days {
		pdf.CellFormat(widths[0], 6, d.Date, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, fmt.Sprintf("%.1f", d.Hours), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 6, fmt.Sprintf("%.1f", d.RegularHours), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 6, fmt.Sprintf("%.1f", d.OvertimeHours), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 6, fmt.Sprintf("%.2f", d.Pay), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(40, 7, "Days worked", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("%d", est.DaysWorked), "", 1, "L", false, 0, "")
	pdf.CellFormat(40, 7, "Total hours", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("%.1f", est.TotalHours), "", 1, "L", false, 0, "")
	pdf.CellFormat(40, 7, "Total pay", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("%.2f", est.TotalPay), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
