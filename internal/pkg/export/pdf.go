package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/brown009872/payroll-app/internal/domain/inventory"
	"github.com/brown009872/payroll-app/internal/domain/payroll"
	"github.com/brown009872/payroll-app/internal/pkg/utils"
	"github.com/jung-kurt/gofpdf"
)

// The core PDF fonts only cover Latin-1, so Vietnamese text is printed
// without diacritics.
func plain(s string) string {
	return strings.ReplaceAll(utils.StripDiacritics(s), "₫", "VND")
}

func money(amount int64) string {
	return plain(utils.FormatNumber(amount))
}

// WeeklyPayrollPDF writes the weekly summary as a landscape table.
func WeeklyPayrollPDF(w io.Writer, summary payroll.WeeklySummary) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Weekly payroll "+summary.WeekStart, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "BANG LUONG TUAN", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("%s - %s", utils.FormatDisplayDate(summary.WeekStart), utils.FormatDisplayDate(summary.WeekEnd)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	widths := []float64{50, 22, 22, 22, 22, 22, 22, 22, 18, 28, 25}
	header := []string{"Employee"}
	for i := 0; i < 7; i++ {
		day := summary.WeekStart
		if d, err := utils.AddDays(summary.WeekStart, i); err == nil {
			day = d
		}
		header = append(header, utils.FormatDisplayDate(day)[:5])
	}
	header = append(header, "Hours", "Total", "Pay date")

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range header {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range summary.Rows {
		name := plain(row.EmployeeName)
		if row.RateNotSet {
			name += " *"
		}
		pdf.CellFormat(widths[0], 7, name, "1", 0, "L", false, 0, "")
		for i, d := range row.Days {
			text := ""
			if d.Amount != 0 {
				text = money(d.Amount)
			}
			pdf.CellFormat(widths[i+1], 7, text, "1", 0, "R", false, 0, "")
		}
		pdf.CellFormat(widths[8], 7, fmt.Sprintf("%.2f", row.TotalHours), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[9], 7, money(row.TotalAmount), "1", 0, "R", false, 0, "")
		payDate := "Not set"
		if row.DelayDays != nil {
			payDate = utils.FormatDisplayDate(row.PayDate)
		}
		pdf.CellFormat(widths[10], 7, payDate, "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(widths[0]+7*22, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[8], 8, fmt.Sprintf("%.2f", summary.GrandTotalHours), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[9], 8, money(summary.GrandTotalAmount), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[10], 8, "", "1", 1, "C", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(0, 5, "* hourly rate not set", "", 1, "L", false, 0, "")

	return pdf.Output(w)
}

// StockReportPDF writes a stock count report for the given records.
func StockReportPDF(w io.Writer, date string, records []inventory.StockRecord) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "BIEN BAN KIEM KE VAT TU", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, "Ngay: "+utils.FormatDisplayDate(date), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	widths := []float64{60, 25, 25, 25, 25, 30}
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range []string{"Product", "Start Qty", "End Qty", "Consumed", "Ordered", "Efficiency"} {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, r := range records {
		pdf.CellFormat(widths[0], 7, plain(r.Product), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, fmt.Sprint(r.StartQty), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 7, fmt.Sprint(r.EndQty), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, fmt.Sprint(r.Consumed), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 7, fmt.Sprint(r.Ordered), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[5], 7, fmt.Sprintf("%.1f%%", r.Efficiency), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(20)
	pdf.CellFormat(95, 7, "Nguoi lap bieu", "", 0, "C", false, 0, "")
	pdf.CellFormat(95, 7, "Thu kho", "", 1, "C", false, 0, "")

	return pdf.Output(w)
}
