package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/brown009872/payroll-app/internal/domain/attendance"
	"github.com/brown009872/payroll-app/internal/domain/inventory"
	"github.com/brown009872/payroll-app/internal/domain/payroll"
	"github.com/brown009872/payroll-app/internal/domain/revenue"
	"github.com/brown009872/payroll-app/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestScheduleXLSX(t *testing.T) {
	days := []schedule.DayExport{
		{Date: "2025-06-09", Morning: []string{"An", "Binh"}, Afternoon: []string{"Chi"}},
		{Date: "2025-06-10", Morning: []string{}, Afternoon: []string{}},
	}

	var buf bytes.Buffer
	require.NoError(t, ScheduleXLSX(&buf, days))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ScheduleSheet)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 3)
	assert.Equal(t, []string{"Shift", "Mon 09/06", "Tue 10/06"}, rows[0])
	assert.Equal(t, "Morning", rows[1][0])
	assert.Equal(t, "An, Binh", rows[1][1])
	assert.Equal(t, "Chi", rows[2][1])
}

func TestLedgerXLSX(t *testing.T) {
	days := []revenue.DailyRevenue{
		{Date: "2025-03-01", Offline: 1000000, Grab: 200000},
		{Date: "2025-03-02", Offline: 500000, Be: 100000},
	}
	summary := revenue.Summarize(2025, 3, days)
	settings := revenue.BusinessSettings{BusinessName: "Quán Cơm", TaxNumber: "0123456789"}

	var buf bytes.Buffer
	require.NoError(t, LedgerXLSX(&buf, settings, summary))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue(LedgerSheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "Quán Cơm", name)

	date, err := f.GetCellValue(LedgerSheet, "A9")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", date)

	total, err := f.GetCellValue(LedgerSheet, "A11")
	require.NoError(t, err)
	assert.Equal(t, "Tổng cộng", total)
}

func TestAttendanceCSV(t *testing.T) {
	rows := []attendance.ExportRow{
		{Date: "2025-06-09", EmployeeID: "e1", FullName: "An", CheckIn: "08:00", CheckOut: "12:00", Hours: 4, Rate: 25000, Multiplier: "1", Total: 100000},
	}

	var buf bytes.Buffer
	require.NoError(t, AttendanceCSV(&buf, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Date,Employee ID,Full Name"))
	assert.Contains(t, lines[1], "2025-06-09,e1,An")
}

func TestAttendanceCSV_EmptyWritesHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, AttendanceCSV(&buf, nil))
	assert.True(t, strings.HasPrefix(buf.String(), "Date,"))
}

func TestWeeklyPayrollPDF(t *testing.T) {
	delay := 3
	summary := payroll.WeeklySummary{
		WeekStart: "2025-06-09",
		WeekEnd:   "2025-06-15",
		Rows: []payroll.WeeklyRow{
			{EmployeeName: "Nguyễn Văn Đạt", TotalHours: 8, TotalAmount: 200000, DelayDays: &delay, PayDate: "2025-06-18"},
			{EmployeeName: "Trần Thị B", TotalHours: 4, RateNotSet: true},
		},
		GrandTotalHours:  12,
		GrandTotalAmount: 200000,
	}

	var buf bytes.Buffer
	require.NoError(t, WeeklyPayrollPDF(&buf, summary))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestStockReportPDF(t *testing.T) {
	records := []inventory.StockRecord{{Product: "Gạo", StartQty: 10, EndQty: 4, Consumed: 6, Ordered: 8, Efficiency: 75}}

	var buf bytes.Buffer
	require.NoError(t, StockReportPDF(&buf, "2025-06-09", records))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestPlain(t *testing.T) {
	assert.Equal(t, "Nguyen Van Dat", plain("Nguyễn Văn Đạt"))
	assert.Equal(t, "Tran Thi Bich", plain("Trần Thị Bích"))
}
