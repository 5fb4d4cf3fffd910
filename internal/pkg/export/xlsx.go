package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/brown009872/payroll-app/internal/domain/revenue"
	"github.com/brown009872/payroll-app/internal/domain/schedule"
	"github.com/brown009872/payroll-app/internal/pkg/utils"
	"github.com/xuri/excelize/v2"
)

const (
	ScheduleSheet = "Schedule"
	LedgerSheet   = "S2A"
)

// ScheduleXLSX writes a week as one column per day with a Morning and an
// Afternoon row listing the employee names.
func ScheduleXLSX(w io.Writer, days []schedule.DayExport) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ScheduleSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := []interface{}{"Shift"}
	morning := []interface{}{"Morning"}
	afternoon := []interface{}{"Afternoon"}
	for _, d := range days {
		label := d.Date
		if wd, err := utils.Weekday(d.Date); err == nil {
			label = wd.String()[:3] + " " + d.Date[8:10] + "/" + d.Date[5:7]
		}
		header = append(header, label)
		morning = append(morning, strings.Join(d.Morning, ", "))
		afternoon = append(afternoon, strings.Join(d.Afternoon, ", "))
	}

	for i, row := range [][]interface{}{header, morning, afternoon} {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(ScheduleSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write schedule row: %w", err)
		}
	}

	if err := f.SetColWidth(ScheduleSheet, "A", "A", 15); err != nil {
		return err
	}
	last, _ := excelize.ColumnNumberToName(len(days) + 1)
	if len(days) > 0 {
		if err := f.SetColWidth(ScheduleSheet, "B", last, 30); err != nil {
			return err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(ScheduleSheet, "A1", last+"1", bold); err != nil {
		return err
	}

	return f.Write(w)
}

// LedgerXLSX writes the monthly S2A revenue book of a household business.
func LedgerXLSX(w io.Writer, settings revenue.BusinessSettings, summary revenue.MonthlySummary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", LedgerSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	rows := [][]interface{}{
		{"HỘ, CÁ NHÂN KINH DOANH:", settings.BusinessName},
		{"Địa chỉ:", settings.Address},
		{"Mã số thuế:", settings.TaxNumber},
		{"Địa điểm kinh doanh:", settings.BusinessLocation},
		{},
		{fmt.Sprintf("SỔ DOANH THU BÁN HÀNG HÓA, DỊCH VỤ (S2a-HKD) - Tháng %02d/%d", summary.Month, summary.Year)},
		{},
		{"Ngày", "Tại cửa hàng", "Grab", "ShopeeFood", "Be", "XanhSM", "Tổng cộng"},
	}
	for _, d := range summary.Days {
		rows = append(rows, []interface{}{d.Date, d.Offline, d.Grab, d.ShopeeFood, d.Be, d.XanhSm, d.Total()})
	}
	rows = append(rows,
		[]interface{}{"Tổng cộng", summary.TotalOffline, summary.TotalGrab, summary.TotalShopeeFood, summary.TotalBe, summary.TotalXanhSm, summary.GrandTotal},
		[]interface{}{},
		[]interface{}{"Thuế GTGT (3%)", summary.Taxes.OfflineGTGT, summary.Taxes.OnlineGTGT, "", "", "", summary.Taxes.TotalGTGT},
		[]interface{}{"Thuế TNCN (1.5%)", summary.Taxes.OfflineTNCN, summary.Taxes.OnlineTNCN, "", "", "", summary.Taxes.TotalTNCN},
		[]interface{}{"Tổng thuế phải nộp", "", "", "", "", "", summary.Taxes.Total},
		[]interface{}{},
		[]interface{}{"Người đại diện:", settings.RepresentativeName},
	)

	for i := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(LedgerSheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("failed to write ledger row: %w", err)
		}
	}

	money, err := f.NewStyle(&excelize.Style{NumFmt: 3})
	if err != nil {
		return err
	}
	lastRow := len(rows)
	if err := f.SetCellStyle(LedgerSheet, "B9", fmt.Sprintf("G%d", lastRow), money); err != nil {
		return err
	}
	if err := f.SetColWidth(LedgerSheet, "A", "A", 24); err != nil {
		return err
	}
	if err := f.SetColWidth(LedgerSheet, "B", "G", 16); err != nil {
		return err
	}

	return f.Write(w)
}
