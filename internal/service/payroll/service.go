package payroll

import (
	"context"
	"io"
	"log/slog"
	"sort"

	"github.com/brown009872/payroll-app/internal/domain/attendance"
	"github.com/brown009872/payroll-app/internal/domain/employee"
	"github.com/brown009872/payroll-app/internal/domain/payroll"
	"github.com/brown009872/payroll-app/internal/pkg/export"
	"github.com/brown009872/payroll-app/internal/pkg/utils"
	"github.com/brown009872/payroll-app/internal/pkg/validator"
	"github.com/brown009872/payroll-app/internal/store"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	store  *store.Store
	logger *slog.Logger
}

func NewPayrollService(st *store.Store, logger *slog.Logger) payroll.PayrollService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PayrollServiceImpl{store: st, logger: logger}
}

// WeeklySummary implements payroll.PayrollService.
func (s *PayrollServiceImpl) WeeklySummary(ctx context.Context, anchor string) (payroll.WeeklySummary, error) {
	days, err := utils.WeekDays(anchor)
	if err != nil {
		var errs validator.ValidationErrors
		errs.Add("anchor", "anchor must be in YYYY-MM-DD format")
		return payroll.WeeklySummary{}, errs.Err()
	}
	return Summarize(s.store.Snapshot(), days)
}

// Summarize aggregates the attendance of days per employee. Employees with
// neither hours nor pay that week are left out.
func Summarize(st *store.State, days [7]string) (payroll.WeeklySummary, error) {
	weekEnd := days[6]
	summary := payroll.WeeklySummary{WeekStart: days[0], WeekEnd: weekEnd, Rows: []payroll.WeeklyRow{}}

	index := make(map[string]int, len(days))
	for i, d := range days {
		index[d] = i
	}

	rows := make(map[string]*payroll.WeeklyRow)
	hours := make(map[string]decimal.Decimal)
	for key, rec := range st.Attendance {
		i, ok := index[key.Date]
		if !ok {
			continue
		}
		row, ok := rows[key.EmployeeID]
		if !ok {
			row = newRow(st, key.EmployeeID, days)
			rows[key.EmployeeID] = row
		}
		addDay(row, i, rec)
		hours[key.EmployeeID] = hours[key.EmployeeID].Add(decimal.NewFromFloat(rec.TotalHours))
	}

	grandHours := decimal.Zero
	for id, row := range rows {
		row.TotalHours = hours[id].Round(2).InexactFloat64()
		if row.TotalHours <= 0 && row.TotalAmount <= 0 {
			continue
		}
		if d, ok := st.Delay(weekEnd, id); ok {
			delay := d.DelayDays
			payDate, err := payroll.PayDate(weekEnd, delay)
			if err != nil {
				return payroll.WeeklySummary{}, err
			}
			row.DelayDays = &delay
			row.PayDate = payDate
		}
		summary.Rows = append(summary.Rows, *row)
		grandHours = grandHours.Add(hours[id])
		summary.GrandTotalAmount += row.TotalAmount
	}
	summary.GrandTotalHours = grandHours.Round(2).InexactFloat64()

	sort.Slice(summary.Rows, func(i, j int) bool {
		a, b := summary.Rows[i], summary.Rows[j]
		if a.EmployeeName != b.EmployeeName {
			return a.EmployeeName < b.EmployeeName
		}
		return a.EmployeeID < b.EmployeeID
	})
	return summary, nil
}

func newRow(st *store.State, employeeID string, days [7]string) *payroll.WeeklyRow {
	row := &payroll.WeeklyRow{EmployeeID: employeeID, EmployeeName: employee.DeletedPlaceholder}
	if emp, ok := st.Employee(employeeID); ok {
		row.EmployeeName = emp.FullName
		row.Position = emp.Position
	}
	for i, d := range days {
		row.Days[i].Date = d
	}
	return row
}

func addDay(row *payroll.WeeklyRow, i int, rec attendance.Record) {
	row.Days[i].Hours = rec.TotalHours
	row.Days[i].Amount = rec.DayTotal
	row.TotalAmount += rec.DayTotal
	if rec.TotalHours > 0 && !rec.HasRate() {
		row.RateNotSet = true
	}
}

// SetWeeklyDelay implements payroll.PayrollService.
func (s *PayrollServiceImpl) SetWeeklyDelay(ctx context.Context, req payroll.SetWeeklyDelayRequest) (payroll.WeeklyDelay, error) {
	if err := req.Validate(); err != nil {
		return payroll.WeeklyDelay{}, err
	}

	var saved payroll.WeeklyDelay
	p, err := s.store.Dispatch("payroll.set_delay", func(tx *store.Tx) error {
		saved = tx.PutDelay(payroll.WeeklyDelay{
			WeekEndDate: req.WeekEndDate,
			EmployeeID:  req.EmployeeID,
			DelayDays:   req.DelayDays,
		})
		return nil
	})
	if err != nil {
		return payroll.WeeklyDelay{}, err
	}
	if err := store.Settle(ctx, p); err != nil {
		return payroll.WeeklyDelay{}, err
	}
	return saved, nil
}

// ExportWeeklyPDF implements payroll.PayrollService.
func (s *PayrollServiceImpl) ExportWeeklyPDF(ctx context.Context, anchor string, w io.Writer) error {
	summary, err := s.WeeklySummary(ctx, anchor)
	if err != nil {
		return err
	}
	return export.WeeklyPayrollPDF(w, summary)
}
