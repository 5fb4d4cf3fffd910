package attendance

import (
	"context"
	"io"
	"log/slog"
	"sort"

	"github.com/brown009872/payroll-app/internal/domain/attendance"
	"github.com/brown009872/payroll-app/internal/domain/employee"
	"github.com/brown009872/payroll-app/internal/pkg/export"
	"github.com/brown009872/payroll-app/internal/pkg/utils"
	"github.com/brown009872/payroll-app/internal/pkg/validator"
	"github.com/brown009872/payroll-app/internal/store"
)

type AttendanceServiceImpl struct {
	store  *store.Store
	logger *slog.Logger
}

func NewAttendanceService(st *store.Store, logger *slog.Logger) attendance.AttendanceService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AttendanceServiceImpl{store: st, logger: logger}
}

func (s *AttendanceServiceImpl) dispatch(ctx context.Context, name string, m store.Mutation) error {
	p, err := s.store.Dispatch(name, m)
	if err != nil {
		return err
	}
	return store.Settle(ctx, p)
}

func toView(rec attendance.Record, emp employee.Employee, known, exists bool) attendance.RecordView {
	v := attendance.RecordView{
		Record:       rec,
		EmployeeName: employee.DeletedPlaceholder,
		RateNotSet:   !rec.HasRate(),
		Exists:       exists,
	}
	if known {
		v.EmployeeName = emp.FullName
		v.Position = emp.Position
	}
	return v
}

// GetDailySheet implements attendance.AttendanceService. Active employees
// are always listed; anyone else only when they have a record that day.
func (s *AttendanceServiceImpl) GetDailySheet(ctx context.Context, date string) (attendance.DailySheet, error) {
	if _, ok := validator.IsValidDate(date); !ok {
		var errs validator.ValidationErrors
		errs.Add("date", "date must be in YYYY-MM-DD format")
		return attendance.DailySheet{}, errs.Err()
	}

	st := s.store.Snapshot()
	sheet := attendance.DailySheet{Date: date, Rows: []attendance.RecordView{}}
	listed := make(map[string]bool)

	for _, emp := range st.EmployeeList() {
		rec, exists := st.Attendance[attendance.Key{Date: date, EmployeeID: emp.ID}]
		if !exists {
			if emp.Status != employee.StatusActive {
				continue
			}
			rec = attendance.NewRecord(date, emp.ID)
			rec.HourlyRate, _ = emp.Rate()
			rec.Recalculate()
		}
		sheet.Rows = append(sheet.Rows, toView(rec, emp, true, exists))
		listed[emp.ID] = true
	}

	var orphans []attendance.Record
	for key, rec := range st.Attendance {
		if key.Date == date && !listed[key.EmployeeID] {
			orphans = append(orphans, rec)
		}
	}
	sort.Slice(orphans, func(i, j int) bool { return orphans[i].EmployeeID < orphans[j].EmployeeID })
	for _, rec := range orphans {
		sheet.Rows = append(sheet.Rows, toView(rec, employee.Employee{}, false, true))
	}

	for _, row := range sheet.Rows {
		if row.Exists {
			sheet.TotalHours += row.TotalHours
			sheet.TotalAmount += row.DayTotal
		}
	}
	return sheet, nil
}

// UpdateRecord implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) UpdateRecord(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.RecordView, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordView{}, err
	}

	var view attendance.RecordView
	err := s.dispatch(ctx, "attendance.update", func(tx *store.Tx) error {
		st := tx.State()
		emp, ok := st.Employee(req.EmployeeID)
		if !ok {
			return attendance.ErrEmployeeNotFound
		}

		var current *attendance.Record
		if rec, exists := st.Attendance[attendance.Key{Date: req.Date, EmployeeID: req.EmployeeID}]; exists {
			current = &rec
		}
		rate, _ := emp.Rate()
		rec, err := attendance.ApplyUpdate(current, req, rate)
		if err != nil {
			return err
		}
		view = toView(tx.PutAttendance(rec), emp, true, true)
		return nil
	})
	return view, err
}

// DeleteRecord implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteRecord(ctx context.Context, date, employeeID string) error {
	return s.dispatch(ctx, "attendance.delete", func(tx *store.Tx) error {
		if !tx.DeleteAttendance(attendance.Key{Date: date, EmployeeID: employeeID}) {
			return attendance.ErrAttendanceNotFound
		}
		return nil
	})
}

// ClearDay implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClearDay(ctx context.Context, req attendance.ClearDayRequest) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}
	if !req.Confirm {
		return 0, attendance.ErrConfirmationRequired
	}

	var removed int
	err := s.dispatch(ctx, "attendance.clear_day", func(tx *store.Tx) error {
		for _, key := range keysWhere(tx.State(), func(k attendance.Key) bool { return k.Date == req.Date }) {
			if tx.DeleteAttendance(key) {
				removed++
			}
		}
		return nil
	})
	if err == nil {
		s.logger.Info("Attendance day cleared", "date", req.Date, "records", removed)
	}
	return removed, err
}

// ClearEmployeeWeek implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClearEmployeeWeek(ctx context.Context, req attendance.ClearWeekRequest) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}
	if !req.Confirm {
		return 0, attendance.ErrConfirmationRequired
	}
	days, err := utils.WeekDays(req.Anchor)
	if err != nil {
		return 0, err
	}

	var removed int
	err = s.dispatch(ctx, "attendance.clear_week", func(tx *store.Tx) error {
		for _, day := range days {
			if tx.DeleteAttendance(attendance.Key{Date: day, EmployeeID: req.EmployeeID}) {
				removed++
			}
		}
		return nil
	})
	return removed, err
}

// ExportCSV implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ExportCSV(ctx context.Context, req attendance.ExportRequest, w io.Writer) error {
	if err := req.Validate(); err != nil {
		return err
	}

	st := s.store.Snapshot()
	rows := []attendance.ExportRow{}
	for key, rec := range st.Attendance {
		if !utils.IsDateBetween(key.Date, req.From, req.To) {
			continue
		}
		row := attendance.ExportRow{
			Date:       rec.Date,
			EmployeeID: rec.EmployeeID,
			FullName:   employee.DeletedPlaceholder,
			CheckIn:    rec.CheckIn,
			CheckOut:   rec.CheckOut,
			Hours:      rec.TotalHours,
			Rate:       rec.HourlyRate,
			Multiplier: rec.Multiplier.Label(),
			Bonus:      rec.Bonus,
			Penalty:    rec.Penalty,
			Total:      rec.DayTotal,
		}
		if emp, ok := st.Employee(rec.EmployeeID); ok {
			row.FullName = emp.FullName
			row.Position = emp.Position
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date < rows[j].Date
		}
		return rows[i].FullName < rows[j].FullName
	})

	return export.AttendanceCSV(w, rows)
}

func keysWhere(st *store.State, match func(attendance.Key) bool) []attendance.Key {
	var keys []attendance.Key
	for k := range st.Attendance {
		if match(k) {
			keys = append(keys, k)
		}
	}
	return keys
}
