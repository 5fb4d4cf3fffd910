// Package memory keeps every table in process memory. It backs the service
// when no database is configured and is used by tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/brown009872/payroll-app/internal/domain/attendance"
	"github.com/brown009872/payroll-app/internal/domain/employee"
	"github.com/brown009872/payroll-app/internal/domain/payroll"
	"github.com/brown009872/payroll-app/internal/domain/schedule"
)

type employeeRepositoryImpl struct {
	mu   sync.RWMutex
	rows map[string]employee.Employee
}

func NewEmployeeRepository() employee.EmployeeRepository {
	return &employeeRepositoryImpl{rows: make(map[string]employee.Employee)}
}

func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]employee.Employee, 0, len(r.rows))
	for _, e := range r.rows {
		out = append(out, e.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *employeeRepositoryImpl) Upsert(ctx context.Context, emp employee.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[emp.ID] = emp.Clone()
	return nil
}

func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

func (r *employeeRepositoryImpl) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = make(map[string]employee.Employee)
	return nil
}

type attendanceRepositoryImpl struct {
	mu   sync.RWMutex
	rows map[attendance.Key]attendance.Record
}

func NewAttendanceRepository() attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{rows: make(map[attendance.Key]attendance.Record)}
}

func (r *attendanceRepositoryImpl) List(ctx context.Context) ([]attendance.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]attendance.Record, 0, len(r.rows))
	for _, rec := range r.rows {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].EmployeeID < out[j].EmployeeID
	})
	return out, nil
}

func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, rec attendance.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[rec.Key()] = rec
	return nil
}

func (r *attendanceRepositoryImpl) Delete(ctx context.Context, date, employeeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, attendance.Key{Date: date, EmployeeID: employeeID})
	return nil
}

func (r *attendanceRepositoryImpl) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = make(map[attendance.Key]attendance.Record)
	return nil
}

type workScheduleRepositoryImpl struct {
	mu   sync.RWMutex
	rows schedule.Grid
}

func NewWorkScheduleRepository() schedule.WorkScheduleRepository {
	return &workScheduleRepositoryImpl{rows: make(schedule.Grid)}
}

func (r *workScheduleRepositoryImpl) List(ctx context.Context) ([]schedule.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]schedule.Entry, 0, len(r.rows))
	for _, e := range r.rows {
		out = append(out, e.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].EmployeeID < out[j].EmployeeID
	})
	return out, nil
}

func (r *workScheduleRepositoryImpl) Upsert(ctx context.Context, entry schedule.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[entry.Key()] = entry.Clone()
	return nil
}

func (r *workScheduleRepositoryImpl) Delete(ctx context.Context, date, employeeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, schedule.Key{Date: date, EmployeeID: employeeID})
	return nil
}

func (r *workScheduleRepositoryImpl) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = make(schedule.Grid)
	return nil
}

type delayKey struct{ weekEnd, employeeID string }

type weeklyDelayRepositoryImpl struct {
	mu   sync.RWMutex
	rows map[delayKey]payroll.WeeklyDelay
}

func NewWeeklyDelayRepository() payroll.WeeklyDelayRepository {
	return &weeklyDelayRepositoryImpl{rows: make(map[delayKey]payroll.WeeklyDelay)}
}

func (r *weeklyDelayRepositoryImpl) List(ctx context.Context) ([]payroll.WeeklyDelay, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]payroll.WeeklyDelay, 0, len(r.rows))
	for _, d := range r.rows {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].WeekEndDate != out[j].WeekEndDate {
			return out[i].WeekEndDate < out[j].WeekEndDate
		}
		return out[i].EmployeeID < out[j].EmployeeID
	})
	return out, nil
}

func (r *weeklyDelayRepositoryImpl) Upsert(ctx context.Context, d payroll.WeeklyDelay) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[delayKey{d.WeekEndDate, d.EmployeeID}] = d
	return nil
}

func (r *weeklyDelayRepositoryImpl) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = make(map[delayKey]payroll.WeeklyDelay)
	return nil
}
