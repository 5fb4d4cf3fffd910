package store

import (
	"context"
	"fmt"

	"github.com/brown009872/payroll-app/internal/domain/attendance"
	"github.com/brown009872/payroll-app/internal/domain/employee"
	"github.com/brown009872/payroll-app/internal/domain/payroll"
	"github.com/brown009872/payroll-app/internal/domain/schedule"
)

type Op string

const (
	OpInsert Op = "insert"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

const (
	TableEmployees  = "employees"
	TableAttendance = "daily_attendance"
	TableSchedules  = "work_schedules"
	TableDelays     = "weekly_delays"
	// TableAll is the table of a wipe of every engine table.
	TableAll = "*"
)

// Change is one row change, as published to realtime subscribers. Deletes
// carry the removed row.
type Change struct {
	Op     Op     `json:"event_type"`
	Table  string `json:"table"`
	Record any    `json:"record"`
}

// Repositories are the persistence collaborators the store writes through.
type Repositories struct {
	Employees  employee.EmployeeRepository
	Attendance attendance.AttendanceRepository
	Schedules  schedule.WorkScheduleRepository
	Delays     payroll.WeeklyDelayRepository
}

// Effect is a pending persistence write produced by a mutation.
type Effect interface {
	Change() Change
	persist(ctx context.Context, r Repositories) error
	// restore puts the rows this effect touched back to their value in prev.
	restore(prev, cur *State)
}

type employeeEffect struct {
	op  Op
	emp employee.Employee
}

func (e employeeEffect) Change() Change {
	return Change{Op: e.op, Table: TableEmployees, Record: e.emp}
}

func (e employeeEffect) persist(ctx context.Context, r Repositories) error {
	if e.op == OpDelete {
		if err := r.Employees.Delete(ctx, e.emp.ID); err != nil {
			return fmt.Errorf("failed to delete employee %s: %w", e.emp.ID, err)
		}
		return nil
	}
	if err := r.Employees.Upsert(ctx, e.emp); err != nil {
		return fmt.Errorf("failed to upsert employee %s: %w", e.emp.ID, err)
	}
	return nil
}

func (e employeeEffect) restore(prev, cur *State) {
	if old, ok := prev.Employees[e.emp.ID]; ok {
		cur.Employees[e.emp.ID] = old.Clone()
		return
	}
	delete(cur.Employees, e.emp.ID)
}

type attendanceEffect struct {
	op  Op
	rec attendance.Record
}

func (e attendanceEffect) Change() Change {
	return Change{Op: e.op, Table: TableAttendance, Record: e.rec}
}

func (e attendanceEffect) persist(ctx context.Context, r Repositories) error {
	if e.op == OpDelete {
		if err := r.Attendance.Delete(ctx, e.rec.Date, e.rec.EmployeeID); err != nil {
			return fmt.Errorf("failed to delete attendance %s/%s: %w", e.rec.Date, e.rec.EmployeeID, err)
		}
		return nil
	}
	if err := r.Attendance.Upsert(ctx, e.rec); err != nil {
		return fmt.Errorf("failed to upsert attendance %s/%s: %w", e.rec.Date, e.rec.EmployeeID, err)
	}
	return nil
}

func (e attendanceEffect) restore(prev, cur *State) {
	key := e.rec.Key()
	if old, ok := prev.Attendance[key]; ok {
		cur.Attendance[key] = old
		return
	}
	delete(cur.Attendance, key)
}

type scheduleEffect struct {
	op    Op
	entry schedule.Entry
}

func (e scheduleEffect) Change() Change {
	return Change{Op: e.op, Table: TableSchedules, Record: e.entry}
}

func (e scheduleEffect) persist(ctx context.Context, r Repositories) error {
	if e.op == OpDelete {
		if err := r.Schedules.Delete(ctx, e.entry.Date, e.entry.EmployeeID); err != nil {
			return fmt.Errorf("failed to delete schedule %s/%s: %w", e.entry.Date, e.entry.EmployeeID, err)
		}
		return nil
	}
	if err := r.Schedules.Upsert(ctx, e.entry); err != nil {
		return fmt.Errorf("failed to upsert schedule %s/%s: %w", e.entry.Date, e.entry.EmployeeID, err)
	}
	return nil
}

func (e scheduleEffect) restore(prev, cur *State) {
	key := e.entry.Key()
	if old, ok := prev.Schedules[key]; ok {
		cur.Schedules[key] = old.Clone()
		return
	}
	delete(cur.Schedules, key)
}

type delayEffect struct {
	op    Op
	delay payroll.WeeklyDelay
}

func (e delayEffect) Change() Change {
	return Change{Op: e.op, Table: TableDelays, Record: e.delay}
}

func (e delayEffect) persist(ctx context.Context, r Repositories) error {
	if err := r.Delays.Upsert(ctx, e.delay); err != nil {
		return fmt.Errorf("failed to upsert weekly delay %s/%s: %w", e.delay.WeekEndDate, e.delay.EmployeeID, err)
	}
	return nil
}

func (e delayEffect) restore(prev, cur *State) {
	key := DelayKey{WeekEndDate: e.delay.WeekEndDate, EmployeeID: e.delay.EmployeeID}
	if old, ok := prev.Delays[key]; ok {
		cur.Delays[key] = old
		return
	}
	delete(cur.Delays, key)
}

type wipeEffect struct{}

func (wipeEffect) Change() Change {
	return Change{Op: OpDelete, Table: TableAll}
}

func (wipeEffect) persist(ctx context.Context, r Repositories) error {
	if err := r.Attendance.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to wipe attendance: %w", err)
	}
	if err := r.Schedules.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to wipe schedules: %w", err)
	}
	if err := r.Delays.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to wipe weekly delays: %w", err)
	}
	if err := r.Employees.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to wipe employees: %w", err)
	}
	return nil
}

// restore brings back the wiped rows without overwriting rows written since.
func (wipeEffect) restore(prev, cur *State) {
	for k, v := range prev.Employees {
		if _, ok := cur.Employees[k]; !ok {
			cur.Employees[k] = v.Clone()
		}
	}
	for k, v := range prev.Attendance {
		if _, ok := cur.Attendance[k]; !ok {
			cur.Attendance[k] = v
		}
	}
	for k, v := range prev.Schedules {
		if _, ok := cur.Schedules[k]; !ok {
			cur.Schedules[k] = v.Clone()
		}
	}
	for k, v := range prev.Delays {
		if _, ok := cur.Delays[k]; !ok {
			cur.Delays[k] = v
		}
	}
}
