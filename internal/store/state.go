package store

import (
	"sort"

	"github.com/brown009872/payroll-app/internal/domain/attendance"
	"github.com/brown009872/payroll-app/internal/domain/employee"
	"github.com/brown009872/payroll-app/internal/domain/payroll"
	"github.com/brown009872/payroll-app/internal/domain/schedule"
)

// DelayKey identifies a weekly delay.
type DelayKey struct {
	WeekEndDate string
	EmployeeID  string
}

// State is the in-memory copy of the engine tables. Every table is keyed by
// the same composite key the database uses as its conflict target, so a key
// holds at most one row.
//
// A State published by the Store is never modified again; mutations work on
// a Clone.
type State struct {
	Employees  map[string]employee.Employee
	Attendance map[attendance.Key]attendance.Record
	Schedules  schedule.Grid
	Delays     map[DelayKey]payroll.WeeklyDelay
}

func NewState() *State {
	return &State{
		Employees:  make(map[string]employee.Employee),
		Attendance: make(map[attendance.Key]attendance.Record),
		Schedules:  make(schedule.Grid),
		Delays:     make(map[DelayKey]payroll.WeeklyDelay),
	}
}

// Clone returns a deep copy of s.
func (s *State) Clone() *State {
	c := &State{
		Employees:  make(map[string]employee.Employee, len(s.Employees)),
		Attendance: make(map[attendance.Key]attendance.Record, len(s.Attendance)),
		Schedules:  make(schedule.Grid, len(s.Schedules)),
		Delays:     make(map[DelayKey]payroll.WeeklyDelay, len(s.Delays)),
	}
	for k, v := range s.Employees {
		c.Employees[k] = v.Clone()
	}
	for k, v := range s.Attendance {
		c.Attendance[k] = v
	}
	for k, v := range s.Schedules {
		c.Schedules[k] = v.Clone()
	}
	for k, v := range s.Delays {
		c.Delays[k] = v
	}
	return c
}

func (s *State) Employee(id string) (employee.Employee, bool) {
	e, ok := s.Employees[id]
	return e, ok
}

// EmployeeList returns the employees in list order: oldest first, then by name.
func (s *State) EmployeeList() []employee.Employee {
	list := make([]employee.Employee, 0, len(s.Employees))
	for _, e := range s.Employees {
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		if a.FullName != b.FullName {
			return a.FullName < b.FullName
		}
		return a.ID < b.ID
	})
	return list
}

// IsOnLeave reports whether a known employee is on leave on date.
func (s *State) IsOnLeave(employeeID, date string) bool {
	e, ok := s.Employees[employeeID]
	return ok && e.IsOnLeave(date)
}

// References reports whether any attendance or schedule row points at employeeID.
func (s *State) References(employeeID string) bool {
	for k := range s.Attendance {
		if k.EmployeeID == employeeID {
			return true
		}
	}
	for k := range s.Schedules {
		if k.EmployeeID == employeeID {
			return true
		}
	}
	return false
}

// Delay returns the configured delay of an employee for the week ending on weekEnd.
func (s *State) Delay(weekEnd, employeeID string) (payroll.WeeklyDelay, bool) {
	d, ok := s.Delays[DelayKey{WeekEndDate: weekEnd, EmployeeID: employeeID}]
	return d, ok
}

// Directory exposes the employees to the schedule views.
func (s *State) Directory() schedule.Directory {
	return directory{state: s, list: s.EmployeeList()}
}

type directory struct {
	state *State
	list  []employee.Employee
}

func (d directory) Get(id string) (employee.Employee, bool) { return d.state.Employee(id) }
func (d directory) All() []employee.Employee               { return d.list }
