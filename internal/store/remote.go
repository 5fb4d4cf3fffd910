package store

import (
	"encoding/json"
	"fmt"

	"github.com/brown009872/payroll-app/internal/domain/attendance"
	"github.com/brown009872/payroll-app/internal/domain/employee"
	"github.com/brown009872/payroll-app/internal/domain/payroll"
	"github.com/brown009872/payroll-app/internal/domain/schedule"
)

// ApplyRemote merges a change made elsewhere into the state by composite key.
// The last applied change wins. It is not reconciled with writes of this
// process that are still being persisted, and it is never persisted again.
func (s *Store) ApplyRemote(op Op, table string, record []byte) (Change, error) {
	change := Change{Op: op, Table: table}
	switch op {
	case OpInsert, OpUpdate, OpDelete:
	default:
		return change, fmt.Errorf("unsupported event type %q", op)
	}

	var merge func(st *State)
	switch table {
	case TableEmployees:
		var e employee.Employee
		if err := json.Unmarshal(record, &e); err != nil {
			return change, fmt.Errorf("failed to decode employee: %w", err)
		}
		change.Record = e
		merge = func(st *State) {
			if op == OpDelete {
				delete(st.Employees, e.ID)
				return
			}
			st.Employees[e.ID] = e
		}
	case TableAttendance:
		var r attendance.Record
		if err := json.Unmarshal(record, &r); err != nil {
			return change, fmt.Errorf("failed to decode attendance: %w", err)
		}
		change.Record = r
		merge = func(st *State) {
			if op == OpDelete {
				delete(st.Attendance, r.Key())
				return
			}
			st.Attendance[r.Key()] = r
		}
	case TableSchedules:
		var e schedule.Entry
		if err := json.Unmarshal(record, &e); err != nil {
			return change, fmt.Errorf("failed to decode work schedule: %w", err)
		}
		change.Record = e
		merge = func(st *State) {
			if op == OpDelete {
				delete(st.Schedules, e.Key())
				return
			}
			st.Schedules[e.Key()] = e
		}
	case TableDelays:
		var d payroll.WeeklyDelay
		if err := json.Unmarshal(record, &d); err != nil {
			return change, fmt.Errorf("failed to decode weekly delay: %w", err)
		}
		change.Record = d
		key := DelayKey{WeekEndDate: d.WeekEndDate, EmployeeID: d.EmployeeID}
		merge = func(st *State) {
			if op == OpDelete {
				delete(st.Delays, key)
				return
			}
			st.Delays[key] = d
		}
	case TableAll:
		if op != OpDelete {
			return change, fmt.Errorf("unsupported event type %q for a wipe", op)
		}
		merge = func(st *State) { *st = *NewState() }
	default:
		return change, fmt.Errorf("%w: %q", ErrUnknownTable, table)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state.Clone()
	merge(next)
	s.state = next
	return change, nil
}
