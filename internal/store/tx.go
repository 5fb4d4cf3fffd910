package store

import (
	"time"

	"github.com/brown009872/payroll-app/internal/domain/attendance"
	"github.com/brown009872/payroll-app/internal/domain/employee"
	"github.com/brown009872/payroll-app/internal/domain/payroll"
	"github.com/brown009872/payroll-app/internal/domain/schedule"
	"github.com/google/uuid"
)

// Mutation changes the working state through tx. Returning an error discards
// every change it made.
type Mutation func(tx *Tx) error

// Tx is the working copy a Mutation runs against. Its writers keep the state
// and the effect list in step.
type Tx struct {
	state   *State
	now     time.Time
	effects []Effect
}

// State is the working state. Writes must go through the Tx methods.
func (t *Tx) State() *State { return t.state }

func (t *Tx) Now() time.Time { return t.now }

// Apply runs m against a copy of st and returns the new state with the
// effects to persist. st itself is not modified.
func Apply(st *State, now time.Time, m Mutation) (*State, []Effect, error) {
	tx := &Tx{state: st.Clone(), now: now}
	if err := m(tx); err != nil {
		return nil, nil, err
	}
	return tx.state, tx.effects, nil
}

func (t *Tx) PutEmployee(e employee.Employee) employee.Employee {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	op := OpInsert
	if old, ok := t.state.Employees[e.ID]; ok {
		op = OpUpdate
		e.CreatedAt = old.CreatedAt
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = t.now
	}
	e.UpdatedAt = t.now

	t.state.Employees[e.ID] = e
	t.effects = append(t.effects, employeeEffect{op: op, emp: e.Clone()})
	return e
}

func (t *Tx) DeleteEmployee(id string) bool {
	old, ok := t.state.Employees[id]
	if !ok {
		return false
	}
	delete(t.state.Employees, id)
	t.effects = append(t.effects, employeeEffect{op: OpDelete, emp: old.Clone()})
	return true
}

// PutAttendance upserts rec under its (date, employee) key. A record already
// stored under that key keeps its id.
func (t *Tx) PutAttendance(rec attendance.Record) attendance.Record {
	key := rec.Key()
	op := OpInsert
	if old, ok := t.state.Attendance[key]; ok {
		op = OpUpdate
		rec.ID = old.ID
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.UpdatedAt = t.now

	t.state.Attendance[key] = rec
	t.effects = append(t.effects, attendanceEffect{op: op, rec: rec})
	return rec
}

func (t *Tx) DeleteAttendance(key attendance.Key) bool {
	old, ok := t.state.Attendance[key]
	if !ok {
		return false
	}
	delete(t.state.Attendance, key)
	t.effects = append(t.effects, attendanceEffect{op: OpDelete, rec: old})
	return true
}

// PutSchedule upserts entry under its (date, employee) key.
func (t *Tx) PutSchedule(entry schedule.Entry) schedule.Entry {
	key := entry.Key()
	op := OpInsert
	if old, ok := t.state.Schedules[key]; ok {
		op = OpUpdate
		entry.ID = old.ID
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	entry.UpdatedAt = t.now

	t.state.Schedules[key] = entry.Clone()
	t.effects = append(t.effects, scheduleEffect{op: op, entry: entry.Clone()})
	return entry
}

func (t *Tx) DeleteSchedule(key schedule.Key) bool {
	old, ok := t.state.Schedules[key]
	if !ok {
		return false
	}
	delete(t.state.Schedules, key)
	t.effects = append(t.effects, scheduleEffect{op: OpDelete, entry: old})
	return true
}

func (t *Tx) PutDelay(d payroll.WeeklyDelay) payroll.WeeklyDelay {
	key := DelayKey{WeekEndDate: d.WeekEndDate, EmployeeID: d.EmployeeID}
	op := OpInsert
	if _, ok := t.state.Delays[key]; ok {
		op = OpUpdate
	}
	d.UpdatedAt = t.now

	t.state.Delays[key] = d
	t.effects = append(t.effects, delayEffect{op: op, delay: d})
	return d
}

// Wipe empties every table and reports how many rows each held.
func (t *Tx) Wipe() (employees, records, entries, delays int) {
	employees = len(t.state.Employees)
	records = len(t.state.Attendance)
	entries = len(t.state.Schedules)
	delays = len(t.state.Delays)

	t.state.Employees = make(map[string]employee.Employee)
	t.state.Attendance = make(map[attendance.Key]attendance.Record)
	t.state.Schedules = make(schedule.Grid)
	t.state.Delays = make(map[DelayKey]payroll.WeeklyDelay)
	t.effects = append(t.effects, wipeEffect{})
	return employees, records, entries, delays
}
