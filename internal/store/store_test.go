package store

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/brown009872/payroll-app/internal/domain/attendance"
	"github.com/brown009872/payroll-app/internal/domain/employee"
	"github.com/brown009872/payroll-app/internal/domain/payroll"
	"github.com/brown009872/payroll-app/internal/domain/schedule"
	"github.com/brown009872/payroll-app/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStoreDown = errors.New("connection refused")

type flakyAttendanceRepo struct {
	attendance.AttendanceRepository
	down atomic.Bool
}

func (r *flakyAttendanceRepo) Upsert(ctx context.Context, rec attendance.Record) error {
	if r.down.Load() {
		return errStoreDown
	}
	return r.AttendanceRepository.Upsert(ctx, rec)
}

type flakyScheduleRepo struct {
	schedule.WorkScheduleRepository
	down atomic.Bool
}

func (r *flakyScheduleRepo) DeleteAll(ctx context.Context) error {
	if r.down.Load() {
		return errStoreDown
	}
	return r.WorkScheduleRepository.DeleteAll(ctx)
}

type recordingNotifier struct {
	mu        sync.Mutex
	committed [][]Change
	failed    []string
}

func (n *recordingNotifier) Committed(ctx context.Context, changes []Change) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.committed = append(n.committed, changes)
}

func (n *recordingNotifier) Failed(ctx context.Context, mutation string, err error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.failed = append(n.failed, mutation)
}

func memoryRepos() Repositories {
	return Repositories{
		Employees:  memory.NewEmployeeRepository(),
		Attendance: memory.NewAttendanceRepository(),
		Schedules:  memory.NewWorkScheduleRepository(),
		Delays:     memory.NewWeeklyDelayRepository(),
	}
}

func newTestStore(t *testing.T, repos Repositories, n Notifier) *Store {
	t.Helper()
	s := New(repos, nil, Options{
		Origin:   "test",
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Notifier: n,
	})
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

func putRecord(date, employeeID, in, out string) Mutation {
	return func(tx *Tx) error {
		rec := attendance.NewRecord(date, employeeID)
		rec.CheckIn, rec.CheckOut, rec.HourlyRate = in, out, 50_000
		rec.Recalculate()
		tx.PutAttendance(rec)
		return nil
	}
}

func TestDispatch_CompositeKeyUniqueness(t *testing.T) {
	ctx := context.Background()
	repos := memoryRepos()
	s := newTestStore(t, repos, nil)

	p1, err := s.Dispatch("first", putRecord("2025-06-10", "e1", "09:00", "12:00"))
	require.NoError(t, err)
	p2, err := s.Dispatch("second", putRecord("2025-06-10", "e1", "09:00", "17:30"))
	require.NoError(t, err)
	require.NoError(t, p1.Wait(ctx))
	require.NoError(t, p2.Wait(ctx))

	st := s.Snapshot()
	require.Len(t, st.Attendance, 1)
	rec := st.Attendance[attendance.Key{Date: "2025-06-10", EmployeeID: "e1"}]
	assert.Equal(t, "17:30", rec.CheckOut)
	assert.Equal(t, 8.5, rec.TotalHours)

	stored, err := repos.Attendance.List(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, rec.ID, stored[0].ID)
}

func TestDispatch_RollbackOnPersistenceFailure(t *testing.T) {
	ctx := context.Background()
	repos := memoryRepos()
	flaky := &flakyAttendanceRepo{AttendanceRepository: repos.Attendance}
	repos.Attendance = flaky
	notifier := &recordingNotifier{}
	s := newTestStore(t, repos, notifier)

	p, err := s.Dispatch("seed", putRecord("2025-06-09", "e1", "08:00", "16:00"))
	require.NoError(t, err)
	require.NoError(t, p.Wait(ctx))

	before := s.Snapshot().Clone()

	flaky.down.Store(true)

	p, err = s.Dispatch("update_attendance", func(tx *Tx) error {
		putRecord("2025-06-09", "e1", "10:00", "11:00")(tx)
		putRecord("2025-06-10", "e1", "10:00", "11:00")(tx)
		return nil
	})
	require.NoError(t, err)

	err = p.Wait(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSyncFailed)
	assert.ErrorIs(t, err, errStoreDown)

	assert.Equal(t, before.Attendance, s.Snapshot().Attendance)
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	assert.Equal(t, []string{"update_attendance"}, notifier.failed)
}

func TestDispatch_FailedWriteRollsBackEarlierWrites(t *testing.T) {
	ctx := context.Background()
	repos := memoryRepos()
	inTx := memory.NewTxFunc(repos.Employees, repos.Attendance, repos.Schedules, repos.Delays)
	flaky := &flakyAttendanceRepo{AttendanceRepository: repos.Attendance}
	repos.Attendance = flaky
	s := New(repos, inTx, Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	flaky.down.Store(true)

	p, err := s.Dispatch("hire_and_clock_in", func(tx *Tx) error {
		tx.PutEmployee(employee.Employee{ID: "e1", FullName: "An", Status: employee.StatusActive})
		return putRecord("2025-06-10", "e1", "09:00", "17:00")(tx)
	})
	require.NoError(t, err)
	require.ErrorIs(t, p.Wait(ctx), ErrSyncFailed)

	assert.Empty(t, s.Snapshot().Employees)
	stored, err := repos.Employees.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestDispatch_MutationErrorChangesNothing(t *testing.T) {
	s := newTestStore(t, memoryRepos(), nil)
	before := s.Snapshot()

	errRule := errors.New("rule violated")
	p, err := s.Dispatch("bad", func(tx *Tx) error {
		tx.PutEmployee(employee.Employee{FullName: "An"})
		return errRule
	})

	assert.Nil(t, p)
	assert.ErrorIs(t, err, errRule)
	assert.Same(t, before, s.Snapshot())
	assert.Empty(t, s.Snapshot().Employees)
}

func TestDispatch_NoEffectsSettlesImmediately(t *testing.T) {
	s := newTestStore(t, memoryRepos(), nil)

	p, err := s.Dispatch("noop", func(tx *Tx) error { return nil })
	require.NoError(t, err)

	select {
	case <-p.Done():
	default:
		t.Fatal("pending should already be settled")
	}
}

func TestDispatch_MoveIsOneMutation(t *testing.T) {
	ctx := context.Background()
	notifier := &recordingNotifier{}
	s := newTestStore(t, memoryRepos(), notifier)

	p, err := s.Dispatch("toggle", func(tx *Tx) error {
		e := schedule.GetOrCreateEntry(tx.State().Schedules, "2025-06-10", "e1")
		e.Slots = e.Slots.With(schedule.SlotMorning)
		tx.PutSchedule(e)
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, p.Wait(ctx))

	p, err = s.Dispatch("move", func(tx *Tx) error {
		grid := tx.State().Schedules.Clone()
		changed, err := schedule.Move(grid, schedule.DragSource{EmployeeID: "e1", FromDate: "2025-06-10", FromSlot: schedule.SlotMorning}, "2025-06-11", schedule.SlotEvening, tx.State().IsOnLeave)
		if err != nil {
			return err
		}
		for _, e := range changed {
			tx.PutSchedule(e)
		}
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, p.Wait(ctx))

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	require.Len(t, notifier.committed, 2)
	assert.Len(t, notifier.committed[1], 2)
	assert.Equal(t, OpUpdate, notifier.committed[1][0].Op)
	assert.Equal(t, OpInsert, notifier.committed[1][1].Op)
}

func TestDispatch_WipeRollbackRestoresRows(t *testing.T) {
	ctx := context.Background()
	repos := memoryRepos()
	flaky := &flakyScheduleRepo{WorkScheduleRepository: repos.Schedules}
	repos.Schedules = flaky
	s := newTestStore(t, repos, nil)

	p, err := s.Dispatch("seed", func(tx *Tx) error {
		tx.PutEmployee(employee.Employee{ID: "e1", FullName: "An", Status: employee.StatusActive})
		tx.PutDelay(payroll.WeeklyDelay{WeekEndDate: "2025-06-15", EmployeeID: "e1", DelayDays: 3})
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, p.Wait(ctx))
	before := s.Snapshot().Clone()

	flaky.down.Store(true)

	p, err = s.Dispatch("wipe", func(tx *Tx) error {
		tx.Wipe()
		return nil
	})
	require.NoError(t, err)

	require.ErrorIs(t, p.Wait(ctx), ErrSyncFailed)
	assert.Equal(t, before, s.Snapshot())
}

func TestTx_PutKeepsIdentity(t *testing.T) {
	now := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	st := NewState()

	st, _, err := Apply(st, now, func(tx *Tx) error {
		tx.PutEmployee(employee.Employee{ID: "e1", FullName: "An"})
		return nil
	})
	require.NoError(t, err)

	later := now.Add(time.Hour)
	next, effects, err := Apply(st, later, func(tx *Tx) error {
		e, _ := tx.State().Employee("e1")
		e.FullName = "An Nguyen"
		tx.PutEmployee(e)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, effects, 1)
	assert.Equal(t, OpUpdate, effects[0].Change().Op)

	e := next.Employees["e1"]
	assert.Equal(t, now, e.CreatedAt)
	assert.Equal(t, later, e.UpdatedAt)
	assert.Equal(t, "An", st.Employees["e1"].FullName)
}

func TestHydrate(t *testing.T) {
	ctx := context.Background()
	repos := memoryRepos()
	require.NoError(t, repos.Employees.Upsert(ctx, employee.Employee{ID: "e1", FullName: "An"}))
	require.NoError(t, repos.Attendance.Upsert(ctx, attendance.NewRecord("2025-06-10", "e1")))
	require.NoError(t, repos.Schedules.Upsert(ctx, schedule.NewEntry("2025-06-10", "e1")))
	require.NoError(t, repos.Delays.Upsert(ctx, payroll.WeeklyDelay{WeekEndDate: "2025-06-15", EmployeeID: "e1", DelayDays: 2}))

	s := newTestStore(t, repos, nil)
	require.NoError(t, s.Hydrate(ctx))

	st := s.Snapshot()
	assert.Len(t, st.Employees, 1)
	assert.Len(t, st.Attendance, 1)
	assert.Len(t, st.Schedules, 1)
	d, ok := st.Delay("2025-06-15", "e1")
	require.True(t, ok)
	assert.Equal(t, 2, d.DelayDays)
}

func TestApplyRemote(t *testing.T) {
	s := newTestStore(t, memoryRepos(), nil)

	rec := attendance.NewRecord("2025-06-10", "e9")
	rec.CheckIn, rec.CheckOut = "09:00", "10:00"
	data, err := json.Marshal(rec)
	require.NoError(t, err)

	change, err := s.ApplyRemote(OpInsert, TableAttendance, data)
	require.NoError(t, err)
	assert.Equal(t, TableAttendance, change.Table)
	assert.Len(t, s.Snapshot().Attendance, 1)

	_, err = s.ApplyRemote(OpDelete, TableAttendance, data)
	require.NoError(t, err)
	assert.Empty(t, s.Snapshot().Attendance)

	entry := schedule.NewEntry("2025-06-10", "e9")
	entry.Slots = schedule.SlotsOf(true, false, false, false)
	data, err = json.Marshal(entry)
	require.NoError(t, err)
	_, err = s.ApplyRemote(OpUpdate, TableSchedules, data)
	require.NoError(t, err)
	assert.True(t, s.Snapshot().Schedules[entry.Key()].Slots.Has(schedule.SlotMorning))

	_, err = s.ApplyRemote(OpDelete, TableAll, nil)
	require.NoError(t, err)
	assert.Empty(t, s.Snapshot().Schedules)

	_, err = s.ApplyRemote(OpInsert, "payments", []byte(`{}`))
	assert.ErrorIs(t, err, ErrUnknownTable)
}

func TestSettle(t *testing.T) {
	p := newPending()
	assert.NoError(t, Settle(context.Background(), p))

	ctx, cancel := context.WithTimeout(WithSync(context.Background()), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, Settle(ctx, p), context.DeadlineExceeded)

	assert.NoError(t, Settle(WithSync(context.Background()), settled(nil)))
}

func TestClose(t *testing.T) {
	s := New(memoryRepos(), nil, Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	p, err := s.Dispatch("seed", putRecord("2025-06-10", "e1", "09:00", "10:00"))
	require.NoError(t, err)

	require.NoError(t, s.Close(context.Background()))
	assert.NoError(t, p.Wait(context.Background()))

	_, err = s.Dispatch("late", putRecord("2025-06-11", "e1", "09:00", "10:00"))
	assert.ErrorIs(t, err, ErrClosed)
}
