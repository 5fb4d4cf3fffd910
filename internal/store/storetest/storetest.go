// Package storetest builds stores backed by the memory repositories for tests.
package storetest

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/brown009872/payroll-app/internal/domain/employee"
	"github.com/brown009872/payroll-app/internal/repository/memory"
	"github.com/brown009872/payroll-app/internal/store"
	"github.com/stretchr/testify/require"
)

// Now is the clock of every store built here.
var Now = time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC)

func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func Repositories() store.Repositories {
	return store.Repositories{
		Employees:  memory.NewEmployeeRepository(),
		Attendance: memory.NewAttendanceRepository(),
		Schedules:  memory.NewWorkScheduleRepository(),
		Delays:     memory.NewWeeklyDelayRepository(),
	}
}

// New returns a store over repos that is closed when the test ends.
func New(t *testing.T, repos store.Repositories) *store.Store {
	t.Helper()
	inTx := memory.NewTxFunc(repos.Employees, repos.Attendance, repos.Schedules, repos.Delays)
	s := store.New(repos, inTx, store.Options{
		Origin: "test",
		Logger: Logger(),
		Now:    func() time.Time { return Now },
	})
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

// Context waits for persistence on every dispatch.
func Context() context.Context {
	return store.WithSync(context.Background())
}

// Seed applies m and waits until it is persisted.
func Seed(t *testing.T, s *store.Store, m store.Mutation) {
	t.Helper()
	p, err := s.Dispatch("seed", m)
	require.NoError(t, err)
	require.NoError(t, p.Wait(context.Background()))
}

// Employee stores an active employee paid rate per hour, or without a rate
// when rate is 0.
func Employee(t *testing.T, s *store.Store, name string, rate int64) employee.Employee {
	t.Helper()
	emp := employee.Employee{FullName: name, Status: employee.StatusActive, JoinedDate: "2025-01-01"}
	if rate > 0 {
		emp.HourlyRate = &rate
	}
	Seed(t, s, func(tx *store.Tx) error {
		emp = tx.PutEmployee(emp)
		return nil
	})
	return emp
}
