package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/brown009872/payroll-app/internal/domain/employee"
	"github.com/brown009872/payroll-app/internal/domain/payroll"
	"github.com/brown009872/payroll-app/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxFunc_FailureRestoresRows(t *testing.T) {
	ctx := context.Background()
	employees := NewEmployeeRepository()
	schedules := NewWorkScheduleRepository()
	inTx := NewTxFunc(employees, schedules, "ignored")

	require.NoError(t, employees.Upsert(ctx, employee.Employee{ID: "e1", FullName: "An"}))

	errWrite := errors.New("write failed")
	err := inTx(ctx, func(ctx context.Context) error {
		if err := employees.Delete(ctx, "e1"); err != nil {
			return err
		}
		if err := schedules.Upsert(ctx, schedule.Entry{ID: "s1", Date: "2025-03-03", EmployeeID: "e2"}); err != nil {
			return err
		}
		return errWrite
	})
	assert.ErrorIs(t, err, errWrite)

	emps, err := employees.List(ctx)
	require.NoError(t, err)
	require.Len(t, emps, 1)
	assert.Equal(t, "An", emps[0].FullName)

	entries, err := schedules.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestTxFunc_SuccessKeepsWrites(t *testing.T) {
	ctx := context.Background()
	delays := NewWeeklyDelayRepository()
	inTx := NewTxFunc(delays)

	err := inTx(ctx, func(ctx context.Context) error {
		return delays.Upsert(ctx, payroll.WeeklyDelay{WeekEndDate: "2025-03-09", EmployeeID: "e1", DelayDays: 2})
	})
	require.NoError(t, err)

	rows, err := delays.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].DelayDays)
}
