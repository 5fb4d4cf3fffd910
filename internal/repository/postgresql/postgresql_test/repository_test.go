package postgresqltest

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/brown009872/payroll-app/internal/domain/attendance"
	"github.com/brown009872/payroll-app/internal/domain/employee"
	"github.com/brown009872/payroll-app/internal/domain/inventory"
	"github.com/brown009872/payroll-app/internal/domain/payroll"
	"github.com/brown009872/payroll-app/internal/domain/revenue"
	"github.com/brown009872/payroll-app/internal/domain/schedule"
	"github.com/brown009872/payroll-app/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *TestDatabaseSetup {
	t.Helper()
	if os.Getenv("TEST_DATABASE_URL") == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	setup, err := NewTestDatabase(ctx)
	require.NoError(t, err)
	require.NoError(t, setup.TruncateAllTables(ctx))
	t.Cleanup(func() {
		setup.TruncateAllTables(context.Background())
		setup.Close()
	})
	return setup
}

func TestEmployeeRepository_UpsertAndList(t *testing.T) {
	setup := setupTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(setup.DB)

	rate := int64(25000)
	start, end := "2025-06-12", "2025-06-13"
	days := 2
	emp := employee.Employee{
		ID:             uuid.NewString(),
		FullName:       "Nguyễn An",
		Status:         employee.StatusActive,
		JoinedDate:     "2025-01-02",
		LeaveStartDate: &start,
		LeaveEndDate:   &end,
		LeaveTotalDays: &days,
		HourlyRate:     &rate,
		CreatedAt:      time.Now().UTC().Truncate(time.Millisecond),
		UpdatedAt:      time.Now().UTC().Truncate(time.Millisecond),
	}
	require.NoError(t, repo.Upsert(ctx, emp))

	emp.Status = employee.StatusInactive
	require.NoError(t, repo.Upsert(ctx, emp))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, employee.StatusInactive, list[0].Status)
	assert.Equal(t, "2025-01-02", list[0].JoinedDate)
	require.NotNil(t, list[0].LeaveStartDate)
	assert.Equal(t, start, *list[0].LeaveStartDate)
	assert.Nil(t, list[0].ResignedDate)
	assert.Equal(t, rate, *list[0].HourlyRate)

	require.NoError(t, repo.Delete(ctx, emp.ID))
	list, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAttendanceRepository_UniquePerDateAndEmployee(t *testing.T) {
	setup := setupTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(setup.DB)

	empID := uuid.NewString()
	rec := attendance.NewRecord("2025-06-10", empID)
	rec.ID = uuid.NewString()
	rec.CheckIn, rec.CheckOut, rec.HourlyRate = "08:00", "12:30", 20000
	rec.Recalculate()
	require.NoError(t, repo.Upsert(ctx, rec))

	rec.ID = uuid.NewString()
	rec.Multiplier = payroll.Multiplier{Kind: payroll.MultiplierX2, Value: 2}
	rec.Recalculate()
	require.NoError(t, repo.Upsert(ctx, rec))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 4.5, list[0].TotalHours)
	assert.Equal(t, payroll.MultiplierX2, list[0].Multiplier.Kind)
	assert.Equal(t, int64(180000), list[0].DayTotal)

	require.NoError(t, repo.Delete(ctx, "2025-06-10", empID))
	list, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestWorkScheduleRepository_CustomShiftRoundTrip(t *testing.T) {
	setup := setupTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewWorkScheduleRepository(setup.DB)

	e := schedule.NewEntry("2025-06-10", uuid.NewString())
	e.ID = uuid.NewString()
	e.Slots = schedule.SlotsOf(true, false, false, true)
	e.CustomShift = &schedule.CustomShift{Enabled: true, StartTime: "09:00", EndTime: "21:00"}
	require.NoError(t, repo.Upsert(ctx, e))

	plain := schedule.NewEntry("2025-06-11", e.EmployeeID)
	plain.ID = uuid.NewString()
	require.NoError(t, repo.Upsert(ctx, plain))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, e.Slots, list[0].Slots)
	require.NotNil(t, list[0].CustomShift)
	assert.Equal(t, *e.CustomShift, *list[0].CustomShift)
	assert.Nil(t, list[1].CustomShift)
}

func TestWeeklyDelayRepository_Upsert(t *testing.T) {
	setup := setupTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewWeeklyDelayRepository(setup.DB)

	d := payroll.WeeklyDelay{WeekEndDate: "2025-06-15", EmployeeID: uuid.NewString(), DelayDays: 3, UpdatedAt: time.Now()}
	require.NoError(t, repo.Upsert(ctx, d))
	d.DelayDays = 0
	require.NoError(t, repo.Upsert(ctx, d))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 0, list[0].DelayDays)
}

func TestRevenueRepository(t *testing.T) {
	setup := setupTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewRevenueRepository(setup.DB)

	first, err := repo.Upsert(ctx, revenue.DailyRevenue{Date: "2025-03-01", Offline: 1000000})
	require.NoError(t, err)
	second, err := repo.Upsert(ctx, revenue.DailyRevenue{Date: "2025-03-01", Offline: 2000000, Grab: 5000})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	got, err := repo.GetByDate(ctx, "2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, int64(2005000), got.Total())

	list, err := repo.ListRange(ctx, "2025-03-01", "2025-03-31")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, got.ID))
	assert.True(t, errors.Is(repo.Delete(ctx, got.ID), revenue.ErrRevenueNotFound))

	settings := postgresql.NewSettingsRepository(setup.DB)
	s, err := settings.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, s.BusinessName)
	require.NoError(t, settings.Save(ctx, revenue.BusinessSettings{BusinessName: "Quán Cơm"}))
	s, err = settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Quán Cơm", s.BusinessName)
}

func TestStockAndOrderRepositories(t *testing.T) {
	setup := setupTestDB(t)
	ctx := context.Background()
	stock := postgresql.NewStockRepository(setup.DB)

	_, err := stock.Upsert(ctx, inventory.StockRecord{Date: "2025-06-09", Product: "Tea", EndQty: 7, Efficiency: 62.5})
	require.NoError(t, err)
	_, err = stock.Upsert(ctx, inventory.StockRecord{Date: "2025-06-10", Product: "Tea", EndQty: 4})
	require.NoError(t, err)

	latest, err := stock.Latest(ctx, "Tea", "2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, int64(7), latest.EndQty)
	assert.Equal(t, 62.5, latest.Efficiency)

	_, err = stock.Latest(ctx, "Tea", "2025-06-09")
	assert.ErrorIs(t, err, inventory.ErrStockRecordNotFound)

	list, err := stock.List(ctx, inventory.StockFilter{Product: "Tea", From: "2025-06-10"})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	orders := postgresql.NewOrderRepository(setup.DB)
	order := inventory.Order{OrderID: "123456", Supplier: "Wujia", Date: "2025-12-29", Products: []inventory.OrderProduct{{Name: "Tea", Quantity: 2, UnitPrice: 10, Total: 20}}, TotalAmount: 20, ImportedAt: time.Now()}
	isNew, err := orders.Upsert(ctx, order)
	require.NoError(t, err)
	assert.True(t, isNew)
	isNew, err = orders.Upsert(ctx, order)
	require.NoError(t, err)
	assert.False(t, isNew)

	got, err := orders.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, order.Products, got[0].Products)
}

func TestNewTxFunc_RollsBackOnError(t *testing.T) {
	setup := setupTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewWeeklyDelayRepository(setup.DB)
	inTx := postgresql.NewTxFunc(setup.DB)

	boom := errors.New("boom")
	err := inTx(ctx, func(ctx context.Context) error {
		if err := repo.Upsert(ctx, payroll.WeeklyDelay{WeekEndDate: "2025-06-15", EmployeeID: uuid.NewString(), DelayDays: 1, UpdatedAt: time.Now()}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
