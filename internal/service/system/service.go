package system

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/brown009872/payroll-app/internal/domain/inventory"
	"github.com/brown009872/payroll-app/internal/domain/revenue"
	"github.com/brown009872/payroll-app/internal/domain/system"
	"github.com/brown009872/payroll-app/internal/store"
)

type SystemServiceImpl struct {
	store       *store.Store
	revenueRepo revenue.RevenueRepository
	stockRepo   inventory.StockRepository
	orderRepo   inventory.OrderRepository
	logger      *slog.Logger
}

func NewSystemService(
	st *store.Store,
	revenueRepo revenue.RevenueRepository,
	stockRepo inventory.StockRepository,
	orderRepo inventory.OrderRepository,
	logger *slog.Logger,
) system.SystemService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SystemServiceImpl{
		store:       st,
		revenueRepo: revenueRepo,
		stockRepo:   stockRepo,
		orderRepo:   orderRepo,
		logger:      logger,
	}
}

// WipeAll implements system.SystemService. The engine tables go through the
// store; the ledger tables are cleared directly. Business settings are kept.
func (s *SystemServiceImpl) WipeAll(ctx context.Context, req system.WipeRequest) (system.WipeResult, error) {
	if !req.Confirm {
		return system.WipeResult{}, system.ErrConfirmationRequired
	}

	var result system.WipeResult
	p, err := s.store.Dispatch("wipe_all", func(tx *store.Tx) error {
		result.Employees, result.Attendance, result.Schedules, result.Delays = tx.Wipe()
		return nil
	})
	if err != nil {
		return system.WipeResult{}, err
	}
	if err := store.Settle(ctx, p); err != nil {
		return system.WipeResult{}, err
	}
	result.Tables = []string{store.TableAttendance, store.TableSchedules, store.TableDelays, store.TableEmployees}

	ledger := []struct {
		table string
		clear func(context.Context) error
	}{
		{"daily_revenues", s.revenueRepo.DeleteAll},
		{"stock_records", s.stockRepo.DeleteAll},
		{"supplier_orders", s.orderRepo.DeleteAll},
	}
	for _, l := range ledger {
		if err := l.clear(ctx); err != nil {
			return result, fmt.Errorf("failed to wipe %s: %w", l.table, err)
		}
		result.Tables = append(result.Tables, l.table)
	}

	s.logger.Warn("All data wiped",
		"employees", result.Employees,
		"attendance", result.Attendance,
		"schedules", result.Schedules,
		"delays", result.Delays,
	)
	return result, nil
}
