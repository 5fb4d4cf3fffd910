package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/brown009872/payroll-app/internal/domain/inventory"
	"github.com/brown009872/payroll-app/internal/domain/schedule"
)

// OrderSyncJobs imports supplier orders on an interval.
type OrderSyncJobs struct {
	inventoryService inventory.InventoryService
	interval         time.Duration
}

func NewOrderSyncJobs(inventoryService inventory.InventoryService, interval time.Duration) *OrderSyncJobs {
	if interval <= 0 {
		interval = time.Hour
	}
	return &OrderSyncJobs{inventoryService: inventoryService, interval: interval}
}

func (j *OrderSyncJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob(Job{Name: "sync_supplier_orders", Interval: j.interval, Immediate: true, Fn: j.SyncOrders})
}

func (j *OrderSyncJobs) SyncOrders(ctx context.Context) error {
	result, err := j.inventoryService.SyncOrders(ctx)
	if err != nil {
		return fmt.Errorf("failed to sync supplier orders: %w", err)
	}
	if result.Imported > 0 {
		slog.Info("Cron: supplier orders imported", "supplier", result.Supplier, "fetched", result.Fetched, "imported", result.Imported)
	}
	return nil
}

// SessionJobs forgets idle schedule board sessions and catalog carts.
type SessionJobs struct {
	scheduleService  schedule.ScheduleService
	inventoryService inventory.InventoryService
	maxIdle          time.Duration
}

func NewSessionJobs(scheduleService schedule.ScheduleService, inventoryService inventory.InventoryService, maxIdle time.Duration) *SessionJobs {
	if maxIdle <= 0 {
		maxIdle = 30 * time.Minute
	}
	return &SessionJobs{scheduleService: scheduleService, inventoryService: inventoryService, maxIdle: maxIdle}
}

func (j *SessionJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob(Job{Name: "prune_board_sessions", Interval: j.maxIdle / 2, Fn: j.PruneSessions})
}

func (j *SessionJobs) PruneSessions(ctx context.Context) error {
	if n := j.scheduleService.PruneSessions(ctx, j.maxIdle); n > 0 {
		slog.Debug("Cron: board sessions pruned", "count", n)
	}
	if j.inventoryService != nil {
		if n := j.inventoryService.PruneCarts(ctx, j.maxIdle); n > 0 {
			slog.Debug("Cron: carts pruned", "count", n)
		}
	}
	return nil
}
