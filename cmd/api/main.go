package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/brown009872/payroll-app/internal/config"
	"github.com/brown009872/payroll-app/internal/domain/inventory"
	"github.com/brown009872/payroll-app/internal/domain/revenue"
	appHTTP "github.com/brown009872/payroll-app/internal/handler/http"
	"github.com/brown009872/payroll-app/internal/pkg/cron"
	"github.com/brown009872/payroll-app/internal/pkg/database"
	"github.com/brown009872/payroll-app/internal/pkg/realtime"
	"github.com/brown009872/payroll-app/internal/pkg/sse"
	"github.com/brown009872/payroll-app/internal/pkg/supplier"
	"github.com/brown009872/payroll-app/internal/repository/memory"
	"github.com/brown009872/payroll-app/internal/repository/postgresql"
	attendanceService "github.com/brown009872/payroll-app/internal/service/attendance"
	employeeService "github.com/brown009872/payroll-app/internal/service/employee"
	inventoryService "github.com/brown009872/payroll-app/internal/service/inventory"
	payrollService "github.com/brown009872/payroll-app/internal/service/payroll"
	revenueService "github.com/brown009872/payroll-app/internal/service/revenue"
	scheduleService "github.com/brown009872/payroll-app/internal/service/schedule"
	systemService "github.com/brown009872/payroll-app/internal/service/system"
	"github.com/brown009872/payroll-app/internal/store"
	"github.com/go-chi/httplog/v3"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

// backend is the persistence chosen by STORAGE_BACKEND.
type backend struct {
	repos    store.Repositories
	inTx     store.TxFunc
	revenues revenue.RevenueRepository
	settings revenue.SettingsRepository
	stock    inventory.StockRepository
	orders   inventory.OrderRepository
	close    func()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Server error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logFormat := httplog.SchemaECS.Concise(!cfg.IsProduction())
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-app"),
		slog.String("env", cfg.App.Env),
		slog.String("instance", cfg.App.InstanceID),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	be, err := openBackend(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer be.close()

	hub := sse.NewHub(cfg.SSE.BufferSize)

	var rdb *redis.Client
	var publisher *realtime.Publisher
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		rdb = redis.NewClient(opts)
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("error connecting to redis: %w", err)
		}
		publisher = realtime.NewPublisher(rdb, cfg.Redis.Channel, cfg.App.InstanceID)
	}

	st := store.New(be.repos, be.inTx, store.Options{
		Origin:      cfg.App.InstanceID,
		SyncTimeout: cfg.App.SyncTimeout,
		Logger:      logger,
		Notifier:    realtime.NewNotifier(hub, publisher, logger),
	})
	if err := st.Hydrate(ctx); err != nil {
		return fmt.Errorf("error hydrating store: %w", err)
	}

	var source inventory.Source
	if cfg.Supplier.HistoryURL != "" {
		source = supplier.NewPortal(supplier.Config{
			Name:       cfg.Supplier.Name,
			HistoryURL: cfg.Supplier.HistoryURL,
			Cookie:     cfg.Supplier.Cookie,
			Timeout:    cfg.Supplier.Timeout,
		}, nil, logger)
	}

	employeeSvc := employeeService.NewEmployeeService(st, logger)
	attendanceSvc := attendanceService.NewAttendanceService(st, logger)
	payrollSvc := payrollService.NewPayrollService(st, logger)
	scheduleSvc := scheduleService.NewScheduleService(st, nil, logger)
	revenueSvc := revenueService.NewRevenueService(be.revenues, be.settings, logger)
	inventorySvc := inventoryService.NewInventoryService(be.stock, be.orders, source, logger)
	systemSvc := systemService.NewSystemService(st, be.revenues, be.stock, be.orders, logger)

	scheduler := cron.NewScheduler(logger)
	cron.NewSessionJobs(scheduleSvc, inventorySvc, cfg.Schedule.SessionIdle).RegisterJobs(scheduler)
	if source != nil {
		cron.NewOrderSyncJobs(inventorySvc, cfg.Supplier.SyncInterval).RegisterJobs(scheduler)
	}

	router := appHTTP.NewRouter(appHTTP.Handlers{
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Schedule:   appHTTP.NewScheduleHandler(scheduleSvc),
		Revenue:    appHTTP.NewRevenueHandler(revenueSvc),
		Inventory:  appHTTP.NewInventoryHandler(inventorySvc),
		System:     appHTTP.NewSystemHandler(systemSvc, hub, scheduler),
		Input:      appHTTP.NewInputHandler(),
	}, appHTTP.RouterOptions{
		Logger:      logger,
		LogLevel:    cfg.SlogLevel(),
		CORSOrigins: cfg.App.CORSOrigins,
		SyncTimeout: cfg.App.SyncTimeout,
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
		// Event streams end with the process context.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Server running", "addr", server.Addr, "storage", cfg.App.Storage)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		if err := scheduler.Start(gctx); err != nil {
			return err
		}
		<-gctx.Done()
		scheduler.Stop()
		return nil
	})
	if rdb != nil {
		subscriber := realtime.NewSubscriber(rdb, cfg.Redis.Channel, st, hub, logger)
		g.Go(func() error { return subscriber.Run(gctx) })
	}
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownGrace)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Forced shutdown", "error", err)
		}
		if err := st.Close(shutdownCtx); err != nil {
			logger.Error("Pending changes were not persisted", "error", err)
		}
		return nil
	})

	return g.Wait()
}

func openBackend(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*backend, error) {
	if cfg.App.Storage == config.StorageMemory {
		logger.Warn("Using in-memory storage, data is lost on restart")
		repos := store.Repositories{
			Employees:  memory.NewEmployeeRepository(),
			Attendance: memory.NewAttendanceRepository(),
			Schedules:  memory.NewWorkScheduleRepository(),
			Delays:     memory.NewWeeklyDelayRepository(),
		}
		return &backend{
			repos:    repos,
			inTx:     memory.NewTxFunc(repos.Employees, repos.Attendance, repos.Schedules, repos.Delays),
			revenues: memory.NewRevenueRepository(),
			settings: memory.NewSettingsRepository(),
			stock:    memory.NewStockRepository(),
			orders:   memory.NewOrderRepository(),
			close:    func() {},
		}, nil
	}

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &backend{
		repos: store.Repositories{
			Employees:  postgresql.NewEmployeeRepository(db),
			Attendance: postgresql.NewAttendanceRepository(db),
			Schedules:  postgresql.NewWorkScheduleRepository(db),
			Delays:     postgresql.NewWeeklyDelayRepository(db),
		},
		inTx:     postgresql.NewTxFunc(db),
		revenues: postgresql.NewRevenueRepository(db),
		settings: postgresql.NewSettingsRepository(db),
		stock:    postgresql.NewStockRepository(db),
		orders:   postgresql.NewOrderRepository(db),
		close:    db.Close,
	}, nil
}
