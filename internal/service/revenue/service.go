package revenue

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/brown009872/payroll-app/internal/domain/revenue"
	"github.com/brown009872/payroll-app/internal/pkg/export"
	"github.com/brown009872/payroll-app/internal/pkg/utils"
)

type RevenueServiceImpl struct {
	revenueRepo  revenue.RevenueRepository
	settingsRepo revenue.SettingsRepository
	logger       *slog.Logger
}

func NewRevenueService(revenueRepo revenue.RevenueRepository, settingsRepo revenue.SettingsRepository, logger *slog.Logger) revenue.RevenueService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RevenueServiceImpl{revenueRepo: revenueRepo, settingsRepo: settingsRepo, logger: logger}
}

// MonthlySummary implements revenue.RevenueService.
func (s *RevenueServiceImpl) MonthlySummary(ctx context.Context, filter revenue.MonthFilter) (revenue.MonthlySummary, error) {
	if err := filter.Validate(); err != nil {
		return revenue.MonthlySummary{}, err
	}

	from, to := utils.MonthRange(filter.Year, time.Month(filter.Month))
	days, err := s.revenueRepo.ListRange(ctx, from, to)
	if err != nil {
		return revenue.MonthlySummary{}, fmt.Errorf("failed to list revenues: %w", err)
	}
	return revenue.Summarize(filter.Year, filter.Month, days), nil
}

// SaveDaily implements revenue.RevenueService. An all-zero entry is rejected.
func (s *RevenueServiceImpl) SaveDaily(ctx context.Context, req revenue.SaveRevenueRequest) (revenue.DailyRevenue, error) {
	if err := req.Validate(); err != nil {
		return revenue.DailyRevenue{}, err
	}
	if req.IsEmpty() {
		return revenue.DailyRevenue{}, revenue.ErrEmptyRevenue
	}

	saved, err := s.revenueRepo.Upsert(ctx, revenue.DailyRevenue{
		Date:       req.Date,
		Offline:    req.Offline.Int64(),
		Grab:       req.Grab.Int64(),
		ShopeeFood: req.ShopeeFood.Int64(),
		Be:         req.Be.Int64(),
		XanhSm:     req.XanhSm.Int64(),
	})
	if err != nil {
		return revenue.DailyRevenue{}, fmt.Errorf("failed to save revenue: %w", err)
	}

	s.logger.Info("Daily revenue saved", "date", saved.Date, "total", saved.Total())
	return saved, nil
}

// DeleteDaily implements revenue.RevenueService.
func (s *RevenueServiceImpl) DeleteDaily(ctx context.Context, id string) error {
	if err := s.revenueRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, revenue.ErrRevenueNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete revenue: %w", err)
	}
	return nil
}

// GetSettings implements revenue.RevenueService.
func (s *RevenueServiceImpl) GetSettings(ctx context.Context) (revenue.BusinessSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return revenue.BusinessSettings{}, fmt.Errorf("failed to get business settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings implements revenue.RevenueService.
func (s *RevenueServiceImpl) UpdateSettings(ctx context.Context, req revenue.UpdateSettingsRequest) (revenue.BusinessSettings, error) {
	if err := req.Validate(); err != nil {
		return revenue.BusinessSettings{}, err
	}

	settings := revenue.BusinessSettings{
		BusinessName:       req.BusinessName,
		Address:            strings.TrimSpace(req.Address),
		TaxNumber:          strings.TrimSpace(req.TaxNumber),
		BusinessLocation:   strings.TrimSpace(req.BusinessLocation),
		RepresentativeName: strings.TrimSpace(req.RepresentativeName),
	}
	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return revenue.BusinessSettings{}, fmt.Errorf("failed to save business settings: %w", err)
	}
	return s.settingsRepo.Get(ctx)
}

// ExportXLSX implements revenue.RevenueService. The ledger header needs a
// business name.
func (s *RevenueServiceImpl) ExportXLSX(ctx context.Context, filter revenue.MonthFilter, w io.Writer) error {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return err
	}
	if strings.TrimSpace(settings.BusinessName) == "" {
		return revenue.ErrBusinessSettingsRequired
	}

	summary, err := s.MonthlySummary(ctx, filter)
	if err != nil {
		return err
	}
	return export.LedgerXLSX(w, settings, summary)
}
