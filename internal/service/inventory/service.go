package inventory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/brown009872/payroll-app/internal/domain/inventory"
	"github.com/brown009872/payroll-app/internal/pkg/export"
	"github.com/brown009872/payroll-app/internal/pkg/validator"
)

var _ inventory.InventoryService = (*InventoryServiceImpl)(nil)

type InventoryServiceImpl struct {
	stockRepo inventory.StockRepository
	orderRepo inventory.OrderRepository
	source    inventory.Source
	carts     *inventory.CartRegistry
	logger    *slog.Logger
	now       func() time.Time
}

// NewInventoryService builds the service. source may be nil when no
// supplier portal is configured.
func NewInventoryService(stockRepo inventory.StockRepository, orderRepo inventory.OrderRepository, source inventory.Source, logger *slog.Logger) *InventoryServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &InventoryServiceImpl{
		stockRepo: stockRepo,
		orderRepo: orderRepo,
		source:    source,
		carts:     inventory.NewCartRegistry(),
		logger:    logger,
		now:       time.Now,
	}
}

// ListStock implements inventory.InventoryService.
func (s *InventoryServiceImpl) ListStock(ctx context.Context, filter inventory.StockFilter) ([]inventory.StockRecord, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	records, err := s.stockRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock records: %w", err)
	}
	return records, nil
}

// SaveStock implements inventory.InventoryService. Efficiency is derived
// from the quantities.
func (s *InventoryServiceImpl) SaveStock(ctx context.Context, req inventory.SaveStockRequest) (inventory.StockRecord, error) {
	if err := req.Validate(); err != nil {
		return inventory.StockRecord{}, err
	}

	rec := inventory.StockRecord{
		Date:           req.Date,
		Product:        strings.TrimSpace(req.Product),
		StartQty:       req.StartQty,
		EndQty:         req.EndQty,
		Consumed:       req.Consumed,
		Ordered:        req.Ordered,
		CeilingWeekday: req.CeilingWeekday,
		CeilingWeekend: req.CeilingWeekend,
	}
	rec.Recalculate()

	saved, err := s.stockRepo.Upsert(ctx, rec)
	if err != nil {
		return inventory.StockRecord{}, fmt.Errorf("failed to save stock record: %w", err)
	}
	return saved, nil
}

// DeleteStock implements inventory.InventoryService.
func (s *InventoryServiceImpl) DeleteStock(ctx context.Context, id string) error {
	if err := s.stockRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, inventory.ErrStockRecordNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete stock record: %w", err)
	}
	return nil
}

// SuggestCarryOver implements inventory.InventoryService. The opening stock
// is the closing stock of the latest earlier count, or 0 without one.
func (s *InventoryServiceImpl) SuggestCarryOver(ctx context.Context, product, date string) (inventory.CarryOver, error) {
	var errs validator.ValidationErrors
	if validator.IsEmpty(product) {
		errs.Add("product", "product is required")
	}
	if _, ok := validator.IsValidDate(date); !ok {
		errs.Add("date", "date must be in YYYY-MM-DD format")
	}
	if err := errs.Err(); err != nil {
		return inventory.CarryOver{}, err
	}

	out := inventory.CarryOver{Product: product}
	latest, err := s.stockRepo.Latest(ctx, product, date)
	if err != nil {
		if errors.Is(err, inventory.ErrStockRecordNotFound) {
			return out, nil
		}
		return inventory.CarryOver{}, fmt.Errorf("failed to get latest stock record: %w", err)
	}
	out.FromDate = latest.Date
	out.StartQty = latest.EndQty
	return out, nil
}

// ExportReportPDF writes the stock count of date as a PDF report.
func (s *InventoryServiceImpl) ExportReportPDF(ctx context.Context, date string, w io.Writer) error {
	if _, ok := validator.IsValidDate(date); !ok {
		var errs validator.ValidationErrors
		errs.Add("date", "date must be in YYYY-MM-DD format")
		return errs.Err()
	}
	records, err := s.stockRepo.List(ctx, inventory.StockFilter{From: date, To: date})
	if err != nil {
		return fmt.Errorf("failed to list stock records: %w", err)
	}
	return export.StockReportPDF(w, date, records)
}

// ListOrders implements inventory.InventoryService.
func (s *InventoryServiceImpl) ListOrders(ctx context.Context, limit int) ([]inventory.Order, error) {
	orders, err := s.orderRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list supplier orders: %w", err)
	}
	return orders, nil
}

// SyncOrders implements inventory.InventoryService.
func (s *InventoryServiceImpl) SyncOrders(ctx context.Context) (inventory.SyncResult, error) {
	if s.source == nil {
		return inventory.SyncResult{}, inventory.ErrOrderSourceDisabled
	}

	result := inventory.SyncResult{Supplier: s.source.Name()}
	orders, err := s.source.FetchOrders(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to fetch orders from %s: %w", result.Supplier, err)
	}
	result.Fetched = len(orders)

	importedAt := s.now()
	for _, order := range orders {
		if order.Supplier == "" {
			order.Supplier = result.Supplier
		}
		order.ImportedAt = importedAt
		order.Normalize()

		isNew, err := s.orderRepo.Upsert(ctx, order)
		if err != nil {
			return result, fmt.Errorf("failed to save order %s: %w", order.OrderID, err)
		}
		if isNew {
			result.Imported++
		}
	}

	s.logger.Info("Supplier orders synced", "supplier", result.Supplier, "fetched", result.Fetched, "imported", result.Imported)
	return result, nil
}
