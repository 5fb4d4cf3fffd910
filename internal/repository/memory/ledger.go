package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/brown009872/payroll-app/internal/domain/inventory"
	"github.com/brown009872/payroll-app/internal/domain/revenue"
	"github.com/google/uuid"
)

type revenueRepositoryImpl struct {
	mu     sync.RWMutex
	byDate map[string]revenue.DailyRevenue
}

func NewRevenueRepository() revenue.RevenueRepository {
	return &revenueRepositoryImpl{byDate: make(map[string]revenue.DailyRevenue)}
}

func (r *revenueRepositoryImpl) ListRange(ctx context.Context, from, to string) ([]revenue.DailyRevenue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []revenue.DailyRevenue{}
	for date, rev := range r.byDate {
		if date >= from && date <= to {
			out = append(out, rev)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *revenueRepositoryImpl) GetByDate(ctx context.Context, date string) (revenue.DailyRevenue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rev, ok := r.byDate[date]
	if !ok {
		return revenue.DailyRevenue{}, revenue.ErrRevenueNotFound
	}
	return rev, nil
}

func (r *revenueRepositoryImpl) Upsert(ctx context.Context, rev revenue.DailyRevenue) (revenue.DailyRevenue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	if old, ok := r.byDate[rev.Date]; ok {
		rev.ID = old.ID
		rev.CreatedAt = old.CreatedAt
	} else {
		rev.ID = uuid.NewString()
		rev.CreatedAt = now
	}
	rev.UpdatedAt = now
	r.byDate[rev.Date] = rev
	return rev, nil
}

func (r *revenueRepositoryImpl) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for date, rev := range r.byDate {
		if rev.ID == id {
			delete(r.byDate, date)
			return nil
		}
	}
	return revenue.ErrRevenueNotFound
}

func (r *revenueRepositoryImpl) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byDate = make(map[string]revenue.DailyRevenue)
	return nil
}

type settingsRepositoryImpl struct {
	mu       sync.RWMutex
	settings revenue.BusinessSettings
}

func NewSettingsRepository() revenue.SettingsRepository {
	return &settingsRepositoryImpl{}
}

func (r *settingsRepositoryImpl) Get(ctx context.Context) (revenue.BusinessSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings, nil
}

func (r *settingsRepositoryImpl) Save(ctx context.Context, s revenue.BusinessSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = s
	return nil
}

type stockKey struct{ date, product string }

type stockRepositoryImpl struct {
	mu   sync.RWMutex
	rows map[stockKey]inventory.StockRecord
}

func NewStockRepository() inventory.StockRepository {
	return &stockRepositoryImpl{rows: make(map[stockKey]inventory.StockRecord)}
}

func (r *stockRepositoryImpl) List(ctx context.Context, filter inventory.StockFilter) ([]inventory.StockRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []inventory.StockRecord{}
	for _, rec := range r.rows {
		if filter.Product != "" && rec.Product != filter.Product {
			continue
		}
		if filter.From != "" && rec.Date < filter.From {
			continue
		}
		if filter.To != "" && rec.Date > filter.To {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].Product < out[j].Product
	})
	return out, nil
}

func (r *stockRepositoryImpl) Upsert(ctx context.Context, rec inventory.StockRecord) (inventory.StockRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := stockKey{rec.Date, rec.Product}
	if old, ok := r.rows[key]; ok {
		rec.ID = old.ID
	} else if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.UpdatedAt = time.Now()
	r.rows[key] = rec
	return rec, nil
}

func (r *stockRepositoryImpl) Latest(ctx context.Context, product, before string) (inventory.StockRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var (
		latest inventory.StockRecord
		found  bool
	)
	for _, rec := range r.rows {
		if rec.Product != product || rec.Date >= before {
			continue
		}
		if !found || rec.Date > latest.Date {
			latest, found = rec, true
		}
	}
	if !found {
		return inventory.StockRecord{}, inventory.ErrStockRecordNotFound
	}
	return latest, nil
}

func (r *stockRepositoryImpl) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, rec := range r.rows {
		if rec.ID == id {
			delete(r.rows, key)
			return nil
		}
	}
	return inventory.ErrStockRecordNotFound
}

func (r *stockRepositoryImpl) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = make(map[stockKey]inventory.StockRecord)
	return nil
}

type orderKey struct{ supplier, orderID string }

type orderRepositoryImpl struct {
	mu   sync.RWMutex
	rows map[orderKey]inventory.Order
}

func NewOrderRepository() inventory.OrderRepository {
	return &orderRepositoryImpl{rows: make(map[orderKey]inventory.Order)}
}

func (r *orderRepositoryImpl) List(ctx context.Context, limit int) ([]inventory.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]inventory.Order, 0, len(r.rows))
	for _, o := range r.rows {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].OrderID > out[j].OrderID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *orderRepositoryImpl) Upsert(ctx context.Context, order inventory.Order) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := orderKey{order.Supplier, order.OrderID}
	_, exists := r.rows[key]
	r.rows[key] = order
	return !exists, nil
}

func (r *orderRepositoryImpl) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = make(map[orderKey]inventory.Order)
	return nil
}
