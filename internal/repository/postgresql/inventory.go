package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/brown009872/payroll-app/internal/domain/inventory"
	"github.com/brown009872/payroll-app/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type stockRepositoryImpl struct {
	db *database.DB
}

func NewStockRepository(db *database.DB) inventory.StockRepository {
	return &stockRepositoryImpl{db: db}
}

const stockColumns = `id, date::text, product, start_qty, end_qty, consumed, ordered,
	ceiling_weekday, ceiling_weekend, efficiency::float8, updated_at`

func scanStock(row pgx.Row) (inventory.StockRecord, error) {
	var s inventory.StockRecord
	err := row.Scan(
		&s.ID, &s.Date, &s.Product, &s.StartQty, &s.EndQty, &s.Consumed, &s.Ordered,
		&s.CeilingWeekday, &s.CeilingWeekend, &s.Efficiency, &s.UpdatedAt,
	)
	return s, err
}

// List implements inventory.StockRepository.
func (r *stockRepositoryImpl) List(ctx context.Context, filter inventory.StockFilter) ([]inventory.StockRecord, error) {
	q := GetQuerier(ctx, r.db)

	var (
		where []string
		args  []interface{}
	)
	if filter.Product != "" {
		args = append(args, filter.Product)
		where = append(where, fmt.Sprintf("product = $%d", len(args)))
	}
	if filter.From != "" {
		args = append(args, filter.From)
		where = append(where, fmt.Sprintf("date >= $%d::text::date", len(args)))
	}
	if filter.To != "" {
		args = append(args, filter.To)
		where = append(where, fmt.Sprintf("date <= $%d::text::date", len(args)))
	}

	query := `SELECT ` + stockColumns + ` FROM stock_records`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY date DESC, product`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock records: %w", err)
	}
	defer rows.Close()

	out := []inventory.StockRecord{}
	for rows.Next() {
		rec, err := scanStock(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock record: %w", err)
		}
		out = append(out, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// Upsert implements inventory.StockRepository.
func (r *stockRepositoryImpl) Upsert(ctx context.Context, rec inventory.StockRecord) (inventory.StockRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO stock_records (
			id, date, product, start_qty, end_qty, consumed, ordered,
			ceiling_weekday, ceiling_weekend, efficiency, updated_at
		) VALUES ($1, $2::text::date, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		ON CONFLICT (date, product) DO UPDATE SET
			start_qty = EXCLUDED.start_qty,
			end_qty = EXCLUDED.end_qty,
			consumed = EXCLUDED.consumed,
			ordered = EXCLUDED.ordered,
			ceiling_weekday = EXCLUDED.ceiling_weekday,
			ceiling_weekend = EXCLUDED.ceiling_weekend,
			efficiency = EXCLUDED.efficiency,
			updated_at = NOW()
		RETURNING ` + stockColumns

	id := rec.ID
	if id == "" {
		id = uuid.NewString()
	}

	saved, err := scanStock(q.QueryRow(ctx, query,
		id, rec.Date, rec.Product, rec.StartQty, rec.EndQty, rec.Consumed, rec.Ordered,
		rec.CeilingWeekday, rec.CeilingWeekend, rec.Efficiency,
	))
	if err != nil {
		return inventory.StockRecord{}, fmt.Errorf("failed to upsert stock record %s on %s: %w", rec.Product, rec.Date, err)
	}
	return saved, nil
}

// Latest implements inventory.StockRepository.
func (r *stockRepositoryImpl) Latest(ctx context.Context, product, before string) (inventory.StockRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + stockColumns + `
		FROM stock_records
		WHERE product = $1 AND date < $2::text::date
		ORDER BY date DESC
		LIMIT 1
	`

	rec, err := scanStock(q.QueryRow(ctx, query, product, before))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return inventory.StockRecord{}, inventory.ErrStockRecordNotFound
		}
		return inventory.StockRecord{}, fmt.Errorf("failed to get latest stock record of %s: %w", product, err)
	}
	return rec, nil
}

// Delete implements inventory.StockRepository.
func (r *stockRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM stock_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete stock record with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return inventory.ErrStockRecordNotFound
	}
	return nil
}

// DeleteAll implements inventory.StockRepository.
func (r *stockRepositoryImpl) DeleteAll(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM stock_records`); err != nil {
		return fmt.Errorf("failed to delete stock records: %w", err)
	}
	return nil
}

type orderRepositoryImpl struct {
	db *database.DB
}

func NewOrderRepository(db *database.DB) inventory.OrderRepository {
	return &orderRepositoryImpl{db: db}
}

// List implements inventory.OrderRepository.
func (r *orderRepositoryImpl) List(ctx context.Context, limit int) ([]inventory.Order, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT order_id, date, supplier, status, products, total_amount, imported_at
		FROM supplier_orders
		ORDER BY date DESC, order_id DESC
	`
	var args []interface{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list supplier orders: %w", err)
	}
	defer rows.Close()

	out := []inventory.Order{}
	for rows.Next() {
		var (
			o        inventory.Order
			products []byte
		)
		if err := rows.Scan(&o.OrderID, &o.Date, &o.Supplier, &o.Status, &products, &o.TotalAmount, &o.ImportedAt); err != nil {
			return nil, fmt.Errorf("failed to scan supplier order: %w", err)
		}
		if err := json.Unmarshal(products, &o.Products); err != nil {
			return nil, fmt.Errorf("failed to decode products of order %s: %w", o.OrderID, err)
		}
		out = append(out, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// Upsert implements inventory.OrderRepository.
func (r *orderRepositoryImpl) Upsert(ctx context.Context, o inventory.Order) (bool, error) {
	q := GetQuerier(ctx, r.db)

	products, err := json.Marshal(o.Products)
	if err != nil {
		return false, fmt.Errorf("failed to encode products of order %s: %w", o.OrderID, err)
	}

	query := `
		INSERT INTO supplier_orders (supplier, order_id, date, status, products, total_amount, imported_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (supplier, order_id) DO UPDATE SET
			date = EXCLUDED.date,
			status = EXCLUDED.status,
			products = EXCLUDED.products,
			total_amount = EXCLUDED.total_amount
		RETURNING (xmax = 0)
	`

	var inserted bool
	err = q.QueryRow(ctx, query, o.Supplier, o.OrderID, o.Date, o.Status, string(products), o.TotalAmount, o.ImportedAt).Scan(&inserted)
	if err != nil {
		return false, fmt.Errorf("failed to upsert supplier order %s: %w", o.OrderID, err)
	}
	return inserted, nil
}

// DeleteAll implements inventory.OrderRepository.
func (r *orderRepositoryImpl) DeleteAll(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM supplier_orders`); err != nil {
		return fmt.Errorf("failed to delete supplier orders: %w", err)
	}
	return nil
}
