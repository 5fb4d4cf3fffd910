package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/brown009872/payroll-app/internal/domain/revenue"
	"github.com/brown009872/payroll-app/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type revenueRepositoryImpl struct {
	db *database.DB
}

func NewRevenueRepository(db *database.DB) revenue.RevenueRepository {
	return &revenueRepositoryImpl{db: db}
}

const revenueColumns = `id, date::text, offline, grab, shopee_food, be, xanh_sm, created_at, updated_at`

func scanRevenue(row pgx.Row) (revenue.DailyRevenue, error) {
	var r revenue.DailyRevenue
	err := row.Scan(&r.ID, &r.Date, &r.Offline, &r.Grab, &r.ShopeeFood, &r.Be, &r.XanhSm, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

// ListRange implements revenue.RevenueRepository.
func (r *revenueRepositoryImpl) ListRange(ctx context.Context, from, to string) ([]revenue.DailyRevenue, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + revenueColumns + `
		FROM daily_revenues
		WHERE date BETWEEN $1::text::date AND $2::text::date
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list revenues: %w", err)
	}
	defer rows.Close()

	out := []revenue.DailyRevenue{}
	for rows.Next() {
		rev, err := scanRevenue(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan revenue: %w", err)
		}
		out = append(out, rev)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// GetByDate implements revenue.RevenueRepository.
func (r *revenueRepositoryImpl) GetByDate(ctx context.Context, date string) (revenue.DailyRevenue, error) {
	q := GetQuerier(ctx, r.db)

	rev, err := scanRevenue(q.QueryRow(ctx, `SELECT `+revenueColumns+` FROM daily_revenues WHERE date = $1::text::date`, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return revenue.DailyRevenue{}, revenue.ErrRevenueNotFound
		}
		return revenue.DailyRevenue{}, fmt.Errorf("failed to get revenue on %s: %w", date, err)
	}
	return rev, nil
}

// Upsert implements revenue.RevenueRepository.
func (r *revenueRepositoryImpl) Upsert(ctx context.Context, rev revenue.DailyRevenue) (revenue.DailyRevenue, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO daily_revenues (id, date, offline, grab, shopee_food, be, xanh_sm)
		VALUES ($1, $2::text::date, $3, $4, $5, $6, $7)
		ON CONFLICT (date) DO UPDATE SET
			offline = EXCLUDED.offline,
			grab = EXCLUDED.grab,
			shopee_food = EXCLUDED.shopee_food,
			be = EXCLUDED.be,
			xanh_sm = EXCLUDED.xanh_sm,
			updated_at = NOW()
		RETURNING ` + revenueColumns

	saved, err := scanRevenue(q.QueryRow(ctx, query,
		uuid.NewString(), rev.Date, rev.Offline, rev.Grab, rev.ShopeeFood, rev.Be, rev.XanhSm,
	))
	if err != nil {
		return revenue.DailyRevenue{}, fmt.Errorf("failed to upsert revenue on %s: %w", rev.Date, err)
	}
	return saved, nil
}

// Delete implements revenue.RevenueRepository.
func (r *revenueRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM daily_revenues WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete revenue with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return revenue.ErrRevenueNotFound
	}
	return nil
}

// DeleteAll implements revenue.RevenueRepository.
func (r *revenueRepositoryImpl) DeleteAll(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM daily_revenues`); err != nil {
		return fmt.Errorf("failed to delete revenues: %w", err)
	}
	return nil
}

type settingsRepositoryImpl struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) revenue.SettingsRepository {
	return &settingsRepositoryImpl{db: db}
}

// Get implements revenue.SettingsRepository.
func (r *settingsRepositoryImpl) Get(ctx context.Context) (revenue.BusinessSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT business_name, address, tax_number, business_location, representative_name, updated_at
		FROM business_settings
		WHERE id = 1
	`

	var s revenue.BusinessSettings
	err := q.QueryRow(ctx, query).Scan(&s.BusinessName, &s.Address, &s.TaxNumber, &s.BusinessLocation, &s.RepresentativeName, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return revenue.BusinessSettings{}, nil
		}
		return revenue.BusinessSettings{}, fmt.Errorf("failed to get business settings: %w", err)
	}
	return s, nil
}

// Save implements revenue.SettingsRepository.
func (r *settingsRepositoryImpl) Save(ctx context.Context, s revenue.BusinessSettings) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO business_settings (id, business_name, address, tax_number, business_location, representative_name, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, NOW())
		ON CONFLICT (id) DO UPDATE SET
			business_name = EXCLUDED.business_name,
			address = EXCLUDED.address,
			tax_number = EXCLUDED.tax_number,
			business_location = EXCLUDED.business_location,
			representative_name = EXCLUDED.representative_name,
			updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, s.BusinessName, s.Address, s.TaxNumber, s.BusinessLocation, s.RepresentativeName); err != nil {
		return fmt.Errorf("failed to save business settings: %w", err)
	}
	return nil
}
