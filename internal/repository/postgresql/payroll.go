package postgresql

import (
	"context"
	"fmt"

	"github.com/brown009872/payroll-app/internal/domain/payroll"
	"github.com/brown009872/payroll-app/internal/pkg/database"
)

type weeklyDelayRepositoryImpl struct {
	db *database.DB
}

func NewWeeklyDelayRepository(db *database.DB) payroll.WeeklyDelayRepository {
	return &weeklyDelayRepositoryImpl{db: db}
}

// List implements payroll.WeeklyDelayRepository.
func (r *weeklyDelayRepositoryImpl) List(ctx context.Context) ([]payroll.WeeklyDelay, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT week_end_date::text, employee_id, delay_days, updated_at
		FROM weekly_delays
		ORDER BY week_end_date, employee_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list weekly delays: %w", err)
	}
	defer rows.Close()

	delays := []payroll.WeeklyDelay{}
	for rows.Next() {
		var d payroll.WeeklyDelay
		if err := rows.Scan(&d.WeekEndDate, &d.EmployeeID, &d.DelayDays, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan weekly delay: %w", err)
		}
		delays = append(delays, d)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return delays, nil
}

// Upsert implements payroll.WeeklyDelayRepository.
func (r *weeklyDelayRepositoryImpl) Upsert(ctx context.Context, d payroll.WeeklyDelay) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO weekly_delays (week_end_date, employee_id, delay_days, updated_at)
		VALUES ($1::text::date, $2, $3, $4)
		ON CONFLICT (week_end_date, employee_id) DO UPDATE SET
			delay_days = EXCLUDED.delay_days,
			updated_at = EXCLUDED.updated_at
	`

	if _, err := q.Exec(ctx, query, d.WeekEndDate, d.EmployeeID, d.DelayDays, d.UpdatedAt); err != nil {
		return fmt.Errorf("failed to upsert weekly delay for %s on %s: %w", d.EmployeeID, d.WeekEndDate, err)
	}
	return nil
}

// DeleteAll implements payroll.WeeklyDelayRepository.
func (r *weeklyDelayRepositoryImpl) DeleteAll(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM weekly_delays`); err != nil {
		return fmt.Errorf("failed to delete weekly delays: %w", err)
	}
	return nil
}
