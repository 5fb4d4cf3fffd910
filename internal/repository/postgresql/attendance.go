package postgresql

import (
	"context"
	"fmt"

	"github.com/brown009872/payroll-app/internal/domain/attendance"
	"github.com/brown009872/payroll-app/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date::text, employee_id, check_in, check_out, hourly_rate, bonus, penalty,
			multiplier_type, multiplier_value::float8, total_hours::float8, provisional_amount, day_total, updated_at
		FROM daily_attendance
		ORDER BY date, employee_id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	records := []attendance.Record{}
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.Date, &rec.EmployeeID, &rec.CheckIn, &rec.CheckOut, &rec.HourlyRate, &rec.Bonus, &rec.Penalty,
			&rec.Multiplier.Kind, &rec.Multiplier.Value, &rec.TotalHours, &rec.ProvisionalAmount, &rec.DayTotal, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Upsert implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO daily_attendance (
			id, date, employee_id, check_in, check_out, hourly_rate, bonus, penalty,
			multiplier_type, multiplier_value, total_hours, provisional_amount, day_total, updated_at
		) VALUES ($1, $2::text::date, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (date, employee_id) DO UPDATE SET
			check_in = EXCLUDED.check_in,
			check_out = EXCLUDED.check_out,
			hourly_rate = EXCLUDED.hourly_rate,
			bonus = EXCLUDED.bonus,
			penalty = EXCLUDED.penalty,
			multiplier_type = EXCLUDED.multiplier_type,
			multiplier_value = EXCLUDED.multiplier_value,
			total_hours = EXCLUDED.total_hours,
			provisional_amount = EXCLUDED.provisional_amount,
			day_total = EXCLUDED.day_total,
			updated_at = EXCLUDED.updated_at
	`

	_, err := q.Exec(ctx, query,
		rec.ID, rec.Date, rec.EmployeeID, rec.CheckIn, rec.CheckOut, rec.HourlyRate, rec.Bonus, rec.Penalty,
		rec.Multiplier.Kind, rec.Multiplier.Value, rec.TotalHours, rec.ProvisionalAmount, rec.DayTotal, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert attendance for %s on %s: %w", rec.EmployeeID, rec.Date, err)
	}
	return nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, date, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM daily_attendance WHERE date = $1::text::date AND employee_id = $2`, date, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete attendance for %s on %s: %w", employeeID, date, err)
	}
	return nil
}

// DeleteAll implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) DeleteAll(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM daily_attendance`); err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	return nil
}
