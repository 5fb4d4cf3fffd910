package postgresql

import (
	"context"
	"fmt"

	"github.com/brown009872/payroll-app/internal/domain/schedule"
	"github.com/brown009872/payroll-app/internal/pkg/database"
)

type workScheduleRepositoryImpl struct {
	db *database.DB
}

func NewWorkScheduleRepository(db *database.DB) schedule.WorkScheduleRepository {
	return &workScheduleRepositoryImpl{db: db}
}

// List implements schedule.WorkScheduleRepository.
func (r *workScheduleRepositoryImpl) List(ctx context.Context) ([]schedule.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date::text, employee_id, morning, evening, morning_new, evening_new,
			custom_shift, custom_start_time, custom_end_time, updated_at
		FROM work_schedules
		ORDER BY date, employee_id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list work schedules: %w", err)
	}
	defer rows.Close()

	entries := []schedule.Entry{}
	for rows.Next() {
		var (
			e                                    schedule.Entry
			morning, evening, morningNew, eveNew bool
			customEnabled                        *bool
			customStart, customEnd               *string
		)
		err := rows.Scan(
			&e.ID, &e.Date, &e.EmployeeID, &morning, &evening, &morningNew, &eveNew,
			&customEnabled, &customStart, &customEnd, &e.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work schedule: %w", err)
		}
		e.Slots = schedule.SlotsOf(morning, evening, morningNew, eveNew)
		if customEnabled != nil {
			e.CustomShift = &schedule.CustomShift{Enabled: *customEnabled, StartTime: deref(customStart), EndTime: deref(customEnd)}
		}
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Upsert implements schedule.WorkScheduleRepository.
func (r *workScheduleRepositoryImpl) Upsert(ctx context.Context, e schedule.Entry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_schedules (
			id, date, employee_id, morning, evening, morning_new, evening_new,
			custom_shift, custom_start_time, custom_end_time, updated_at
		) VALUES ($1, $2::text::date, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (date, employee_id) DO UPDATE SET
			morning = EXCLUDED.morning,
			evening = EXCLUDED.evening,
			morning_new = EXCLUDED.morning_new,
			evening_new = EXCLUDED.evening_new,
			custom_shift = EXCLUDED.custom_shift,
			custom_start_time = EXCLUDED.custom_start_time,
			custom_end_time = EXCLUDED.custom_end_time,
			updated_at = EXCLUDED.updated_at
	`

	var (
		customEnabled          *bool
		customStart, customEnd *string
	)
	if cs := e.CustomShift; cs != nil {
		enabled, start, end := cs.Enabled, cs.StartTime, cs.EndTime
		customEnabled, customStart, customEnd = &enabled, &start, &end
	}

	_, err := q.Exec(ctx, query,
		e.ID, e.Date, e.EmployeeID,
		e.Slots.Has(schedule.SlotMorning), e.Slots.Has(schedule.SlotEvening),
		e.Slots.Has(schedule.SlotMorningNew), e.Slots.Has(schedule.SlotEveningNew),
		customEnabled, customStart, customEnd, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert work schedule for %s on %s: %w", e.EmployeeID, e.Date, err)
	}
	return nil
}

// Delete implements schedule.WorkScheduleRepository.
func (r *workScheduleRepositoryImpl) Delete(ctx context.Context, date, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM work_schedules WHERE date = $1::text::date AND employee_id = $2`, date, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete work schedule for %s on %s: %w", employeeID, date, err)
	}
	return nil
}

// DeleteAll implements schedule.WorkScheduleRepository.
func (r *workScheduleRepositoryImpl) DeleteAll(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM work_schedules`); err != nil {
		return fmt.Errorf("failed to delete work schedules: %w", err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
