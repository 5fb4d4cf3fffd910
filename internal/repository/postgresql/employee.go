package postgresql

import (
	"context"
	"fmt"

	"github.com/brown009872/payroll-app/internal/domain/employee"
	"github.com/brown009872/payroll-app/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, full_name, employee_code, position, department, status,
			COALESCE(joined_date::text, ''), resigned_date::text, leave_start_date::text, leave_end_date::text,
			leave_total_days, basic_salary, hourly_rate, color, created_at, updated_at
		FROM employees
		ORDER BY created_at, full_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.FullName, &emp.EmployeeCode, &emp.Position, &emp.Department, &emp.Status,
			&emp.JoinedDate, &emp.ResignedDate, &emp.LeaveStartDate, &emp.LeaveEndDate,
			&emp.LeaveTotalDays, &emp.BasicSalary, &emp.HourlyRate, &emp.Color, &emp.CreatedAt, &emp.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// Upsert implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Upsert(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			id, full_name, employee_code, position, department, status,
			joined_date, resigned_date, leave_start_date, leave_end_date,
			leave_total_days, basic_salary, hourly_rate, color, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			NULLIF($7::text, '')::date, $8::text::date, $9::text::date, $10::text::date,
			$11, $12, $13, $14, $15, $16
		)
		ON CONFLICT (id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			employee_code = EXCLUDED.employee_code,
			position = EXCLUDED.position,
			department = EXCLUDED.department,
			status = EXCLUDED.status,
			joined_date = EXCLUDED.joined_date,
			resigned_date = EXCLUDED.resigned_date,
			leave_start_date = EXCLUDED.leave_start_date,
			leave_end_date = EXCLUDED.leave_end_date,
			leave_total_days = EXCLUDED.leave_total_days,
			basic_salary = EXCLUDED.basic_salary,
			hourly_rate = EXCLUDED.hourly_rate,
			color = EXCLUDED.color,
			updated_at = EXCLUDED.updated_at
	`

	_, err := q.Exec(ctx, query,
		emp.ID, emp.FullName, emp.EmployeeCode, emp.Position, emp.Department, emp.Status,
		emp.JoinedDate, emp.ResignedDate, emp.LeaveStartDate, emp.LeaveEndDate,
		emp.LeaveTotalDays, emp.BasicSalary, emp.HourlyRate, emp.Color, emp.CreatedAt, emp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert employee with id %s: %w", emp.ID, err)
	}
	return nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	if _, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete employee with id %s: %w", id, err)
	}
	return nil
}

// DeleteAll implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) DeleteAll(ctx context.Context) error {
	q := GetQuerier(ctx, e.db)

	if _, err := q.Exec(ctx, `DELETE FROM employees`); err != nil {
		return fmt.Errorf("failed to delete employees: %w", err)
	}
	return nil
}
