package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// ListEmployees lists employees, optionally filtered by status or name
	ListEmployees(ctx context.Context, filter ListEmployeeFilter) ([]EmployeeResponse, error)

	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// ChangeStatus moves between active and inactive, or to the terminal resigned state
	ChangeStatus(ctx context.Context, req ChangeStatusRequest) (EmployeeResponse, error)

	// DeleteEmployee removes an employee, or only inactivates one that attendance
	// or schedule entries still point at
	DeleteEmployee(ctx context.Context, id string) (DeleteEmployeeResponse, error)
}
