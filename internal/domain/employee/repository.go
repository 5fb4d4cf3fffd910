package employee

import "context"

type EmployeeRepository interface {
	List(ctx context.Context) ([]Employee, error)
	Upsert(ctx context.Context, emp Employee) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}
