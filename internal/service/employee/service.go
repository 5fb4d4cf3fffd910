package employee

import (
	"context"
	"log/slog"
	"strings"

	"github.com/brown009872/payroll-app/internal/domain/employee"
	"github.com/brown009872/payroll-app/internal/pkg/utils"
	"github.com/brown009872/payroll-app/internal/store"
)

type EmployeeServiceImpl struct {
	store  *store.Store
	logger *slog.Logger
	today  func() string
}

func NewEmployeeService(st *store.Store, logger *slog.Logger) employee.EmployeeService {
	if logger == nil {
		logger = slog.Default()
	}
	return &EmployeeServiceImpl{store: st, logger: logger, today: utils.Today}
}

func (s *EmployeeServiceImpl) dispatch(ctx context.Context, name string, m store.Mutation) error {
	p, err := s.store.Dispatch(name, m)
	if err != nil {
		return err
	}
	return store.Settle(ctx, p)
}

func (s *EmployeeServiceImpl) toResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		Employee:     emp,
		DisplayColor: emp.DisplayColor(),
		OnLeaveToday: emp.IsOnLeave(s.today()),
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.ListEmployeeFilter) ([]employee.EmployeeResponse, error) {
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	out := []employee.EmployeeResponse{}
	for _, emp := range s.store.Snapshot().EmployeeList() {
		if filter.Status != "" && string(emp.Status) != filter.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(emp.FullName), search) &&
			!strings.Contains(strings.ToLower(emp.EmployeeCode), search) {
			continue
		}
		out = append(out, s.toResponse(emp))
	}
	return out, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, ok := s.store.Snapshot().Employee(id)
	if !ok {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}
	return s.toResponse(emp), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		FullName:     strings.TrimSpace(req.FullName),
		EmployeeCode: strings.TrimSpace(req.EmployeeCode),
		Position:     strings.TrimSpace(req.Position),
		Department:   strings.TrimSpace(req.Department),
		Status:       employee.StatusActive,
		JoinedDate:   req.JoinedDate,
		BasicSalary:  req.BasicSalary.Int64(),
		HourlyRate:   amountPtr(req.HourlyRate),
		Color:        colorPtr(req.Color),
	}
	if emp.JoinedDate == "" {
		emp.JoinedDate = s.today()
	}
	if err := emp.SetLeave(datePtr(req.LeaveStartDate), datePtr(req.LeaveEndDate)); err != nil {
		return employee.EmployeeResponse{}, err
	}

	var created employee.Employee
	err := s.dispatch(ctx, "employee.create", func(tx *store.Tx) error {
		if codeTaken(tx.State(), emp.EmployeeCode, "") {
			return employee.ErrEmployeeCodeExists
		}
		created = tx.PutEmployee(emp)
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.logger.Info("Employee created", "employee_id", created.ID)
	return s.toResponse(created), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	var updated employee.Employee
	err := s.dispatch(ctx, "employee.update", func(tx *store.Tx) error {
		current, ok := tx.State().Employee(req.ID)
		if !ok {
			return employee.ErrEmployeeNotFound
		}
		code := strings.TrimSpace(req.EmployeeCode)
		if codeTaken(tx.State(), code, req.ID) {
			return employee.ErrEmployeeCodeExists
		}

		emp := current.Clone()
		emp.FullName = strings.TrimSpace(req.FullName)
		emp.EmployeeCode = code
		emp.Position = strings.TrimSpace(req.Position)
		emp.Department = strings.TrimSpace(req.Department)
		if req.JoinedDate != "" {
			emp.JoinedDate = req.JoinedDate
		}
		emp.BasicSalary = req.BasicSalary.Int64()
		emp.HourlyRate = amountPtr(req.HourlyRate)
		emp.Color = colorPtr(req.Color)
		if err := emp.SetLeave(datePtr(req.LeaveStartDate), datePtr(req.LeaveEndDate)); err != nil {
			return err
		}

		updated = tx.PutEmployee(emp)
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return s.toResponse(updated), nil
}

// ChangeStatus implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ChangeStatus(ctx context.Context, req employee.ChangeStatusRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	var updated employee.Employee
	err := s.dispatch(ctx, "employee.status", func(tx *store.Tx) error {
		current, ok := tx.State().Employee(req.ID)
		if !ok {
			return employee.ErrEmployeeNotFound
		}
		emp := current.Clone()
		if err := emp.TransitionTo(employee.Status(req.Status), req.ResignedDate); err != nil {
			return err
		}
		if emp.Status == current.Status {
			updated = current
			return nil
		}
		updated = tx.PutEmployee(emp)
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return s.toResponse(updated), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) (employee.DeleteEmployeeResponse, error) {
	resp := employee.DeleteEmployeeResponse{ID: id}
	err := s.dispatch(ctx, "employee.delete", func(tx *store.Tx) error {
		current, ok := tx.State().Employee(id)
		if !ok {
			return employee.ErrEmployeeNotFound
		}
		if !tx.State().References(id) {
			tx.DeleteEmployee(id)
			return nil
		}

		resp.SoftDeleted = true
		if current.Status == employee.StatusActive {
			emp := current.Clone()
			emp.Status = employee.StatusInactive
			tx.PutEmployee(emp)
		}
		return nil
	})
	if err != nil {
		return employee.DeleteEmployeeResponse{}, err
	}

	s.logger.Info("Employee deleted", "employee_id", id, "soft_deleted", resp.SoftDeleted)
	return resp, nil
}

func codeTaken(st *store.State, code, exceptID string) bool {
	if code == "" {
		return false
	}
	for id, emp := range st.Employees {
		if id != exceptID && strings.EqualFold(emp.EmployeeCode, code) {
			return true
		}
	}
	return false
}

func amountPtr(a *utils.Amount) *int64 {
	if a == nil || a.Int64() <= 0 {
		return nil
	}
	v := a.Int64()
	return &v
}

func colorPtr(c *string) *string {
	if c == nil || *c == "" {
		return nil
	}
	v := *c
	return &v
}

// datePtr treats an empty date as unset.
func datePtr(d *string) *string {
	if d == nil || strings.TrimSpace(*d) == "" {
		return nil
	}
	v := strings.TrimSpace(*d)
	return &v
}
