package employee

import (
	"strings"

	"github.com/brown009872/payroll-app/internal/pkg/utils"
	"github.com/brown009872/payroll-app/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName       string        `json:"full_name"`
	EmployeeCode   string        `json:"employee_code"`
	Position       string        `json:"position"`
	Department     string        `json:"department"`
	JoinedDate     string        `json:"joined_date"`
	BasicSalary    utils.Amount  `json:"basic_salary"`
	HourlyRate     *utils.Amount `json:"hourly_rate,omitempty"`
	Color          *string       `json:"color,omitempty"`
	LeaveStartDate *string       `json:"leave_start_date,omitempty"`
	LeaveEndDate   *string       `json:"leave_end_date,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors
	validateProfile(&errs, r.FullName, r.EmployeeCode, r.JoinedDate, r.Color, r.LeaveStartDate, r.LeaveEndDate)
	return errs.Err()
}

// UpdateEmployeeRequest replaces every editable field of an employee.
type UpdateEmployeeRequest struct {
	ID             string        `json:"-"`
	FullName       string        `json:"full_name"`
	EmployeeCode   string        `json:"employee_code"`
	Position       string        `json:"position"`
	Department     string        `json:"department"`
	JoinedDate     string        `json:"joined_date"`
	BasicSalary    utils.Amount  `json:"basic_salary"`
	HourlyRate     *utils.Amount `json:"hourly_rate,omitempty"`
	Color          *string       `json:"color,omitempty"`
	LeaveStartDate *string       `json:"leave_start_date,omitempty"`
	LeaveEndDate   *string       `json:"leave_end_date,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	validateProfile(&errs, r.FullName, r.EmployeeCode, r.JoinedDate, r.Color, r.LeaveStartDate, r.LeaveEndDate)
	return errs.Err()
}

type ChangeStatusRequest struct {
	ID           string `json:"-"`
	Status       string `json:"status"`
	ResignedDate string `json:"resigned_date,omitempty"`
}

func (r *ChangeStatusRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsInSlice(r.Status, StatusValues) {
		errs.Add("status", "status must be one of: "+strings.Join(StatusValues, ", "))
	}
	if r.ResignedDate != "" {
		if _, ok := validator.IsValidDate(r.ResignedDate); !ok {
			errs.Add("resigned_date", "resigned_date must be in YYYY-MM-DD format")
		}
	}
	return errs.Err()
}

type ListEmployeeFilter struct {
	Status string
	Search string
}

type EmployeeResponse struct {
	Employee
	DisplayColor Color `json:"display_color"`
	OnLeaveToday bool  `json:"on_leave_today"`
}

type DeleteEmployeeResponse struct {
	ID          string `json:"id"`
	SoftDeleted bool   `json:"soft_deleted"`
}

func validateProfile(errs *validator.ValidationErrors, fullName, code, joined string, color, leaveStart, leaveEnd *string) {
	if validator.IsEmpty(fullName) {
		errs.Add("full_name", "full_name is required")
	}
	if code != "" && !validator.IsValidEmployeeCode(code) {
		errs.Add("employee_code", "employee_code may only contain letters, digits, '-' and '_'")
	}
	if joined != "" {
		if _, ok := validator.IsValidDate(joined); !ok {
			errs.Add("joined_date", "joined_date must be in YYYY-MM-DD format")
		}
	}
	if color != nil && *color != "" && !IsValidColor(*color) {
		errs.Add("color", ErrInvalidColor.Error())
	}

	startSet := leaveStart != nil && *leaveStart != ""
	endSet := leaveEnd != nil && *leaveEnd != ""
	if startSet {
		if _, ok := validator.IsValidDate(*leaveStart); !ok {
			errs.Add("leave_start_date", "leave_start_date must be in YYYY-MM-DD format")
		}
	}
	if endSet {
		if _, ok := validator.IsValidDate(*leaveEnd); !ok {
			errs.Add("leave_end_date", "leave_end_date must be in YYYY-MM-DD format")
		}
	}
	if startSet && endSet && *leaveEnd < *leaveStart {
		errs.Add("leave_end_date", ErrInvalidLeaveRange.Error())
	}
}
