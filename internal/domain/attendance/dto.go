package attendance

import (
	"strings"

	"github.com/brown009872/payroll-app/internal/domain/payroll"
	"github.com/brown009872/payroll-app/internal/pkg/utils"
	"github.com/brown009872/payroll-app/internal/pkg/validator"
)

// UpdateAttendanceRequest edits some fields of a day's record. Nil fields keep
// their current value; an empty bonus or penalty means 0.
type UpdateAttendanceRequest struct {
	Date            string        `json:"-"`
	EmployeeID      string        `json:"-"`
	CheckIn         *string       `json:"check_in,omitempty"`
	CheckOut        *string       `json:"check_out,omitempty"`
	Bonus           *utils.Amount `json:"bonus,omitempty"`
	Penalty         *utils.Amount `json:"penalty,omitempty"`
	MultiplierType  *string       `json:"multiplier_type,omitempty"`
	MultiplierValue *float64      `json:"multiplier_value,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs.Add("date", "date must be in YYYY-MM-DD format")
	}
	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}
	if r.MultiplierType != nil && !validator.IsInSlice(*r.MultiplierType, payroll.MultiplierKindValues) {
		errs.Add("multiplier_type", "multiplier_type must be one of: "+strings.Join(payroll.MultiplierKindValues, ", "))
	}
	if r.MultiplierValue != nil && *r.MultiplierValue <= 0 {
		errs.Add("multiplier_value", "multiplier_value must be greater than 0")
	}

	return errs.Err()
}

type ClearDayRequest struct {
	Date    string
	Confirm bool
}

func (r *ClearDayRequest) Validate() error {
	var errs validator.ValidationErrors
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs.Add("date", "date must be in YYYY-MM-DD format")
	}
	return errs.Err()
}

// ClearWeekRequest removes one employee's records for the week containing Anchor.
type ClearWeekRequest struct {
	EmployeeID string `json:"employee_id"`
	Anchor     string `json:"anchor"`
	Confirm    bool   `json:"confirm"`
}

func (r *ClearWeekRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}
	if _, ok := validator.IsValidDate(r.Anchor); !ok {
		errs.Add("anchor", "anchor must be in YYYY-MM-DD format")
	}
	return errs.Err()
}

type ExportRequest struct {
	From string
	To   string
}

func (r *ExportRequest) Validate() error {
	var errs validator.ValidationErrors
	if _, ok := validator.IsValidDate(r.From); !ok {
		errs.Add("from", "from must be in YYYY-MM-DD format")
	}
	if _, ok := validator.IsValidDate(r.To); !ok {
		errs.Add("to", "to must be in YYYY-MM-DD format")
	}
	if len(errs) == 0 && r.To < r.From {
		errs.Add("to", "to must not be before from")
	}
	return errs.Err()
}
