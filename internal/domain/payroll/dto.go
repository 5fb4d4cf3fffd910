package payroll

import "github.com/brown009872/payroll-app/internal/pkg/validator"

const MaxDelayDays = 60

type SetWeeklyDelayRequest struct {
	WeekEndDate string `json:"week_end_date"`
	EmployeeID  string `json:"employee_id"`
	DelayDays   int    `json:"delay_days"`
}

func (r *SetWeeklyDelayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.WeekEndDate); !ok {
		errs.Add("week_end_date", "week_end_date must be in YYYY-MM-DD format")
	}
	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}
	if r.DelayDays < 0 || r.DelayDays > MaxDelayDays {
		errs.Add("delay_days", ErrInvalidDelay.Error())
	}

	return errs.Err()
}
