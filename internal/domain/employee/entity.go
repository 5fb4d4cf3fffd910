package employee

import (
	"time"

	"github.com/brown009872/payroll-app/internal/pkg/utils"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusResigned Status = "resigned"
)

var StatusValues = []string{
	string(StatusActive),
	string(StatusInactive),
	string(StatusResigned),
}

// DeletedPlaceholder is shown wherever a record points at an employee that no longer exists.
const DeletedPlaceholder = "(Deleted Employee)"

type Employee struct {
	ID             string    `json:"id"`
	FullName       string    `json:"full_name"`
	EmployeeCode   string    `json:"employee_code"`
	Position       string    `json:"position"`
	Department     string    `json:"department"`
	Status         Status    `json:"status"`
	JoinedDate     string    `json:"joined_date"`
	ResignedDate   *string   `json:"resigned_date"`
	LeaveStartDate *string   `json:"leave_start_date"`
	LeaveEndDate   *string   `json:"leave_end_date"`
	LeaveTotalDays *int      `json:"leave_total_days"`
	BasicSalary    int64     `json:"basic_salary"`
	HourlyRate     *int64    `json:"hourly_rate"`
	Color          *string   `json:"color"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// IsOnLeave reports whether date falls inside the employee's leave range.
// Both ends are inclusive and both must be set.
func (e Employee) IsOnLeave(date string) bool {
	if e.LeaveStartDate == nil || e.LeaveEndDate == nil {
		return false
	}
	return utils.IsDateBetween(date, *e.LeaveStartDate, *e.LeaveEndDate)
}

// Rate returns the hourly rate when one is configured.
func (e Employee) Rate() (int64, bool) {
	if e.HourlyRate == nil || *e.HourlyRate <= 0 {
		return 0, false
	}
	return *e.HourlyRate, true
}

// Clone returns a copy that shares no pointers with e.
func (e Employee) Clone() Employee {
	c := e
	c.ResignedDate = clonePtr(e.ResignedDate)
	c.LeaveStartDate = clonePtr(e.LeaveStartDate)
	c.LeaveEndDate = clonePtr(e.LeaveEndDate)
	c.LeaveTotalDays = clonePtr(e.LeaveTotalDays)
	c.HourlyRate = clonePtr(e.HourlyRate)
	c.Color = clonePtr(e.Color)
	return c
}

// SetLeave replaces the leave range. Either bound may be nil; the total day
// count is only kept when both are set.
func (e *Employee) SetLeave(start, end *string) error {
	var days *int
	if start != nil && end != nil {
		n, err := LeaveTotalDays(*start, *end)
		if err != nil {
			return err
		}
		days = &n
	}
	e.LeaveStartDate, e.LeaveEndDate, e.LeaveTotalDays = clonePtr(start), clonePtr(end), days
	return nil
}

// LeaveTotalDays counts the days of an inclusive leave range.
func LeaveTotalDays(start, end string) (int, error) {
	if end < start {
		return 0, ErrInvalidLeaveRange
	}
	n, err := utils.DaysBetween(start, end)
	if err != nil {
		return 0, ErrInvalidLeaveRange
	}
	return n + 1, nil
}

// TransitionTo changes the employment status. Resigned is terminal; moving
// to it stamps resignedDate, or today when resignedDate is empty.
func (e *Employee) TransitionTo(status Status, resignedDate string) error {
	if e.Status == status {
		return nil
	}
	if e.Status == StatusResigned {
		return ErrEmployeeResigned
	}
	switch status {
	case StatusActive, StatusInactive:
		e.Status = status
	case StatusResigned:
		if resignedDate == "" {
			resignedDate = utils.Today()
		}
		e.Status = status
		e.ResignedDate = &resignedDate
	default:
		return ErrInvalidStatus
	}
	return nil
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
