package payroll

import (
	"time"

	"github.com/brown009872/payroll-app/internal/pkg/utils"
)

// WeeklyDelay is the number of days after the week's Sunday an employee is paid.
// A missing delay means "not set", which is different from a delay of 0.
type WeeklyDelay struct {
	WeekEndDate string    `json:"week_end_date"`
	EmployeeID  string    `json:"employee_id"`
	DelayDays   int       `json:"delay_days"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PayDate is weekEnd plus delayDays calendar days.
func PayDate(weekEnd string, delayDays int) (string, error) {
	return utils.AddDays(weekEnd, delayDays)
}

// DayAmount is one column of the weekly summary.
type DayAmount struct {
	Date   string  `json:"date"`
	Hours  float64 `json:"hours"`
	Amount int64   `json:"amount"`
}

// WeeklyRow is an employee's line in the weekly summary.
type WeeklyRow struct {
	EmployeeID   string       `json:"employee_id"`
	EmployeeName string       `json:"employee_name"`
	Position     string       `json:"position"`
	Days         [7]DayAmount `json:"days"`
	TotalHours   float64      `json:"total_hours"`
	TotalAmount  int64        `json:"total_amount"`
	DelayDays    *int         `json:"delay_days"`
	PayDate      string       `json:"pay_date"`
	RateNotSet   bool         `json:"rate_not_set"`
}

type WeeklySummary struct {
	WeekStart        string      `json:"week_start"`
	WeekEnd          string      `json:"week_end"`
	Rows             []WeeklyRow `json:"rows"`
	GrandTotalHours  float64     `json:"grand_total_hours"`
	GrandTotalAmount int64       `json:"grand_total_amount"`
}
