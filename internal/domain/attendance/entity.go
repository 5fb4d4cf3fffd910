package attendance

import (
	"time"

	"github.com/brown009872/payroll-app/internal/domain/payroll"
	"github.com/brown009872/payroll-app/internal/pkg/utils"
)

// Record is one employee's working day. It is unique per (Date, EmployeeID).
// TotalHours, ProvisionalAmount and DayTotal are derived and always
// recomputed together from the other fields.
type Record struct {
	ID                string             `json:"id"`
	Date              string             `json:"date"`
	EmployeeID        string             `json:"employee_id"`
	CheckIn           string             `json:"check_in"`
	CheckOut          string             `json:"check_out"`
	HourlyRate        int64              `json:"hourly_rate"`
	Bonus             int64              `json:"bonus"`
	Penalty           int64              `json:"penalty"`
	Multiplier        payroll.Multiplier `json:"multiplier"`
	TotalHours        float64            `json:"total_hours"`
	ProvisionalAmount int64              `json:"provisional_amount"`
	DayTotal          int64              `json:"day_total"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// Key identifies a record: one per employee per date.
type Key struct {
	Date       string
	EmployeeID string
}

func NewRecord(date, employeeID string) Record {
	return Record{
		Date:       date,
		EmployeeID: employeeID,
		Multiplier: payroll.DefaultMultiplier(),
	}
}

func (r Record) Key() Key {
	return Key{Date: r.Date, EmployeeID: r.EmployeeID}
}

// Recalculate refreshes every derived field.
func (r *Record) Recalculate() {
	r.TotalHours = payroll.CalculateHours(r.CheckIn, r.CheckOut)
	factor := r.Multiplier.Factor()
	r.ProvisionalAmount = payroll.CalculateHolidayProvisional(r.TotalHours, r.HourlyRate, factor)
	r.DayTotal = payroll.CalculateDayTotal(r.TotalHours, r.HourlyRate, r.Bonus, r.Penalty, factor)
}

// HasRate is false when the record was priced without an hourly rate.
func (r Record) HasRate() bool {
	return r.HourlyRate > 0
}

// ApplyUpdate returns current with req applied and derived fields refreshed.
// current is nil when no record exists yet for that day. The rate comes from
// the employee when one is configured, otherwise the record keeps its own.
func ApplyUpdate(current *Record, req UpdateAttendanceRequest, employeeRate int64) (Record, error) {
	var rec Record
	if current != nil {
		rec = *current
	} else {
		rec = NewRecord(req.Date, req.EmployeeID)
	}

	if req.CheckIn != nil {
		in := utils.NormalizeTimeInput(*req.CheckIn)
		if in != "" && !utils.IsCanonicalTime(in) {
			return rec, ErrInvalidTime
		}
		rec.CheckIn = in
	}
	if req.CheckOut != nil {
		out := utils.NormalizeTimeInput(*req.CheckOut)
		if out != "" && !utils.IsCanonicalTime(out) {
			return rec, ErrInvalidTime
		}
		rec.CheckOut = out
	}
	if req.Bonus != nil {
		rec.Bonus = req.Bonus.Int64()
	}
	if req.Penalty != nil {
		rec.Penalty = req.Penalty.Int64()
	}

	if req.MultiplierType != nil {
		m, err := payroll.SwitchMultiplier(rec.Multiplier, payroll.MultiplierKind(*req.MultiplierType))
		if err != nil {
			return rec, err
		}
		rec.Multiplier = m
	}
	if req.MultiplierValue != nil {
		m, err := rec.Multiplier.WithCustomValue(*req.MultiplierValue)
		if err != nil {
			return rec, err
		}
		rec.Multiplier = m
	}

	if employeeRate > 0 {
		rec.HourlyRate = employeeRate
	} else if rec.HourlyRate < 0 {
		rec.HourlyRate = 0
	}

	rec.Recalculate()
	return rec, nil
}

// RecordView is a record as shown in the daily sheet.
type RecordView struct {
	Record
	EmployeeName string `json:"employee_name"`
	Position     string `json:"position"`
	RateNotSet   bool   `json:"rate_not_set"`
	Exists       bool   `json:"exists"`
}

type DailySheet struct {
	Date        string       `json:"date"`
	Rows        []RecordView `json:"rows"`
	TotalHours  float64      `json:"total_hours"`
	TotalAmount int64        `json:"total_amount"`
}

// ExportRow is one CSV line of the attendance export.
type ExportRow struct {
	Date       string  `csv:"Date"`
	EmployeeID string  `csv:"Employee ID"`
	FullName   string  `csv:"Full Name"`
	Position   string  `csv:"Position"`
	CheckIn    string  `csv:"In"`
	CheckOut   string  `csv:"Out"`
	Hours      float64 `csv:"Hours"`
	Rate       int64   `csv:"Rate"`
	Multiplier string  `csv:"Holiday Multiplier"`
	Bonus      int64   `csv:"Bonus"`
	Penalty    int64   `csv:"Penalty"`
	Total      int64   `csv:"Total"`
}
