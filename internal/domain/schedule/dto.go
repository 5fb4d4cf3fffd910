package schedule

import (
	"github.com/brown009872/payroll-app/internal/pkg/validator"
)

// ToggleRequest flips one checkbox of the weekly table.
type ToggleRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Slot       string `json:"slot"`
}

func (r *ToggleRequest) Validate() error {
	var errs validator.ValidationErrors
	requireID(&errs, r.EmployeeID)
	requireDate(&errs, "date", r.Date)
	requireSlot(&errs, "slot", r.Slot)
	return errs.Err()
}

type SelectRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *SelectRequest) Validate() error {
	var errs validator.ValidationErrors
	requireID(&errs, r.EmployeeID)
	return errs.Err()
}

// ClickRequest places the selected employee on a board zone.
type ClickRequest struct {
	Date string `json:"date"`
	Zone string `json:"zone"`
}

func (r *ClickRequest) Validate() error {
	var errs validator.ValidationErrors
	requireDate(&errs, "date", r.Date)
	requireSlot(&errs, "zone", r.Zone)
	return errs.Err()
}

type DragStartRequest struct {
	EmployeeID string `json:"employee_id"`
	FromDate   string `json:"from_date"`
	FromZone   string `json:"from_zone"`
}

func (r *DragStartRequest) Validate() error {
	var errs validator.ValidationErrors
	requireID(&errs, r.EmployeeID)
	requireDate(&errs, "from_date", r.FromDate)
	requireSlot(&errs, "from_zone", r.FromZone)
	return errs.Err()
}

type DropRequest struct {
	ToDate string `json:"to_date"`
	ToZone string `json:"to_zone"`
}

func (r *DropRequest) Validate() error {
	var errs validator.ValidationErrors
	requireDate(&errs, "to_date", r.ToDate)
	requireSlot(&errs, "to_zone", r.ToZone)
	return errs.Err()
}

type RemoveRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Zone       string `json:"zone"`
}

func (r *RemoveRequest) Validate() error {
	var errs validator.ValidationErrors
	requireID(&errs, r.EmployeeID)
	requireDate(&errs, "date", r.Date)
	requireSlot(&errs, "zone", r.Zone)
	return errs.Err()
}

// CustomShiftRequest addresses the custom shift of one entry. StartTime and
// EndTime are only read when changing the hours.
type CustomShiftRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	StartTime  *string `json:"start_time,omitempty"`
	EndTime    *string `json:"end_time,omitempty"`
}

func (r *CustomShiftRequest) Validate() error {
	var errs validator.ValidationErrors
	requireID(&errs, r.EmployeeID)
	requireDate(&errs, "date", r.Date)
	return errs.Err()
}

type AddRowRequest struct {
	EmployeeID string `json:"employee_id"`
	Anchor     string `json:"anchor"`
}

func (r *AddRowRequest) Validate() error {
	var errs validator.ValidationErrors
	requireID(&errs, r.EmployeeID)
	requireDate(&errs, "anchor", r.Anchor)
	return errs.Err()
}

type RemoveRowRequest struct {
	EmployeeID string
	Anchor     string
	Confirm    bool
}

func (r *RemoveRowRequest) Validate() error {
	var errs validator.ValidationErrors
	requireID(&errs, r.EmployeeID)
	requireDate(&errs, "anchor", r.Anchor)
	return errs.Err()
}

type ResetWeekRequest struct {
	Anchor  string `json:"anchor"`
	Confirm bool   `json:"confirm"`
}

func (r *ResetWeekRequest) Validate() error {
	var errs validator.ValidationErrors
	requireDate(&errs, "anchor", r.Anchor)
	return errs.Err()
}

// PlacementResult tells the board whether a gesture changed anything.
type PlacementResult struct {
	Applied bool    `json:"applied"`
	Entries []Entry `json:"entries,omitempty"`
}

func requireID(errs *validator.ValidationErrors, id string) {
	if validator.IsEmpty(id) {
		errs.Add("employee_id", "employee_id is required")
	}
}

func requireDate(errs *validator.ValidationErrors, field, value string) {
	if _, ok := validator.IsValidDate(value); !ok {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
	}
}

func requireSlot(errs *validator.ValidationErrors, field, value string) {
	if _, err := ParseSlot(value); err != nil {
		errs.Add(field, field+" must be morning, afternoon, evening, morning_new or evening_new")
	}
}
