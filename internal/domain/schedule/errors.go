package schedule

import "errors"

var (
	ErrEmployeeOnLeave      = errors.New("employee is on leave on this date")
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrInvalidSlot          = errors.New("invalid shift slot")
	ErrAlreadyInWeek        = errors.New("employee is already scheduled this week")
	ErrNoDragInProgress     = errors.New("no drag in progress")
	ErrConfirmationRequired = errors.New("this operation deletes data and requires confirm=true")
)
