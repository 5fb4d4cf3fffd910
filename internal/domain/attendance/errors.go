package attendance

import "errors"

var (
	ErrAttendanceNotFound   = errors.New("attendance record not found")
	ErrInvalidTime          = errors.New("time must be a valid HH:MM clock value")
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrConfirmationRequired = errors.New("this operation deletes data and requires confirm=true")
)
