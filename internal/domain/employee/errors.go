package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeCodeExists = errors.New("employee code already exists")
	ErrInvalidLeaveRange  = errors.New("leave end date must not be before leave start date")
	ErrInvalidStatus      = errors.New("status must be active, inactive or resigned")
	ErrEmployeeResigned   = errors.New("employee has resigned and cannot change status")
	ErrInvalidColor       = errors.New("color is not part of the palette")
)
