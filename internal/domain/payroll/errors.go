package payroll

import "errors"

var (
	ErrInvalidMultiplier   = errors.New("invalid holiday multiplier")
	ErrMultiplierNotCustom = errors.New("multiplier value can only be set on a custom multiplier")
	ErrInvalidDelay        = errors.New("pay delay days must be between 0 and 60")
)
