package response

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/brown009872/payroll-app/internal/domain/attendance"
	"github.com/brown009872/payroll-app/internal/domain/employee"
	"github.com/brown009872/payroll-app/internal/domain/inventory"
	"github.com/brown009872/payroll-app/internal/domain/payroll"
	"github.com/brown009872/payroll-app/internal/domain/revenue"
	"github.com/brown009872/payroll-app/internal/domain/schedule"
	"github.com/brown009872/payroll-app/internal/domain/system"
	"github.com/brown009872/payroll-app/internal/pkg/supplier"
	"github.com/brown009872/payroll-app/internal/pkg/validator"
	"github.com/brown009872/payroll-app/internal/store"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Not found
	case errors.Is(err, employee.ErrEmployeeNotFound),
		errors.Is(err, attendance.ErrEmployeeNotFound),
		errors.Is(err, schedule.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, revenue.ErrRevenueNotFound):
		NotFound(w, "Revenue entry not found")
	case errors.Is(err, inventory.ErrStockRecordNotFound):
		NotFound(w, "Stock record not found")
	case errors.Is(err, inventory.ErrProductNotFound):
		NotFound(w, "Product not found")
	case errors.Is(err, inventory.ErrCartItemNotFound):
		NotFound(w, "Product is not in the cart")

	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")

	// Business rules
	case errors.Is(err, schedule.ErrEmployeeOnLeave),
		errors.Is(err, schedule.ErrAlreadyInWeek),
		errors.Is(err, schedule.ErrNoDragInProgress),
		errors.Is(err, employee.ErrEmployeeResigned),
		errors.Is(err, revenue.ErrEmptyRevenue),
		errors.Is(err, inventory.ErrCartEmpty),
		errors.Is(err, revenue.ErrBusinessSettingsRequired),
		errors.Is(err, attendance.ErrConfirmationRequired),
		errors.Is(err, schedule.ErrConfirmationRequired),
		errors.Is(err, system.ErrConfirmationRequired):
		RuleViolation(w, err.Error())

	// Field values rejected by the domain
	case errors.Is(err, attendance.ErrInvalidTime):
		ValidationError(w, map[string]string{"time": err.Error()})
	case errors.Is(err, employee.ErrInvalidLeaveRange):
		ValidationError(w, map[string]string{"leave_end_date": err.Error()})
	case errors.Is(err, employee.ErrInvalidStatus):
		ValidationError(w, map[string]string{"status": err.Error()})
	case errors.Is(err, employee.ErrInvalidColor):
		ValidationError(w, map[string]string{"color": err.Error()})
	case errors.Is(err, payroll.ErrInvalidMultiplier),
		errors.Is(err, payroll.ErrMultiplierNotCustom):
		ValidationError(w, map[string]string{"multiplier": err.Error()})
	case errors.Is(err, payroll.ErrInvalidDelay):
		ValidationError(w, map[string]string{"delay_days": err.Error()})
	case errors.Is(err, schedule.ErrInvalidSlot):
		ValidationError(w, map[string]string{"slot": err.Error()})

	// Persistence and upstreams
	case errors.Is(err, store.ErrSyncFailed):
		SyncFailed(w, err.Error())
	case errors.Is(err, store.ErrClosed):
		ServiceUnavailable(w, "Service is shutting down")
	case errors.Is(err, inventory.ErrOrderSourceDisabled):
		ServiceUnavailable(w, "No supplier order source is configured")
	case errors.Is(err, supplier.ErrUnexpectedStatus):
		BadGateway(w, "Supplier portal request failed")
	case errors.Is(err, context.DeadlineExceeded):
		GatewayTimeout(w, "Timed out waiting for the change to be saved")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
