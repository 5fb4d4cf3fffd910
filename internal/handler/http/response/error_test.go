package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brown009872/payroll-app/internal/domain/attendance"
	"github.com/brown009872/payroll-app/internal/domain/employee"
	"github.com/brown009872/payroll-app/internal/domain/inventory"
	"github.com/brown009872/payroll-app/internal/domain/schedule"
	"github.com/brown009872/payroll-app/internal/pkg/validator"
	"github.com/brown009872/payroll-app/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	var invalid validator.ValidationErrors
	invalid.Add("date", "date must be in YYYY-MM-DD format")

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", invalid.Err(), http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"not found", employee.ErrEmployeeNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"wrapped not found", fmt.Errorf("loading: %w", attendance.ErrAttendanceNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"on leave", schedule.ErrEmployeeOnLeave, http.StatusConflict, "RULE_VIOLATION"},
		{"confirmation", attendance.ErrConfirmationRequired, http.StatusConflict, "RULE_VIOLATION"},
		{"invalid time", attendance.ErrInvalidTime, http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"sync failed", fmt.Errorf("%w: employee.create: boom", store.ErrSyncFailed), http.StatusBadGateway, "SYNC_FAILED"},
		{"no order source", inventory.ErrOrderSourceDisabled, http.StatusServiceUnavailable, ""},
		{"unknown product", inventory.ErrProductNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"empty cart", inventory.ErrCartEmpty, http.StatusConflict, "RULE_VIOLATION"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			if tt.code != "" {
				assert.Equal(t, tt.code, body.Error.Code)
			}
		})
	}
}

func TestHandleError_ValidationDetails(t *testing.T) {
	var invalid validator.ValidationErrors
	invalid.Add("full_name", "full_name is required")

	rec := httptest.NewRecorder()
	HandleError(rec, invalid.Err())

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "full_name is required", body.Error.Details["full_name"])
}
