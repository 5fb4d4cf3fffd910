package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateHours(t *testing.T) {
	cases := []struct {
		in, out string
		want    float64
	}{
		{"08:00", "16:30", 8.5},
		{"08:00", "08:20", 0.33},
		{"08:00", "08:00", 0},
		{"22:00", "06:00", 0},
		{"", "16:00", 0},
		{"08:00", "", 0},
		{"800", "1630", 8.5},
		{"junk", "16:00", 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, CalculateHours(c.in, c.out), "CalculateHours(%q, %q)", c.in, c.out)
	}
}

func TestCalculateDayTotal(t *testing.T) {
	assert.Equal(t, int64(400000), CalculateDayTotal(8, 50000, 0, 0, 1))
	assert.Equal(t, int64(800000), CalculateDayTotal(8, 50000, 0, 0, 2))
	assert.Equal(t, int64(405000), CalculateDayTotal(8, 50000, 5000, 0, 1))
	assert.Equal(t, int64(395000), CalculateDayTotal(8, 50000, 0, 5000, 1))
	assert.Equal(t, int64(425000), CalculateDayTotal(8.5, 50000, 0, 0, 0))
	assert.Equal(t, int64(0), CalculateDayTotal(8, 0, 0, 0, 1))
}

func TestCalculateProvisional(t *testing.T) {
	assert.Equal(t, int64(400000), CalculateProvisional(8, 50000))
	assert.Equal(t, int64(16667), CalculateProvisional(0.33, 50505))
}

func TestCalculateHolidayProvisional(t *testing.T) {
	assert.Equal(t, int64(800000), CalculateHolidayProvisional(8, 50000, 2))
	assert.Equal(t, int64(600000), CalculateHolidayProvisional(8, 50000, 1.5))
	assert.Equal(t, CalculateProvisional(8, 50000), CalculateHolidayProvisional(8, 50000, 1))
}

func TestPayDate(t *testing.T) {
	got, err := PayDate("2025-01-30", 3)
	require.NoError(t, err)
	assert.Equal(t, "2025-02-02", got)

	got, err = PayDate("2025-06-15", 0)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-15", got)
}

func TestSetWeeklyDelayRequest_Validate(t *testing.T) {
	req := SetWeeklyDelayRequest{WeekEndDate: "2025-06-15", EmployeeID: "e1", DelayDays: 3}
	assert.NoError(t, req.Validate())

	req = SetWeeklyDelayRequest{WeekEndDate: "2025-06-14", EmployeeID: "", DelayDays: -1}
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "week_end_date")
	assert.Contains(t, err.Error(), "employee_id")
	assert.Contains(t, err.Error(), "delay_days")
}
