package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddDays(t *testing.T) {
	cases := []struct {
		date string
		n    int
		want string
	}{
		{"2025-01-30", 3, "2025-02-02"},
		{"2024-02-28", 1, "2024-02-29"},
		{"2025-12-31", 1, "2026-01-01"},
		{"2025-03-01", -1, "2025-02-28"},
		{"2025-06-15", 0, "2025-06-15"},
	}
	for _, c := range cases {
		got, err := AddDays(c.date, c.n)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "AddDays(%q, %d)", c.date, c.n)
	}

	_, err := AddDays("30/01/2025", 1)
	assert.Error(t, err)
}

func TestWeekDays(t *testing.T) {
	// 2025-06-11 is a Wednesday.
	days, err := WeekDays("2025-06-11")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-09", days[0])
	assert.Equal(t, "2025-06-15", days[6])

	// Sunday belongs to the week starting the previous Monday.
	days, err = WeekDays("2025-06-15")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-09", days[0])

	days, err = WeekDays("2025-06-09")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-09", days[0])
	assert.Equal(t, "2025-06-15", days[6])
}

func TestIsDateBetween(t *testing.T) {
	assert.True(t, IsDateBetween("2025-06-10", "2025-06-10", "2025-06-12"))
	assert.True(t, IsDateBetween("2025-06-12", "2025-06-10", "2025-06-12"))
	assert.False(t, IsDateBetween("2025-06-13", "2025-06-10", "2025-06-12"))
	assert.False(t, IsDateBetween("2025-06-10", "", "2025-06-12"))
	assert.False(t, IsDateBetween("2025-06-10", "2025-06-10", ""))
}

func TestMonthRange(t *testing.T) {
	first, last := MonthRange(2024, time.February)
	assert.Equal(t, "2024-02-01", first)
	assert.Equal(t, "2024-02-29", last)
}

func TestDaysBetween(t *testing.T) {
	n, err := DaysBetween("2025-01-30", "2025-02-02")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestFormatDisplayDate(t *testing.T) {
	assert.Equal(t, "09/06/2025", FormatDisplayDate("2025-06-09"))
	assert.Equal(t, "not-a-date", FormatDisplayDate("not-a-date"))
}
