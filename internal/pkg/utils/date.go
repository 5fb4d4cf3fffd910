package utils

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used for every stored date.
const DateLayout = "2006-01-02"

func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the current local calendar date.
func Today() string {
	return time.Now().Format(DateLayout)
}

// AddDays moves date by n calendar days. Month and year rollover is handled
// by the calendar, so "2025-01-30" + 3 is "2025-02-02".
func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	y, m, d := t.Date()
	return FormatDate(time.Date(y, m, d+n, 0, 0, 0, 0, time.UTC)), nil
}

// WeekStart returns the Monday of the week containing anchor.
// Sunday belongs to the week that started six days earlier.
func WeekStart(anchor string) (string, error) {
	t, err := ParseDate(anchor)
	if err != nil {
		return "", err
	}
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.Date()
	return FormatDate(time.Date(y, m, d-offset, 0, 0, 0, 0, time.UTC)), nil
}

// WeekDays returns the seven dates, Monday first, of the week containing anchor.
func WeekDays(anchor string) ([7]string, error) {
	var days [7]string
	start, err := WeekStart(anchor)
	if err != nil {
		return days, err
	}
	for i := range days {
		days[i], _ = AddDays(start, i)
	}
	return days, nil
}

// IsDateBetween reports start <= date <= end on "YYYY-MM-DD" strings.
// An empty bound never matches.
func IsDateBetween(date, start, end string) bool {
	if start == "" || end == "" {
		return false
	}
	return start <= date && date <= end
}

// DaysBetween counts calendar days from start to end, end exclusive.
func DaysBetween(start, end string) (int, error) {
	s, err := ParseDate(start)
	if err != nil {
		return 0, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return 0, err
	}
	return int(e.Sub(s).Hours() / 24), nil
}

// MonthRange returns the first and last date of a calendar month.
func MonthRange(year int, month time.Month) (string, string) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return FormatDate(first), FormatDate(last)
}

// Weekday returns the weekday of a "YYYY-MM-DD" date.
func Weekday(date string) (time.Weekday, error) {
	t, err := ParseDate(date)
	if err != nil {
		return 0, err
	}
	return t.Weekday(), nil
}

// FormatDisplayDate renders "YYYY-MM-DD" as "dd/MM/yyyy". Unparseable input
// is returned unchanged.
func FormatDisplayDate(date string) string {
	t, err := ParseDate(date)
	if err != nil {
		return date
	}
	return t.Format("02/01/2006")
}
