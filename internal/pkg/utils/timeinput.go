package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	digitsPattern    = regexp.MustCompile(`^[0-9]+$`)
	clockPattern     = regexp.MustCompile(`^([0-9]{1,2}):([0-9]{2})$`)
	timeCharsPattern = regexp.MustCompile(`^[0-9:]*$`)
)

// NormalizeTimeInput turns loosely typed clock input into canonical "HH:MM".
//
//	"8"    -> "08:00"
//	"830"  -> "08:30"
//	"1730" -> "17:30"
//	"8:05" -> "08:05"
//
// Input that cannot be read as a valid clock time is returned trimmed but
// otherwise unchanged. It never fails.
func NormalizeTimeInput(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	if digitsPattern.MatchString(s) {
		var hourPart, minutePart string
		switch len(s) {
		case 1, 2:
			hourPart, minutePart = s, "00"
		case 3:
			hourPart, minutePart = s[:1], s[1:]
		case 4:
			hourPart, minutePart = s[:2], s[2:]
		default:
			return s
		}
		if out, ok := formatClock(hourPart, minutePart); ok {
			return out
		}
		return s
	}

	if m := clockPattern.FindStringSubmatch(s); m != nil {
		if out, ok := formatClock(m[1], m[2]); ok {
			return out
		}
	}

	return s
}

// ParseClock returns the minutes since midnight of a canonical or loose clock value.
func ParseClock(value string) (int, bool) {
	normalized := NormalizeTimeInput(value)
	m := clockPattern.FindStringSubmatch(normalized)
	if m == nil {
		return 0, false
	}
	h, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	if h > 23 || min > 59 {
		return 0, false
	}
	return h*60 + min, true
}

// IsCanonicalTime reports whether value is already in "HH:MM" form.
func IsCanonicalTime(value string) bool {
	if len(value) != 5 {
		return false
	}
	_, ok := ParseClock(value)
	return ok && NormalizeTimeInput(value) == value
}

func formatClock(hourPart, minutePart string) (string, bool) {
	h, err := strconv.Atoi(hourPart)
	if err != nil || h < 0 || h > 23 {
		return "", false
	}
	m, err := strconv.Atoi(minutePart)
	if err != nil || m < 0 || m > 59 {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d", h, m), true
}

// ShapeTimeKeystroke applies the per-keystroke rules of the time entry field.
// prev is the value before the keystroke and next the value the user produced.
// It returns the value the field should show, or false when the keystroke is
// rejected and prev must stay.
func ShapeTimeKeystroke(prev, next string) (string, bool) {
	if len(next) < len(prev) {
		return next, true
	}
	if !timeCharsPattern.MatchString(next) {
		return prev, false
	}

	value := next
	if !strings.Contains(value, ":") {
		switch {
		case len(value) == 0:
			return value, true
		case len(value) == 1:
			if value[0] >= '3' {
				return "0" + value + ":", true
			}
			return value, true
		case len(value) == 2:
			h, _ := strconv.Atoi(value)
			if h > 23 {
				return prev, false
			}
			return value + ":", true
		default:
			value = value[:2] + ":" + value[2:]
		}
	}

	hourPart, minutePart, _ := strings.Cut(value, ":")
	if len(hourPart) > 2 || strings.Contains(minutePart, ":") {
		return prev, false
	}
	if len(hourPart) == 2 {
		if h, _ := strconv.Atoi(hourPart); h > 23 {
			return prev, false
		}
	}
	if len(minutePart) > 0 && minutePart[0] > '5' {
		return prev, false
	}
	if len(minutePart) > 2 {
		minutePart = minutePart[:2]
	}

	return hourPart + ":" + minutePart, true
}
