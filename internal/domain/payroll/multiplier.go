package payroll

import (
	"fmt"
	"strconv"
)

type MultiplierKind string

const (
	MultiplierX1     MultiplierKind = "x1"
	MultiplierX2     MultiplierKind = "x2"
	MultiplierX3     MultiplierKind = "x3"
	MultiplierCustom MultiplierKind = "custom"
)

var MultiplierKindValues = []string{
	string(MultiplierX1),
	string(MultiplierX2),
	string(MultiplierX3),
	string(MultiplierCustom),
}

// DefaultCustomMultiplier is offered when switching to a custom multiplier
// with no usable previous value.
const DefaultCustomMultiplier = 1.5

// Multiplier is the holiday pay factor of a working day.
type Multiplier struct {
	Kind  MultiplierKind `json:"type"`
	Value float64        `json:"value"`
}

func DefaultMultiplier() Multiplier {
	return Multiplier{Kind: MultiplierX1, Value: 1}
}

// Factor is the value used in pay calculations; unset means 1.
func (m Multiplier) Factor() float64 {
	if m.Value <= 0 {
		return 1
	}
	return m.Value
}

// Label is the human form used in exports: "x2", or "1.5 (Custom)".
func (m Multiplier) Label() string {
	if m.Kind == MultiplierCustom {
		return strconv.FormatFloat(m.Factor(), 'f', -1, 64) + " (Custom)"
	}
	if m.Kind == "" {
		return string(MultiplierX1)
	}
	return string(m.Kind)
}

// SwitchMultiplier is the only transition between multiplier kinds.
// Fixed kinds carry their own value. Switching to custom keeps the previous
// value unless it is unset or exactly 1, in which case it becomes 1.5.
func SwitchMultiplier(prev Multiplier, kind MultiplierKind) (Multiplier, error) {
	switch kind {
	case MultiplierX1:
		return Multiplier{Kind: kind, Value: 1}, nil
	case MultiplierX2:
		return Multiplier{Kind: kind, Value: 2}, nil
	case MultiplierX3:
		return Multiplier{Kind: kind, Value: 3}, nil
	case MultiplierCustom:
		value := prev.Value
		if value <= 0 || value == 1 {
			value = DefaultCustomMultiplier
		}
		return Multiplier{Kind: kind, Value: value}, nil
	default:
		return prev, fmt.Errorf("%w: %q", ErrInvalidMultiplier, kind)
	}
}

// WithCustomValue sets the factor of a custom multiplier.
func (m Multiplier) WithCustomValue(value float64) (Multiplier, error) {
	if m.Kind != MultiplierCustom {
		return m, ErrMultiplierNotCustom
	}
	if value <= 0 {
		return m, ErrInvalidMultiplier
	}
	m.Value = value
	return m, nil
}
