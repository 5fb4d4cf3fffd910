package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwitchMultiplier(t *testing.T) {
	cases := []struct {
		name string
		prev Multiplier
		kind MultiplierKind
		want Multiplier
	}{
		{"to x1", Multiplier{MultiplierCustom, 2.5}, MultiplierX1, Multiplier{MultiplierX1, 1}},
		{"to x2", DefaultMultiplier(), MultiplierX2, Multiplier{MultiplierX2, 2}},
		{"to x3", DefaultMultiplier(), MultiplierX3, Multiplier{MultiplierX3, 3}},
		{"custom from x1 gets default", DefaultMultiplier(), MultiplierCustom, Multiplier{MultiplierCustom, 1.5}},
		{"custom from unset gets default", Multiplier{}, MultiplierCustom, Multiplier{MultiplierCustom, 1.5}},
		{"custom keeps x2 value", Multiplier{MultiplierX2, 2}, MultiplierCustom, Multiplier{MultiplierCustom, 2}},
		{"custom keeps custom value", Multiplier{MultiplierCustom, 2.5}, MultiplierCustom, Multiplier{MultiplierCustom, 2.5}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := SwitchMultiplier(c.prev, c.kind)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestSwitchMultiplier_UnknownKind(t *testing.T) {
	prev := Multiplier{MultiplierX2, 2}
	got, err := SwitchMultiplier(prev, "x4")
	assert.ErrorIs(t, err, ErrInvalidMultiplier)
	assert.Equal(t, prev, got)
}

func TestMultiplier_WithCustomValue(t *testing.T) {
	m, err := Multiplier{MultiplierCustom, 1.5}.WithCustomValue(1.75)
	require.NoError(t, err)
	assert.Equal(t, 1.75, m.Factor())

	_, err = DefaultMultiplier().WithCustomValue(2)
	assert.ErrorIs(t, err, ErrMultiplierNotCustom)

	_, err = Multiplier{MultiplierCustom, 1.5}.WithCustomValue(0)
	assert.ErrorIs(t, err, ErrInvalidMultiplier)
}

func TestMultiplier_Label(t *testing.T) {
	assert.Equal(t, "x1", DefaultMultiplier().Label())
	assert.Equal(t, "x1", Multiplier{}.Label())
	assert.Equal(t, "x3", Multiplier{MultiplierX3, 3}.Label())
	assert.Equal(t, "1.5 (Custom)", Multiplier{MultiplierCustom, 1.5}.Label())
}

func TestMultiplier_Factor(t *testing.T) {
	assert.Equal(t, 1.0, Multiplier{}.Factor())
	assert.Equal(t, 2.0, Multiplier{MultiplierX2, 2}.Factor())
}
