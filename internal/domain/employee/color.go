package employee

import "unicode/utf16"

type Color struct {
	ID  string `json:"id"`
	Hex string `json:"hex"`
}

// Palette lists the colors an employee card can be given.
var Palette = []Color{
	{ID: "blue", Hex: "#DBEAFE"},
	{ID: "green", Hex: "#DCFCE7"},
	{ID: "purple", Hex: "#F3E8FF"},
	{ID: "pink", Hex: "#FCE7F3"},
	{ID: "yellow", Hex: "#FEF9C3"},
	{ID: "orange", Hex: "#FFEDD5"},
	{ID: "teal", Hex: "#CCFBF1"},
	{ID: "indigo", Hex: "#E0E7FF"},
	{ID: "rose", Hex: "#FFE4E6"},
	{ID: "cyan", Hex: "#CFFAFE"},
}

// fallbackColors is the subset used when no color was picked.
const fallbackColors = 5

func IsValidColor(id string) bool {
	for _, c := range Palette {
		if c.ID == id {
			return true
		}
	}
	return false
}

// DisplayColor returns the picked color, or one derived from the full name
// so the same person always gets the same card color.
func (e Employee) DisplayColor() Color {
	if e.Color != nil {
		for _, c := range Palette {
			if c.ID == *e.Color {
				return c
			}
		}
	}

	var hash int32
	for _, unit := range utf16.Encode([]rune(e.FullName)) {
		hash = int32(unit) + ((hash << 5) - hash)
	}
	idx := int(hash) % fallbackColors
	if idx < 0 {
		idx = -idx
	}
	return Palette[idx]
}
