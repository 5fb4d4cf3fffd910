package schedule

import (
	"encoding/json"
	"fmt"
	"time"
)

// Slot is one of the four independent shift checkboxes of a day.
type Slot uint8

const (
	SlotMorning Slot = 1 << iota
	SlotEvening
	SlotMorningNew
	SlotEveningNew
)

var allSlots = []Slot{SlotMorning, SlotEvening, SlotMorningNew, SlotEveningNew}

func (s Slot) String() string {
	switch s {
	case SlotMorning:
		return "morning"
	case SlotEvening:
		return "evening"
	case SlotMorningNew:
		return "morning_new"
	case SlotEveningNew:
		return "evening_new"
	}
	return fmt.Sprintf("slot(%d)", uint8(s))
}

// ParseSlot accepts a slot name, or a board zone ("afternoon" is the evening slot).
func ParseSlot(name string) (Slot, error) {
	switch name {
	case "morning":
		return SlotMorning, nil
	case "evening", "afternoon":
		return SlotEvening, nil
	case "morning_new", "morningNew":
		return SlotMorningNew, nil
	case "evening_new", "eveningNew":
		return SlotEveningNew, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSlot, name)
}

// SlotSet is the set of slots an employee works on a day.
type SlotSet uint8

func (s SlotSet) Has(slot Slot) bool       { return s&SlotSet(slot) != 0 }
func (s SlotSet) With(slot Slot) SlotSet    { return s | SlotSet(slot) }
func (s SlotSet) Without(slot Slot) SlotSet { return s &^ SlotSet(slot) }
func (s SlotSet) Toggle(slot Slot) SlotSet  { return s ^ SlotSet(slot) }
func (s SlotSet) Empty() bool               { return s == 0 }

// Slots lists the members in a fixed order.
func (s SlotSet) Slots() []Slot {
	var out []Slot
	for _, slot := range allSlots {
		if s.Has(slot) {
			out = append(out, slot)
		}
	}
	return out
}

// CustomShift overrides the working hours of a day.
type CustomShift struct {
	Enabled   bool   `json:"enabled"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

const (
	DefaultShiftStart = "10:00"
	DefaultShiftEnd   = "22:00"
)

// Key identifies an entry: one per employee per date.
type Key struct {
	Date       string
	EmployeeID string
}

type Entry struct {
	ID          string
	Date        string
	EmployeeID  string
	Slots       SlotSet
	CustomShift *CustomShift
	UpdatedAt   time.Time
}

func NewEntry(date, employeeID string) Entry {
	return Entry{Date: date, EmployeeID: employeeID}
}

func (e Entry) Key() Key {
	return Key{Date: e.Date, EmployeeID: e.EmployeeID}
}

// Clone returns a copy that shares no pointers with e.
func (e Entry) Clone() Entry {
	if e.CustomShift != nil {
		cs := *e.CustomShift
		e.CustomShift = &cs
	}
	return e
}

type entryJSON struct {
	ID          string       `json:"id"`
	Date        string       `json:"date"`
	EmployeeID  string       `json:"employee_id"`
	Morning     bool         `json:"morning"`
	Evening     bool         `json:"evening"`
	MorningNew  bool         `json:"morning_new"`
	EveningNew  bool         `json:"evening_new"`
	CustomShift *CustomShift `json:"custom_shift,omitempty"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(entryJSON{
		ID:          e.ID,
		Date:        e.Date,
		EmployeeID:  e.EmployeeID,
		Morning:     e.Slots.Has(SlotMorning),
		Evening:     e.Slots.Has(SlotEvening),
		MorningNew:  e.Slots.Has(SlotMorningNew),
		EveningNew:  e.Slots.Has(SlotEveningNew),
		CustomShift: e.CustomShift,
		UpdatedAt:   e.UpdatedAt,
	})
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	var w entryJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*e = Entry{
		ID:          w.ID,
		Date:        w.Date,
		EmployeeID:  w.EmployeeID,
		Slots:       SlotsOf(w.Morning, w.Evening, w.MorningNew, w.EveningNew),
		CustomShift: w.CustomShift,
		UpdatedAt:   w.UpdatedAt,
	}
	return nil
}

// SlotsOf builds a set from the four checkbox values.
func SlotsOf(morning, evening, morningNew, eveningNew bool) SlotSet {
	var s SlotSet
	if morning {
		s = s.With(SlotMorning)
	}
	if evening {
		s = s.With(SlotEvening)
	}
	if morningNew {
		s = s.With(SlotMorningNew)
	}
	if eveningNew {
		s = s.With(SlotEveningNew)
	}
	return s
}

// Grid holds every schedule entry by key.
type Grid map[Key]Entry

// Clone returns a deep copy of g.
func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	for k, e := range g {
		c[k] = e.Clone()
	}
	return c
}
