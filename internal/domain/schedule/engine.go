package schedule

import (
	"sort"

	"github.com/brown009872/payroll-app/internal/pkg/utils"
)

// LeaveChecker reports whether an employee is on leave on a date.
type LeaveChecker func(employeeID, date string) bool

// DragSource is the card picked up by a drag gesture.
type DragSource struct {
	EmployeeID string
	FromDate   string
	FromSlot   Slot
}

// GetOrCreateEntry returns a copy of the entry for (date, employeeID), or a
// fresh all-false entry when none exists. The grid is not modified.
func GetOrCreateEntry(g Grid, date, employeeID string) Entry {
	if e, ok := g[Key{Date: date, EmployeeID: employeeID}]; ok {
		return e.Clone()
	}
	return NewEntry(date, employeeID)
}

// Toggle flips one slot, creating the entry first if needed.
// Toggling the same slot twice restores the original slots.
func Toggle(g Grid, date, employeeID string, slot Slot) Entry {
	e := GetOrCreateEntry(g, date, employeeID)
	e.Slots = e.Slots.Toggle(slot)
	g[e.Key()] = e
	return e
}

// Move clears the source slot (when the source entry exists) and sets the
// destination slot. Leave is checked on the destination date only. On error
// the grid is left untouched.
func Move(g Grid, src DragSource, toDate string, toSlot Slot, onLeave LeaveChecker) ([]Entry, error) {
	if onLeave != nil && onLeave(src.EmployeeID, toDate) {
		return nil, ErrEmployeeOnLeave
	}

	var changed []Entry
	srcKey := Key{Date: src.FromDate, EmployeeID: src.EmployeeID}
	if e, ok := g[srcKey]; ok {
		e = e.Clone()
		e.Slots = e.Slots.Without(src.FromSlot)
		g[srcKey] = e
		changed = append(changed, e)
	}

	dst := GetOrCreateEntry(g, toDate, src.EmployeeID)
	dst.Slots = dst.Slots.With(toSlot)
	g[dst.Key()] = dst

	if len(changed) == 1 && changed[0].Key() == dst.Key() {
		changed[0] = dst
	} else {
		changed = append(changed, dst)
	}
	return changed, nil
}

// Remove clears one slot. It is a no-op when the entry does not exist.
func Remove(g Grid, date, employeeID string, slot Slot) (Entry, bool) {
	key := Key{Date: date, EmployeeID: employeeID}
	e, ok := g[key]
	if !ok {
		return Entry{}, false
	}
	e = e.Clone()
	e.Slots = e.Slots.Without(slot)
	g[key] = e
	return e, true
}

// EnableCustomShift turns the custom shift on with the default 10:00-22:00 hours.
func EnableCustomShift(g Grid, date, employeeID string) Entry {
	e := GetOrCreateEntry(g, date, employeeID)
	e.CustomShift = &CustomShift{Enabled: true, StartTime: DefaultShiftStart, EndTime: DefaultShiftEnd}
	g[e.Key()] = e
	return e
}

// DisableCustomShift turns the custom shift off and keeps its hours.
// It is a no-op when the entry does not exist.
func DisableCustomShift(g Grid, date, employeeID string) (Entry, bool) {
	key := Key{Date: date, EmployeeID: employeeID}
	e, ok := g[key]
	if !ok {
		return Entry{}, false
	}
	e = e.Clone()
	if e.CustomShift == nil {
		e.CustomShift = &CustomShift{}
	}
	e.CustomShift.Enabled = false
	g[key] = e
	return e, true
}

// SetCustomShiftTimes changes the custom shift hours. Nil values keep the
// current hour. It only applies to an entry that already has a custom shift.
func SetCustomShiftTimes(g Grid, date, employeeID string, start, end *string) (Entry, bool) {
	key := Key{Date: date, EmployeeID: employeeID}
	e, ok := g[key]
	if !ok || e.CustomShift == nil {
		return Entry{}, false
	}
	e = e.Clone()
	if start != nil {
		e.CustomShift.StartTime = utils.NormalizeTimeInput(*start)
	}
	if end != nil {
		e.CustomShift.EndTime = utils.NormalizeTimeInput(*end)
	}
	g[key] = e
	return e, true
}

// EmployeesInWeek returns, sorted, the employees with at least one entry on days.
func EmployeesInWeek(g Grid, days [7]string) []string {
	seen := make(map[string]struct{})
	for key := range g {
		if inWeek(key.Date, days) {
			seen[key.EmployeeID] = struct{}{}
		}
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// WeekKeys returns the keys of every entry on days, for every employee that
// has one, sorted by date then employee.
func WeekKeys(g Grid, days [7]string) []Key {
	var keys []Key
	for _, id := range EmployeesInWeek(g, days) {
		keys = append(keys, EmployeeWeekKeys(g, id, days)...)
	}
	sortKeys(keys)
	return keys
}

// EmployeeWeekKeys returns the keys of one employee's entries on days.
func EmployeeWeekKeys(g Grid, employeeID string, days [7]string) []Key {
	var keys []Key
	for _, d := range days {
		key := Key{Date: d, EmployeeID: employeeID}
		if _, ok := g[key]; ok {
			keys = append(keys, key)
		}
	}
	return keys
}

// DeleteKeys removes keys from the grid.
func DeleteKeys(g Grid, keys []Key) {
	for _, k := range keys {
		delete(g, k)
	}
}

// AddRow anchors an employee in a week by creating an empty entry on the
// week's Monday. It fails when the employee already has an entry that week.
func AddRow(g Grid, employeeID string, days [7]string) (Entry, error) {
	if len(EmployeeWeekKeys(g, employeeID, days)) > 0 {
		return Entry{}, ErrAlreadyInWeek
	}
	e := NewEntry(days[0], employeeID)
	g[e.Key()] = e
	return e, nil
}

func inWeek(date string, days [7]string) bool {
	return date >= days[0] && date <= days[6]
}

func sortKeys(keys []Key) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Date != keys[j].Date {
			return keys[i].Date < keys[j].Date
		}
		return keys[i].EmployeeID < keys[j].EmployeeID
	})
}
