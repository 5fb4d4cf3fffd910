package schedule

import (
	"sort"

	"github.com/brown009872/payroll-app/internal/domain/employee"
)

// Directory resolves employee ids for the board.
type Directory interface {
	Get(id string) (employee.Employee, bool)
	All() []employee.Employee
}

type Card struct {
	EmployeeID  string       `json:"employee_id"`
	Name        string       `json:"name"`
	Color       string       `json:"color"`
	Deleted     bool         `json:"deleted,omitempty"`
	CustomShift *CustomShift `json:"custom_shift,omitempty"`
}

// DayBoard is one column of the quick-assign board.
type DayBoard struct {
	Date      string   `json:"date"`
	Morning   []Card   `json:"morning"`
	Afternoon []Card   `json:"afternoon"`
	OnLeave   []string `json:"on_leave"`
}

type RowCell struct {
	Date        string       `json:"date"`
	Morning     bool         `json:"morning"`
	Evening     bool         `json:"evening"`
	MorningNew  bool         `json:"morning_new"`
	EveningNew  bool         `json:"evening_new"`
	CustomShift *CustomShift `json:"custom_shift,omitempty"`
	OnLeave     bool         `json:"on_leave"`
}

// Row is one employee line of the weekly checkbox table.
type Row struct {
	EmployeeID string     `json:"employee_id"`
	Name       string     `json:"name"`
	Deleted    bool       `json:"deleted,omitempty"`
	Cells      [7]RowCell `json:"cells"`
}

type WeekView struct {
	WeekStart string      `json:"week_start"`
	WeekEnd   string      `json:"week_end"`
	Days      [7]string   `json:"days"`
	Rows      []Row       `json:"rows"`
	Board     [7]DayBoard `json:"board"`
	Selected  *string     `json:"selected_employee_id"`
}

// DayExport lists who works the morning and the afternoon of a day.
type DayExport struct {
	Date      string   `json:"date"`
	Morning   []string `json:"morning"`
	Afternoon []string `json:"afternoon"`
}

// BuildWeekView derives the weekly table and the board from the grid.
func BuildWeekView(g Grid, days [7]string, dir Directory, selected string) WeekView {
	view := WeekView{WeekStart: days[0], WeekEnd: days[6], Days: days}
	if selected != "" {
		view.Selected = &selected
	}

	for _, id := range EmployeesInWeek(g, days) {
		emp, known := dir.Get(id)
		row := Row{EmployeeID: id, Name: nameOf(emp, known), Deleted: !known}
		for i, d := range days {
			cell := RowCell{Date: d, OnLeave: known && emp.IsOnLeave(d)}
			if e, ok := g[Key{Date: d, EmployeeID: id}]; ok {
				cell.Morning = e.Slots.Has(SlotMorning)
				cell.Evening = e.Slots.Has(SlotEvening)
				cell.MorningNew = e.Slots.Has(SlotMorningNew)
				cell.EveningNew = e.Slots.Has(SlotEveningNew)
				cell.CustomShift = e.CustomShift
			}
			row.Cells[i] = cell
		}
		view.Rows = append(view.Rows, row)
	}
	sort.SliceStable(view.Rows, func(i, j int) bool {
		if view.Rows[i].Deleted != view.Rows[j].Deleted {
			return !view.Rows[i].Deleted
		}
		return view.Rows[i].Name < view.Rows[j].Name
	})

	all := dir.All()
	for i, d := range days {
		board := DayBoard{Date: d, Morning: []Card{}, Afternoon: []Card{}, OnLeave: []string{}}
		for _, emp := range all {
			if emp.Status == employee.StatusActive && emp.IsOnLeave(d) {
				board.OnLeave = append(board.OnLeave, emp.FullName)
			}
		}
		for _, id := range boardOrder(g, d, all) {
			e := g[Key{Date: d, EmployeeID: id}]
			emp, known := dir.Get(id)
			card := Card{EmployeeID: id, Name: nameOf(emp, known), Deleted: !known, CustomShift: e.CustomShift}
			if known {
				card.Color = emp.DisplayColor().ID
			}
			if e.Slots.Has(SlotMorning) {
				board.Morning = append(board.Morning, card)
			}
			if e.Slots.Has(SlotEvening) {
				board.Afternoon = append(board.Afternoon, card)
			}
		}
		view.Board[i] = board
	}

	return view
}

// Export lists, per day, the names on the morning and afternoon shifts.
func Export(g Grid, days [7]string, dir Directory) []DayExport {
	all := dir.All()
	out := make([]DayExport, 0, len(days))
	for _, d := range days {
		day := DayExport{Date: d, Morning: []string{}, Afternoon: []string{}}
		for _, id := range boardOrder(g, d, all) {
			e := g[Key{Date: d, EmployeeID: id}]
			emp, known := dir.Get(id)
			name := nameOf(emp, known)
			if e.Slots.Has(SlotMorning) {
				day.Morning = append(day.Morning, name)
			}
			if e.Slots.Has(SlotEvening) {
				day.Afternoon = append(day.Afternoon, name)
			}
		}
		out = append(out, day)
	}
	return out
}

// boardOrder returns the employees with an entry on date: known employees in
// directory order first, then unknown ids sorted.
func boardOrder(g Grid, date string, all []employee.Employee) []string {
	var ids []string
	known := make(map[string]struct{}, len(all))
	for _, emp := range all {
		known[emp.ID] = struct{}{}
		if _, ok := g[Key{Date: date, EmployeeID: emp.ID}]; ok {
			ids = append(ids, emp.ID)
		}
	}
	var orphans []string
	for key := range g {
		if key.Date != date {
			continue
		}
		if _, ok := known[key.EmployeeID]; !ok {
			orphans = append(orphans, key.EmployeeID)
		}
	}
	sort.Strings(orphans)
	return append(ids, orphans...)
}

func nameOf(emp employee.Employee, known bool) string {
	if !known {
		return employee.DeletedPlaceholder
	}
	return emp.FullName
}
