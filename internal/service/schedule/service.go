package schedule

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/brown009872/payroll-app/internal/domain/schedule"
	"github.com/brown009872/payroll-app/internal/pkg/export"
	"github.com/brown009872/payroll-app/internal/pkg/utils"
	"github.com/brown009872/payroll-app/internal/pkg/validator"
	"github.com/brown009872/payroll-app/internal/store"
)

// DefaultSession is used by clients that send no session id.
const DefaultSession = "default"

type scheduleServiceImpl struct {
	store    *store.Store
	sessions *schedule.SessionRegistry
	logger   *slog.Logger
}

func NewScheduleService(st *store.Store, sessions *schedule.SessionRegistry, logger *slog.Logger) schedule.ScheduleService {
	if sessions == nil {
		sessions = schedule.NewSessionRegistry()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &scheduleServiceImpl{store: st, sessions: sessions, logger: logger}
}

func (s *scheduleServiceImpl) session(id string) *schedule.Session {
	if id == "" {
		id = DefaultSession
	}
	return s.sessions.Get(id)
}

func (s *scheduleServiceImpl) dispatch(ctx context.Context, name string, m store.Mutation) error {
	p, err := s.store.Dispatch(name, m)
	if err != nil {
		return err
	}
	return store.Settle(ctx, p)
}

// scratch copies the entries of keys out of the state so the grid functions
// can work on them without touching the published state.
func scratch(st *store.State, keys ...schedule.Key) schedule.Grid {
	g := make(schedule.Grid, len(keys))
	for _, k := range keys {
		if e, ok := st.Schedules[k]; ok {
			g[k] = e.Clone()
		}
	}
	return g
}

func weekDays(anchor string) ([7]string, error) {
	days, err := utils.WeekDays(anchor)
	if err != nil {
		var errs validator.ValidationErrors
		errs.Add("anchor", "anchor must be in YYYY-MM-DD format")
		return days, errs.Err()
	}
	return days, nil
}

func requireEmployee(st *store.State, id string) error {
	if _, ok := st.Employee(id); !ok {
		return schedule.ErrEmployeeNotFound
	}
	return nil
}

// GetWeek implements schedule.ScheduleService.
func (s *scheduleServiceImpl) GetWeek(ctx context.Context, sessionID, anchor string) (schedule.WeekView, error) {
	days, err := weekDays(anchor)
	if err != nil {
		return schedule.WeekView{}, err
	}
	selected, _ := s.session(sessionID).Selected()
	st := s.store.Snapshot()
	return schedule.BuildWeekView(st.Schedules, days, st.Directory(), selected), nil
}

// ExportWeek implements schedule.ScheduleService.
func (s *scheduleServiceImpl) ExportWeek(ctx context.Context, anchor string) ([]schedule.DayExport, error) {
	days, err := weekDays(anchor)
	if err != nil {
		return nil, err
	}
	st := s.store.Snapshot()
	return schedule.Export(st.Schedules, days, st.Directory()), nil
}

// ExportWeekXLSX implements schedule.ScheduleService.
func (s *scheduleServiceImpl) ExportWeekXLSX(ctx context.Context, anchor string, w io.Writer) error {
	out, err := s.ExportWeek(ctx, anchor)
	if err != nil {
		return err
	}
	return export.ScheduleXLSX(w, out)
}

// Toggle implements schedule.ScheduleService.
func (s *scheduleServiceImpl) Toggle(ctx context.Context, req schedule.ToggleRequest) (schedule.Entry, error) {
	if err := req.Validate(); err != nil {
		return schedule.Entry{}, err
	}
	slot, _ := schedule.ParseSlot(req.Slot)

	var entry schedule.Entry
	err := s.dispatch(ctx, "schedule.toggle", func(tx *store.Tx) error {
		st := tx.State()
		if err := requireEmployee(st, req.EmployeeID); err != nil {
			return err
		}
		key := schedule.Key{Date: req.Date, EmployeeID: req.EmployeeID}
		g := scratch(st, key)
		// Turning a slot off stays allowed during leave.
		if !g[key].Slots.Has(slot) && st.IsOnLeave(req.EmployeeID, req.Date) {
			return schedule.ErrEmployeeOnLeave
		}
		entry = tx.PutSchedule(schedule.Toggle(g, req.Date, req.EmployeeID, slot))
		return nil
	})
	if errors.Is(err, schedule.ErrEmployeeOnLeave) {
		s.logger.Warn("Placement rejected, employee on leave", "employee_id", req.EmployeeID, "date", req.Date)
	}
	return entry, err
}

// Select implements schedule.ScheduleService.
func (s *scheduleServiceImpl) Select(ctx context.Context, sessionID string, req schedule.SelectRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := requireEmployee(s.store.Snapshot(), req.EmployeeID); err != nil {
		return err
	}
	s.session(sessionID).Select(req.EmployeeID)
	return nil
}

// ClearSelection implements schedule.ScheduleService.
func (s *scheduleServiceImpl) ClearSelection(ctx context.Context, sessionID string) {
	s.session(sessionID).Clear()
}

// ClickCell implements schedule.ScheduleService.
func (s *scheduleServiceImpl) ClickCell(ctx context.Context, sessionID string, req schedule.ClickRequest) (schedule.PlacementResult, error) {
	if err := req.Validate(); err != nil {
		return schedule.PlacementResult{}, err
	}
	employeeID, ok := s.session(sessionID).Selected()
	if !ok {
		return schedule.PlacementResult{}, nil
	}
	slot, _ := schedule.ParseSlot(req.Zone)

	var entry schedule.Entry
	err := s.dispatch(ctx, "schedule.click_cell", func(tx *store.Tx) error {
		st := tx.State()
		if err := requireEmployee(st, employeeID); err != nil {
			return err
		}
		if st.IsOnLeave(employeeID, req.Date) {
			return schedule.ErrEmployeeOnLeave
		}
		g := scratch(st, schedule.Key{Date: req.Date, EmployeeID: employeeID})
		entry = tx.PutSchedule(schedule.Toggle(g, req.Date, employeeID, slot))
		return nil
	})
	if err != nil {
		if errors.Is(err, schedule.ErrEmployeeOnLeave) {
			s.logger.Warn("Placement rejected, employee on leave", "employee_id", employeeID, "date", req.Date)
		}
		return schedule.PlacementResult{}, err
	}
	return schedule.PlacementResult{Applied: true, Entries: []schedule.Entry{entry}}, nil
}

// StartDrag implements schedule.ScheduleService.
func (s *scheduleServiceImpl) StartDrag(ctx context.Context, sessionID string, req schedule.DragStartRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	slot, _ := schedule.ParseSlot(req.FromZone)
	s.session(sessionID).StartDrag(schedule.DragSource{
		EmployeeID: req.EmployeeID,
		FromDate:   req.FromDate,
		FromSlot:   slot,
	})
	return nil
}

// Drop implements schedule.ScheduleService. Both entries of a move are
// applied and persisted as one mutation.
func (s *scheduleServiceImpl) Drop(ctx context.Context, sessionID string, req schedule.DropRequest) (schedule.PlacementResult, error) {
	if err := req.Validate(); err != nil {
		return schedule.PlacementResult{}, err
	}
	src, ok := s.session(sessionID).TakeDrag()
	if !ok {
		return schedule.PlacementResult{}, schedule.ErrNoDragInProgress
	}
	slot, _ := schedule.ParseSlot(req.ToZone)

	var changed []schedule.Entry
	err := s.dispatch(ctx, "schedule.move", func(tx *store.Tx) error {
		st := tx.State()
		g := scratch(st,
			schedule.Key{Date: src.FromDate, EmployeeID: src.EmployeeID},
			schedule.Key{Date: req.ToDate, EmployeeID: src.EmployeeID},
		)
		moved, err := schedule.Move(g, src, req.ToDate, slot, st.IsOnLeave)
		if err != nil {
			return err
		}
		for _, e := range moved {
			changed = append(changed, tx.PutSchedule(e))
		}
		return nil
	})
	if err != nil {
		return schedule.PlacementResult{}, err
	}
	return schedule.PlacementResult{Applied: true, Entries: changed}, nil
}

// RemoveAssignment implements schedule.ScheduleService.
func (s *scheduleServiceImpl) RemoveAssignment(ctx context.Context, req schedule.RemoveRequest) (schedule.PlacementResult, error) {
	if err := req.Validate(); err != nil {
		return schedule.PlacementResult{}, err
	}
	slot, _ := schedule.ParseSlot(req.Zone)

	var result schedule.PlacementResult
	err := s.dispatch(ctx, "schedule.remove", func(tx *store.Tx) error {
		g := scratch(tx.State(), schedule.Key{Date: req.Date, EmployeeID: req.EmployeeID})
		e, ok := schedule.Remove(g, req.Date, req.EmployeeID, slot)
		if !ok {
			return nil
		}
		result = schedule.PlacementResult{Applied: true, Entries: []schedule.Entry{tx.PutSchedule(e)}}
		return nil
	})
	return result, err
}

// EnableCustomShift implements schedule.ScheduleService.
func (s *scheduleServiceImpl) EnableCustomShift(ctx context.Context, req schedule.CustomShiftRequest) (schedule.Entry, error) {
	if err := req.Validate(); err != nil {
		return schedule.Entry{}, err
	}

	var entry schedule.Entry
	err := s.dispatch(ctx, "schedule.custom_shift.enable", func(tx *store.Tx) error {
		st := tx.State()
		if err := requireEmployee(st, req.EmployeeID); err != nil {
			return err
		}
		g := scratch(st, schedule.Key{Date: req.Date, EmployeeID: req.EmployeeID})
		entry = tx.PutSchedule(schedule.EnableCustomShift(g, req.Date, req.EmployeeID))
		return nil
	})
	return entry, err
}

// DisableCustomShift implements schedule.ScheduleService.
func (s *scheduleServiceImpl) DisableCustomShift(ctx context.Context, req schedule.CustomShiftRequest) (schedule.PlacementResult, error) {
	if err := req.Validate(); err != nil {
		return schedule.PlacementResult{}, err
	}

	var result schedule.PlacementResult
	err := s.dispatch(ctx, "schedule.custom_shift.disable", func(tx *store.Tx) error {
		g := scratch(tx.State(), schedule.Key{Date: req.Date, EmployeeID: req.EmployeeID})
		e, ok := schedule.DisableCustomShift(g, req.Date, req.EmployeeID)
		if !ok {
			return nil
		}
		result = schedule.PlacementResult{Applied: true, Entries: []schedule.Entry{tx.PutSchedule(e)}}
		return nil
	})
	return result, err
}

// SetCustomShiftTimes implements schedule.ScheduleService.
func (s *scheduleServiceImpl) SetCustomShiftTimes(ctx context.Context, req schedule.CustomShiftRequest) (schedule.PlacementResult, error) {
	if err := req.Validate(); err != nil {
		return schedule.PlacementResult{}, err
	}

	var result schedule.PlacementResult
	err := s.dispatch(ctx, "schedule.custom_shift.times", func(tx *store.Tx) error {
		g := scratch(tx.State(), schedule.Key{Date: req.Date, EmployeeID: req.EmployeeID})
		e, ok := schedule.SetCustomShiftTimes(g, req.Date, req.EmployeeID, req.StartTime, req.EndTime)
		if !ok {
			return nil
		}
		result = schedule.PlacementResult{Applied: true, Entries: []schedule.Entry{tx.PutSchedule(e)}}
		return nil
	})
	return result, err
}

// AddRow implements schedule.ScheduleService.
func (s *scheduleServiceImpl) AddRow(ctx context.Context, req schedule.AddRowRequest) (schedule.Entry, error) {
	if err := req.Validate(); err != nil {
		return schedule.Entry{}, err
	}
	days, err := weekDays(req.Anchor)
	if err != nil {
		return schedule.Entry{}, err
	}

	var entry schedule.Entry
	err = s.dispatch(ctx, "schedule.add_row", func(tx *store.Tx) error {
		st := tx.State()
		if err := requireEmployee(st, req.EmployeeID); err != nil {
			return err
		}
		keys := make([]schedule.Key, len(days))
		for i, d := range days {
			keys[i] = schedule.Key{Date: d, EmployeeID: req.EmployeeID}
		}
		e, err := schedule.AddRow(scratch(st, keys...), req.EmployeeID, days)
		if err != nil {
			return err
		}
		entry = tx.PutSchedule(e)
		return nil
	})
	return entry, err
}

// RemoveRow implements schedule.ScheduleService.
func (s *scheduleServiceImpl) RemoveRow(ctx context.Context, req schedule.RemoveRowRequest) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}
	if !req.Confirm {
		return 0, schedule.ErrConfirmationRequired
	}
	days, err := weekDays(req.Anchor)
	if err != nil {
		return 0, err
	}

	var removed int
	err = s.dispatch(ctx, "schedule.remove_row", func(tx *store.Tx) error {
		for _, key := range schedule.EmployeeWeekKeys(tx.State().Schedules, req.EmployeeID, days) {
			if tx.DeleteSchedule(key) {
				removed++
			}
		}
		return nil
	})
	return removed, err
}

// ResetWeek implements schedule.ScheduleService.
func (s *scheduleServiceImpl) ResetWeek(ctx context.Context, req schedule.ResetWeekRequest) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}
	if !req.Confirm {
		return 0, schedule.ErrConfirmationRequired
	}
	days, err := weekDays(req.Anchor)
	if err != nil {
		return 0, err
	}

	var removed int
	err = s.dispatch(ctx, "schedule.reset_week", func(tx *store.Tx) error {
		for _, key := range schedule.WeekKeys(tx.State().Schedules, days) {
			if tx.DeleteSchedule(key) {
				removed++
			}
		}
		return nil
	})
	if err == nil {
		s.logger.Info("Week schedule reset", "anchor", req.Anchor, "entries", removed)
	}
	return removed, err
}

// PruneSessions implements schedule.ScheduleService.
func (s *scheduleServiceImpl) PruneSessions(ctx context.Context, maxIdle time.Duration) int {
	return s.sessions.Prune(maxIdle)
}
