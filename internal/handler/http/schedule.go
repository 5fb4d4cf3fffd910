package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/brown009872/payroll-app/internal/domain/schedule"
	"github.com/brown009872/payroll-app/internal/handler/http/middleware"
	"github.com/brown009872/payroll-app/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ScheduleHandler interface {
	GetWeek(w http.ResponseWriter, r *http.Request)
	Toggle(w http.ResponseWriter, r *http.Request)

	// Quick assign board
	Select(w http.ResponseWriter, r *http.Request)
	ClearSelection(w http.ResponseWriter, r *http.Request)
	ClickCell(w http.ResponseWriter, r *http.Request)
	StartDrag(w http.ResponseWriter, r *http.Request)
	Drop(w http.ResponseWriter, r *http.Request)
	RemoveAssignment(w http.ResponseWriter, r *http.Request)

	// Custom shift
	EnableCustomShift(w http.ResponseWriter, r *http.Request)
	SetCustomShiftTimes(w http.ResponseWriter, r *http.Request)
	DisableCustomShift(w http.ResponseWriter, r *http.Request)

	// Week rows
	AddRow(w http.ResponseWriter, r *http.Request)
	RemoveRow(w http.ResponseWriter, r *http.Request)
	ResetWeek(w http.ResponseWriter, r *http.Request)

	ExportWeek(w http.ResponseWriter, r *http.Request)
	ExportWeekXLSX(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

// GetWeek implements ScheduleHandler
func (h *scheduleHandlerImpl) GetWeek(w http.ResponseWriter, r *http.Request) {
	result, err := h.scheduleService.GetWeek(r.Context(), middleware.SessionID(r.Context()), anchorParam(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Toggle implements ScheduleHandler
func (h *scheduleHandlerImpl) Toggle(w http.ResponseWriter, r *http.Request) {
	var req schedule.ToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.scheduleService.Toggle(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Select implements ScheduleHandler
func (h *scheduleHandlerImpl) Select(w http.ResponseWriter, r *http.Request) {
	var req schedule.SelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.scheduleService.Select(r.Context(), middleware.SessionID(r.Context()), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee selected", map[string]string{"employee_id": req.EmployeeID})
}

// ClearSelection implements ScheduleHandler
func (h *scheduleHandlerImpl) ClearSelection(w http.ResponseWriter, r *http.Request) {
	h.scheduleService.ClearSelection(r.Context(), middleware.SessionID(r.Context()))
	response.SuccessWithMessage(w, "Selection cleared", nil)
}

// ClickCell implements ScheduleHandler
func (h *scheduleHandlerImpl) ClickCell(w http.ResponseWriter, r *http.Request) {
	var req schedule.ClickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.scheduleService.ClickCell(r.Context(), middleware.SessionID(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// StartDrag implements ScheduleHandler
func (h *scheduleHandlerImpl) StartDrag(w http.ResponseWriter, r *http.Request) {
	var req schedule.DragStartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.scheduleService.StartDrag(r.Context(), middleware.SessionID(r.Context()), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Drag started", nil)
}

// Drop implements ScheduleHandler
func (h *scheduleHandlerImpl) Drop(w http.ResponseWriter, r *http.Request) {
	var req schedule.DropRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.scheduleService.Drop(r.Context(), middleware.SessionID(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// RemoveAssignment implements ScheduleHandler
func (h *scheduleHandlerImpl) RemoveAssignment(w http.ResponseWriter, r *http.Request) {
	var req schedule.RemoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.scheduleService.RemoveAssignment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// EnableCustomShift implements ScheduleHandler
func (h *scheduleHandlerImpl) EnableCustomShift(w http.ResponseWriter, r *http.Request) {
	var req schedule.CustomShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.scheduleService.EnableCustomShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SetCustomShiftTimes implements ScheduleHandler
func (h *scheduleHandlerImpl) SetCustomShiftTimes(w http.ResponseWriter, r *http.Request) {
	var req schedule.CustomShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.scheduleService.SetCustomShiftTimes(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DisableCustomShift implements ScheduleHandler
func (h *scheduleHandlerImpl) DisableCustomShift(w http.ResponseWriter, r *http.Request) {
	var req schedule.CustomShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.scheduleService.DisableCustomShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AddRow implements ScheduleHandler
func (h *scheduleHandlerImpl) AddRow(w http.ResponseWriter, r *http.Request) {
	var req schedule.AddRowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.scheduleService.AddRow(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee added to week", result)
}

// RemoveRow implements ScheduleHandler
func (h *scheduleHandlerImpl) RemoveRow(w http.ResponseWriter, r *http.Request) {
	req := schedule.RemoveRowRequest{
		EmployeeID: chi.URLParam(r, "employeeID"),
		Anchor:     anchorParam(r),
		Confirm:    getBoolQueryParam(r, "confirm", false),
	}

	removed, err := h.scheduleService.RemoveRow(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, fmt.Sprintf("Removed %d schedule entries", removed), map[string]int{"removed": removed})
}

// ResetWeek implements ScheduleHandler
func (h *scheduleHandlerImpl) ResetWeek(w http.ResponseWriter, r *http.Request) {
	var req schedule.ResetWeekRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	removed, err := h.scheduleService.ResetWeek(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, fmt.Sprintf("Removed %d schedule entries", removed), map[string]int{"removed": removed})
}

// ExportWeek implements ScheduleHandler
func (h *scheduleHandlerImpl) ExportWeek(w http.ResponseWriter, r *http.Request) {
	result, err := h.scheduleService.ExportWeek(r.Context(), anchorParam(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportWeekXLSX implements ScheduleHandler
func (h *scheduleHandlerImpl) ExportWeekXLSX(w http.ResponseWriter, r *http.Request) {
	anchor := anchorParam(r)
	sendFile(w, contentTypeXLSX, "schedule_"+anchor+".xlsx", func(out io.Writer) error {
		return h.scheduleService.ExportWeekXLSX(r.Context(), anchor, out)
	})
}
