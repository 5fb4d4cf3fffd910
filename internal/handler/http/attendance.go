package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/brown009872/payroll-app/internal/domain/attendance"
	"github.com/brown009872/payroll-app/internal/handler/http/response"
	"github.com/brown009872/payroll-app/internal/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	GetDailySheet(w http.ResponseWriter, r *http.Request)
	UpdateRecord(w http.ResponseWriter, r *http.Request)
	DeleteRecord(w http.ResponseWriter, r *http.Request)
	ClearDay(w http.ResponseWriter, r *http.Request)
	ClearEmployeeWeek(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// GetDailySheet implements AttendanceHandler
func (h *attendanceHandlerImpl) GetDailySheet(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = utils.Today()
	}

	result, err := h.attendanceService.GetDailySheet(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateRecord implements AttendanceHandler
func (h *attendanceHandlerImpl) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpdateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.Date = chi.URLParam(r, "date")
	req.EmployeeID = chi.URLParam(r, "employeeID")

	result, err := h.attendanceService.UpdateRecord(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated", result)
}

// DeleteRecord implements AttendanceHandler
func (h *attendanceHandlerImpl) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	employeeID := chi.URLParam(r, "employeeID")

	if err := h.attendanceService.DeleteRecord(r.Context(), date, employeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record deleted", nil)
}

// ClearDay implements AttendanceHandler
func (h *attendanceHandlerImpl) ClearDay(w http.ResponseWriter, r *http.Request) {
	req := attendance.ClearDayRequest{
		Date:    chi.URLParam(r, "date"),
		Confirm: getBoolQueryParam(r, "confirm", false),
	}

	removed, err := h.attendanceService.ClearDay(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, fmt.Sprintf("Cleared %d attendance records", removed), map[string]int{"removed": removed})
}

// ClearEmployeeWeek implements AttendanceHandler
func (h *attendanceHandlerImpl) ClearEmployeeWeek(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClearWeekRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	removed, err := h.attendanceService.ClearEmployeeWeek(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, fmt.Sprintf("Cleared %d attendance records", removed), map[string]int{"removed": removed})
}

// ExportCSV implements AttendanceHandler
func (h *attendanceHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	req := attendance.ExportRequest{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}

	filename := fmt.Sprintf("attendance_%s_%s.csv", req.From, req.To)
	sendFile(w, contentTypeCSV, filename, func(out io.Writer) error {
		return h.attendanceService.ExportCSV(r.Context(), req, out)
	})
}
