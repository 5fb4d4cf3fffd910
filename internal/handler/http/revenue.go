package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/brown009872/payroll-app/internal/domain/revenue"
	"github.com/brown009872/payroll-app/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type RevenueHandler interface {
	MonthlySummary(w http.ResponseWriter, r *http.Request)
	SaveDaily(w http.ResponseWriter, r *http.Request)
	DeleteDaily(w http.ResponseWriter, r *http.Request)
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
	ExportXLSX(w http.ResponseWriter, r *http.Request)
}

type revenueHandlerImpl struct {
	revenueService revenue.RevenueService
}

func NewRevenueHandler(revenueService revenue.RevenueService) RevenueHandler {
	return &revenueHandlerImpl{
		revenueService: revenueService,
	}
}

// monthFilter reads month and year, defaulting to the current month.
func monthFilter(r *http.Request) revenue.MonthFilter {
	now := time.Now()
	return revenue.MonthFilter{
		Year:  getIntQueryParam(r, "year", now.Year()),
		Month: getIntQueryParam(r, "month", int(now.Month())),
	}
}

// MonthlySummary implements RevenueHandler
func (h *revenueHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.revenueService.MonthlySummary(r.Context(), monthFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SaveDaily implements RevenueHandler
func (h *revenueHandlerImpl) SaveDaily(w http.ResponseWriter, r *http.Request) {
	var req revenue.SaveRevenueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.revenueService.SaveDaily(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Revenue saved", result)
}

// DeleteDaily implements RevenueHandler
func (h *revenueHandlerImpl) DeleteDaily(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Revenue ID is required", nil)
		return
	}

	if err := h.revenueService.DeleteDaily(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Revenue deleted", nil)
}

// GetSettings implements RevenueHandler
func (h *revenueHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	result, err := h.revenueService.GetSettings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateSettings implements RevenueHandler
func (h *revenueHandlerImpl) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req revenue.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.revenueService.UpdateSettings(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Business settings updated", result)
}

// ExportXLSX implements RevenueHandler
func (h *revenueHandlerImpl) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	filter := monthFilter(r)
	filename := fmt.Sprintf("S2A_%d_%02d.xlsx", filter.Year, filter.Month)
	sendFile(w, contentTypeXLSX, filename, func(out io.Writer) error {
		return h.revenueService.ExportXLSX(r.Context(), filter, out)
	})
}
