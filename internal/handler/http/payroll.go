package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/brown009872/payroll-app/internal/domain/payroll"
	"github.com/brown009872/payroll-app/internal/handler/http/response"
	"github.com/brown009872/payroll-app/internal/pkg/utils"
)

type PayrollHandler interface {
	WeeklySummary(w http.ResponseWriter, r *http.Request)
	SetWeeklyDelay(w http.ResponseWriter, r *http.Request)
	ExportWeeklyPDF(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

func anchorParam(r *http.Request) string {
	if anchor := r.URL.Query().Get("anchor"); anchor != "" {
		return anchor
	}
	return utils.Today()
}

// WeeklySummary implements PayrollHandler
func (h *payrollHandlerImpl) WeeklySummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.WeeklySummary(r.Context(), anchorParam(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SetWeeklyDelay implements PayrollHandler
func (h *payrollHandlerImpl) SetWeeklyDelay(w http.ResponseWriter, r *http.Request) {
	var req payroll.SetWeeklyDelayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.SetWeeklyDelay(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payment delay saved", result)
}

// ExportWeeklyPDF implements PayrollHandler
func (h *payrollHandlerImpl) ExportWeeklyPDF(w http.ResponseWriter, r *http.Request) {
	anchor := anchorParam(r)
	sendFile(w, contentTypePDF, "payroll_"+anchor+".pdf", func(out io.Writer) error {
		return h.payrollService.ExportWeeklyPDF(r.Context(), anchor, out)
	})
}
