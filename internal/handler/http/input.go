package http

import (
	"encoding/json"
	"net/http"

	"github.com/brown009872/payroll-app/internal/handler/http/response"
	"github.com/brown009872/payroll-app/internal/pkg/utils"
)

// InputHandler exposes the shared time and currency input helpers so every
// client formats entries the same way.
type InputHandler interface {
	NormalizeTime(w http.ResponseWriter, r *http.Request)
	TimeKeystroke(w http.ResponseWriter, r *http.Request)
	ParseCurrency(w http.ResponseWriter, r *http.Request)
}

type inputHandlerImpl struct{}

func NewInputHandler() InputHandler {
	return &inputHandlerImpl{}
}

type normalizeTimeRequest struct {
	Value string `json:"value"`
}

type keystrokeRequest struct {
	Prev string `json:"prev"`
	Next string `json:"next"`
}

type currencyRequest struct {
	Text string `json:"text"`
}

// NormalizeTime implements InputHandler
func (h *inputHandlerImpl) NormalizeTime(w http.ResponseWriter, r *http.Request) {
	var req normalizeTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	value := utils.NormalizeTimeInput(req.Value)
	response.Success(w, map[string]interface{}{
		"value": value,
		"valid": utils.IsCanonicalTime(value),
	})
}

// TimeKeystroke implements InputHandler
func (h *inputHandlerImpl) TimeKeystroke(w http.ResponseWriter, r *http.Request) {
	var req keystrokeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	value, accepted := utils.ShapeTimeKeystroke(req.Prev, req.Next)
	response.Success(w, map[string]interface{}{
		"value":    value,
		"accepted": accepted,
	})
}

// ParseCurrency implements InputHandler
func (h *inputHandlerImpl) ParseCurrency(w http.ResponseWriter, r *http.Request) {
	var req currencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	amount := utils.ParseCurrencyInput(req.Text)
	response.Success(w, map[string]interface{}{
		"amount":    amount,
		"formatted": utils.FormatNumber(amount),
	})
}
