package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/brown009872/payroll-app/internal/domain/inventory"
	"github.com/brown009872/payroll-app/internal/handler/http/middleware"
	"github.com/brown009872/payroll-app/internal/handler/http/response"
	"github.com/brown009872/payroll-app/internal/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type InventoryHandler interface {
	ListStock(w http.ResponseWriter, r *http.Request)
	SaveStock(w http.ResponseWriter, r *http.Request)
	DeleteStock(w http.ResponseWriter, r *http.Request)
	SuggestCarryOver(w http.ResponseWriter, r *http.Request)
	ExportReportPDF(w http.ResponseWriter, r *http.Request)

	ListOrders(w http.ResponseWriter, r *http.Request)
	SyncOrders(w http.ResponseWriter, r *http.Request)

	ListCatalog(w http.ResponseWriter, r *http.Request)
	GetCart(w http.ResponseWriter, r *http.Request)
	AddCartItem(w http.ResponseWriter, r *http.Request)
	ChangeCartQuantity(w http.ResponseWriter, r *http.Request)
	RemoveCartItem(w http.ResponseWriter, r *http.Request)
	ClearCart(w http.ResponseWriter, r *http.Request)
	PlaceOrder(w http.ResponseWriter, r *http.Request)
}

type inventoryHandlerImpl struct {
	inventoryService inventory.InventoryService
}

func NewInventoryHandler(inventoryService inventory.InventoryService) InventoryHandler {
	return &inventoryHandlerImpl{
		inventoryService: inventoryService,
	}
}

// ListStock implements InventoryHandler
func (h *inventoryHandlerImpl) ListStock(w http.ResponseWriter, r *http.Request) {
	filter := inventory.StockFilter{
		Product: r.URL.Query().Get("product"),
		From:    r.URL.Query().Get("from"),
		To:      r.URL.Query().Get("to"),
	}

	result, err := h.inventoryService.ListStock(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SaveStock implements InventoryHandler
func (h *inventoryHandlerImpl) SaveStock(w http.ResponseWriter, r *http.Request) {
	var req inventory.SaveStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.inventoryService.SaveStock(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Stock record saved", result)
}

// DeleteStock implements InventoryHandler
func (h *inventoryHandlerImpl) DeleteStock(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Stock record ID is required", nil)
		return
	}

	if err := h.inventoryService.DeleteStock(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Stock record deleted", nil)
}

// SuggestCarryOver implements InventoryHandler
func (h *inventoryHandlerImpl) SuggestCarryOver(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = utils.Today()
	}

	result, err := h.inventoryService.SuggestCarryOver(r.Context(), r.URL.Query().Get("product"), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportReportPDF implements InventoryHandler
func (h *inventoryHandlerImpl) ExportReportPDF(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = utils.Today()
	}

	sendFile(w, contentTypePDF, "stock_"+date+".pdf", func(out io.Writer) error {
		return h.inventoryService.ExportReportPDF(r.Context(), date, out)
	})
}

// ListOrders implements InventoryHandler
func (h *inventoryHandlerImpl) ListOrders(w http.ResponseWriter, r *http.Request) {
	result, err := h.inventoryService.ListOrders(r.Context(), getIntQueryParam(r, "limit", 50))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SyncOrders implements InventoryHandler
func (h *inventoryHandlerImpl) SyncOrders(w http.ResponseWriter, r *http.Request) {
	result, err := h.inventoryService.SyncOrders(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Supplier orders synced", result)
}

// ListCatalog implements InventoryHandler
func (h *inventoryHandlerImpl) ListCatalog(w http.ResponseWriter, r *http.Request) {
	filter := inventory.CatalogFilter{
		Category: r.URL.Query().Get("category"),
		Query:    r.URL.Query().Get("q"),
	}

	result, err := h.inventoryService.ListCatalog(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetCart implements InventoryHandler
func (h *inventoryHandlerImpl) GetCart(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.inventoryService.GetCart(r.Context(), middleware.SessionID(r.Context())))
}

// AddCartItem implements InventoryHandler
func (h *inventoryHandlerImpl) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req inventory.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.inventoryService.AddToCart(r.Context(), middleware.SessionID(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Added to cart", result)
}

// ChangeCartQuantity implements InventoryHandler
func (h *inventoryHandlerImpl) ChangeCartQuantity(w http.ResponseWriter, r *http.Request) {
	var req inventory.ChangeCartQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ProductID = chi.URLParam(r, "productID")

	result, err := h.inventoryService.ChangeCartQuantity(r.Context(), middleware.SessionID(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// RemoveCartItem implements InventoryHandler
func (h *inventoryHandlerImpl) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")
	if productID == "" {
		response.BadRequest(w, "Product ID is required", nil)
		return
	}

	result, err := h.inventoryService.RemoveFromCart(r.Context(), middleware.SessionID(r.Context()), productID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Removed from cart", result)
}

// ClearCart implements InventoryHandler
func (h *inventoryHandlerImpl) ClearCart(w http.ResponseWriter, r *http.Request) {
	response.SuccessWithMessage(w, "Cart cleared", h.inventoryService.ClearCart(r.Context(), middleware.SessionID(r.Context())))
}

// PlaceOrder implements InventoryHandler
func (h *inventoryHandlerImpl) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req inventory.PlaceOrderRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	result, err := h.inventoryService.PlaceOrder(r.Context(), middleware.SessionID(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Order placed", result)
}
