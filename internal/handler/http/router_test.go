package http

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/brown009872/payroll-app/internal/domain/employee"
	"github.com/brown009872/payroll-app/internal/handler/http/middleware"
	"github.com/brown009872/payroll-app/internal/handler/http/response"
	"github.com/brown009872/payroll-app/internal/pkg/sse"
	"github.com/brown009872/payroll-app/internal/repository/memory"
	attendanceService "github.com/brown009872/payroll-app/internal/service/attendance"
	employeeService "github.com/brown009872/payroll-app/internal/service/employee"
	inventoryService "github.com/brown009872/payroll-app/internal/service/inventory"
	payrollService "github.com/brown009872/payroll-app/internal/service/payroll"
	revenueService "github.com/brown009872/payroll-app/internal/service/revenue"
	scheduleService "github.com/brown009872/payroll-app/internal/service/schedule"
	systemService "github.com/brown009872/payroll-app/internal/service/system"
	"github.com/brown009872/payroll-app/internal/store"
	"github.com/brown009872/payroll-app/internal/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router http.Handler
	store  *store.Store
	hub    *sse.Hub
}

type envelope struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Data    json.RawMessage       `json:"data"`
	Error   *response.ErrorDetail `json:"error"`
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger := storetest.Logger()
	st := storetest.New(t, storetest.Repositories())
	hub := sse.NewHub(8)

	revenueRepo := memory.NewRevenueRepository()
	stockRepo := memory.NewStockRepository()
	orderRepo := memory.NewOrderRepository()

	handlers := Handlers{
		Employee:   NewEmployeeHandler(employeeService.NewEmployeeService(st, logger)),
		Attendance: NewAttendanceHandler(attendanceService.NewAttendanceService(st, logger)),
		Payroll:    NewPayrollHandler(payrollService.NewPayrollService(st, logger)),
		Schedule:   NewScheduleHandler(scheduleService.NewScheduleService(st, nil, logger)),
		Revenue:    NewRevenueHandler(revenueService.NewRevenueService(revenueRepo, memory.NewSettingsRepository(), logger)),
		Inventory:  NewInventoryHandler(inventoryService.NewInventoryService(stockRepo, orderRepo, nil, logger)),
		System:     NewSystemHandler(systemService.NewSystemService(st, revenueRepo, stockRepo, orderRepo, logger), hub, nil),
		Input:      NewInputHandler(),
	}

	router := NewRouter(handlers, RouterOptions{
		Logger:      logger,
		CORSOrigins: []string{"http://localhost:5173"},
		SyncTimeout: 5 * time.Second,
	})
	return &testServer{router: router, store: st, hub: hub}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	if data != nil && len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func TestEmployeeRoutes(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/employees?wait=true", map[string]interface{}{
		"full_name":   "Tran Thi B",
		"position":    "Cook",
		"hourly_rate": "25.000 ₫",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created employee.EmployeeResponse
	decode(t, rec, &created)
	require.NotEmpty(t, created.ID)
	require.NotNil(t, created.HourlyRate)
	assert.Equal(t, int64(25000), *created.HourlyRate)

	rec = s.do(t, http.MethodGet, "/api/v1/employees?search=tran", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []employee.EmployeeResponse
	decode(t, rec, &list)
	assert.Len(t, list, 1)

	rec = s.do(t, http.MethodGet, "/api/v1/employees/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/v1/employees/"+created.ID+"/status?wait=true", map[string]string{"status": "resigned"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodPost, "/api/v1/employees/"+created.ID+"/status", map[string]string{"status": "active"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	env := decode(t, rec, nil)
	assert.Equal(t, "RULE_VIOLATION", env.Error.Code)

	rec = s.do(t, http.MethodDelete, "/api/v1/employees/"+created.ID+"?wait=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var deleted employee.DeleteEmployeeResponse
	decode(t, rec, &deleted)
	assert.False(t, deleted.SoftDeleted)

	rec = s.do(t, http.MethodGet, "/api/v1/employees/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEmployeeRoutes_RejectsBadInput(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/employees", `{"full_name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/v1/employees", map[string]string{"full_name": "  "})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decode(t, rec, nil)
	assert.Contains(t, env.Error.Details, "full_name")
}

func TestAttendanceRoutes(t *testing.T) {
	s := newTestServer(t)
	emp := storetest.Employee(t, s.store, "An", 20000)

	path := "/api/v1/attendance/2025-03-05/" + emp.ID + "?wait=true"
	rec := s.do(t, http.MethodPatch, path, map[string]string{"check_in": "8", "check_out": "1730"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var view struct {
		CheckIn           string  `json:"check_in"`
		CheckOut          string  `json:"check_out"`
		TotalHours        float64 `json:"total_hours"`
		ProvisionalAmount int64   `json:"provisional_amount"`
	}
	decode(t, rec, &view)
	assert.Equal(t, "08:00", view.CheckIn)
	assert.Equal(t, "17:30", view.CheckOut)
	assert.Equal(t, 9.5, view.TotalHours)
	assert.Equal(t, int64(190000), view.ProvisionalAmount)

	rec = s.do(t, http.MethodPatch, path, map[string]string{"check_in": "25:99"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = s.do(t, http.MethodPatch, "/api/v1/attendance/2025-03-05/missing", map[string]string{"check_in": "08:00"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/attendance?date=2025-03-05", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var sheet struct {
		TotalHours  float64 `json:"total_hours"`
		TotalAmount int64   `json:"total_amount"`
	}
	decode(t, rec, &sheet)
	assert.Equal(t, 9.5, sheet.TotalHours)
	assert.Equal(t, int64(190000), sheet.TotalAmount)

	rec = s.do(t, http.MethodGet, "/api/v1/attendance/export.csv?from=2025-03-01&to=2025-03-31", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, contentTypeCSV, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attendance_2025-03-01_2025-03-31.csv")
	assert.Contains(t, rec.Body.String(), "An")

	rec = s.do(t, http.MethodDelete, "/api/v1/attendance/2025-03-05", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(t, http.MethodDelete, "/api/v1/attendance/2025-03-05?confirm=true&wait=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var cleared map[string]int
	decode(t, rec, &cleared)
	assert.Equal(t, 1, cleared["removed"])
}

func TestPayrollRoutes(t *testing.T) {
	s := newTestServer(t)
	emp := storetest.Employee(t, s.store, "An", 20000)

	rec := s.do(t, http.MethodPut, "/api/v1/payroll/delays?wait=true", map[string]interface{}{
		"week_end_date": "2025-03-09",
		"employee_id":   emp.ID,
		"delay_days":    61,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/payroll/weekly?anchor=2025-03-05", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/payroll/weekly.pdf?anchor=2025-03-05", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, contentTypePDF, rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))
}

func TestScheduleRoutes_SessionSelection(t *testing.T) {
	s := newTestServer(t)
	emp := storetest.Employee(t, s.store, "An", 20000)

	rec := s.do(t, http.MethodPost, "/api/v1/schedule/selection", map[string]string{"employee_id": emp.ID},
		middleware.SessionHeader, "tablet-1")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// Another session has nothing selected, so its click does nothing.
	rec = s.do(t, http.MethodPost, "/api/v1/schedule/click?wait=true", map[string]string{"date": "2025-03-05", "zone": "morning"},
		middleware.SessionHeader, "tablet-2")
	require.Equal(t, http.StatusOK, rec.Code)
	var result struct {
		Applied bool `json:"applied"`
	}
	decode(t, rec, &result)
	assert.False(t, result.Applied)

	rec = s.do(t, http.MethodPost, "/api/v1/schedule/click?wait=true", map[string]string{"date": "2025-03-05", "zone": "afternoon"},
		middleware.SessionHeader, "tablet-1")
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &result)
	assert.True(t, result.Applied)

	rec = s.do(t, http.MethodGet, "/api/v1/schedule/export?anchor=2025-03-05", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var days []struct {
		Date      string   `json:"date"`
		Afternoon []string `json:"afternoon"`
	}
	decode(t, rec, &days)
	require.Len(t, days, 7)
	assert.Equal(t, []string{"An"}, days[2].Afternoon)

	rec = s.do(t, http.MethodGet, "/api/v1/schedule/export.xlsx?anchor=2025-03-05", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, contentTypeXLSX, rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "PK"))

	rec = s.do(t, http.MethodPost, "/api/v1/schedule/toggle", map[string]string{"employee_id": emp.ID, "date": "2025-03-05", "slot": "night"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = s.do(t, http.MethodDelete, "/api/v1/schedule/rows/"+emp.ID+"?anchor=2025-03-05", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRevenueRoutes(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPut, "/api/v1/revenues", map[string]interface{}{"date": "2025-03-05"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(t, http.MethodPut, "/api/v1/revenues", map[string]interface{}{"date": "2025-03-05", "offline": "1.000.000", "grab": 500000})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/api/v1/revenues?month=3&year=2025", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var summary struct {
		GrandTotal int64 `json:"grand_total"`
	}
	decode(t, rec, &summary)
	assert.Equal(t, int64(1500000), summary.GrandTotal)

	rec = s.do(t, http.MethodGet, "/api/v1/revenues/export.xlsx?month=3&year=2025", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(t, http.MethodPut, "/api/v1/revenues/settings", map[string]string{"business_name": "Quán Cơm Bình"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/api/v1/revenues/export.xlsx?month=3&year=2025", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "S2A_2025_03.xlsx")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "PK"))
}

func TestInventoryRoutes(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPut, "/api/v1/inventory/stock", map[string]interface{}{
		"date": "2025-03-05", "product": "Rice", "start_qty": 10, "ordered": 6, "end_qty": 2,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/api/v1/inventory/stock/carry-over?product=Rice&date=2025-03-06", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var carry struct {
		StartQty int64 `json:"start_qty"`
	}
	decode(t, rec, &carry)
	assert.Equal(t, int64(2), carry.StartQty)

	rec = s.do(t, http.MethodGet, "/api/v1/inventory/stock/report.pdf?date=2025-03-05", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))

	rec = s.do(t, http.MethodPost, "/api/v1/inventory/orders/sync", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestInventoryRoutes_CatalogCart(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/v1/inventory/catalog?category=TRA&q=tr%C3%A0+xanh", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var products []struct {
		ID string `json:"id"`
	}
	decode(t, rec, &products)
	require.Len(t, products, 2)

	rec = s.do(t, http.MethodPost, "/api/v1/inventory/cart/items", map[string]interface{}{"product_id": products[0].ID, "quantity": 3},
		middleware.SessionHeader, "kiosk")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodPatch, "/api/v1/inventory/cart/items/"+products[0].ID, map[string]int{"delta": -1},
		middleware.SessionHeader, "kiosk")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var cart struct {
		TotalItems int64 `json:"total_items"`
		TotalPrice int64 `json:"total_price"`
	}
	decode(t, rec, &cart)
	assert.Equal(t, int64(2), cart.TotalItems)

	rec = s.do(t, http.MethodDelete, "/api/v1/inventory/cart/items/unknown", nil, middleware.SessionHeader, "kiosk")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/v1/inventory/cart/order", nil, middleware.SessionHeader, "other")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/v1/inventory/cart/order", map[string]string{"date": "2025-03-05"},
		middleware.SessionHeader, "kiosk")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var order struct {
		OrderID     string `json:"order_id"`
		TotalAmount int64  `json:"total_amount"`
	}
	decode(t, rec, &order)
	assert.Equal(t, cart.TotalPrice, order.TotalAmount)

	rec = s.do(t, http.MethodGet, "/api/v1/inventory/orders", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var orders []struct {
		OrderID string `json:"order_id"`
	}
	decode(t, rec, &orders)
	require.Len(t, orders, 1)
	assert.Equal(t, order.OrderID, orders[0].OrderID)

	rec = s.do(t, http.MethodGet, "/api/v1/inventory/cart", nil, middleware.SessionHeader, "kiosk")
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &cart)
	assert.Zero(t, cart.TotalItems)
}

func TestInputRoutes(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/input/time", map[string]string{"value": "830"})
	require.Equal(t, http.StatusOK, rec.Code)
	var normalized struct {
		Value string `json:"value"`
		Valid bool   `json:"valid"`
	}
	decode(t, rec, &normalized)
	assert.Equal(t, "08:30", normalized.Value)
	assert.True(t, normalized.Valid)

	rec = s.do(t, http.MethodPost, "/api/v1/input/currency", map[string]string{"text": "50.000 ₫"})
	require.Equal(t, http.StatusOK, rec.Code)
	var money struct {
		Amount    int64  `json:"amount"`
		Formatted string `json:"formatted"`
	}
	decode(t, rec, &money)
	assert.Equal(t, int64(50000), money.Amount)
	assert.Equal(t, "50.000", money.Formatted)
}

func TestSystemRoutes_Wipe(t *testing.T) {
	s := newTestServer(t)
	storetest.Employee(t, s.store, "An", 20000)

	rec := s.do(t, http.MethodPost, "/api/v1/system/wipe", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/v1/system/wipe?confirm=true&wait=true", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Empty(t, s.store.Snapshot().Employees)

	rec = s.do(t, http.MethodGet, "/api/v1/system/jobs", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStreamTopics(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/events?topics=employees,%20daily_attendance,employees", nil)
	assert.Equal(t, []string{"system", "employees", "daily_attendance"}, streamTopics(req))

	req = httptest.NewRequest(http.MethodGet, "/events", nil)
	assert.Equal(t, []string{sse.AllTopics}, streamTopics(req))
}

func TestStream_DeliversEvents(t *testing.T) {
	s := newTestServer(t)
	server := httptest.NewServer(s.router)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/api/v1/events?topics=employees", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	readEvent := func() string {
		var name string
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			line = strings.TrimRight(line, "\n")
			if line == "" {
				return name
			}
			if strings.HasPrefix(line, "event: ") {
				name = strings.TrimPrefix(line, "event: ")
			}
		}
	}

	require.Equal(t, "connected", readEvent())

	s.hub.Publish(sse.Event{Topic: "employees", Event: "change", Data: map[string]string{"op": "insert"}})
	assert.Equal(t, "change", readEvent())
}
