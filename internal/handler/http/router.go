package http

import (
	"log/slog"
	"time"

	"github.com/brown009872/payroll-app/internal/handler/http/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Payroll    PayrollHandler
	Schedule   ScheduleHandler
	Revenue    RevenueHandler
	Inventory  InventoryHandler
	System     SystemHandler
	Input      InputHandler
}

type RouterOptions struct {
	Logger      *slog.Logger
	LogLevel    slog.Level
	CORSOrigins []string
	// SyncTimeout bounds how long a ?wait=true request waits for persistence.
	SyncTimeout time.Duration
}

func NewRouter(h Handlers, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token", middleware.SessionHeader},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Session)
		r.Use(middleware.WaitForSync(opts.SyncTimeout))

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.Employee.ListEmployees)
			r.Post("/", h.Employee.CreateEmployee)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Employee.GetEmployee)
				r.Put("/", h.Employee.UpdateEmployee)
				r.Delete("/", h.Employee.DeleteEmployee)
				r.Post("/status", h.Employee.ChangeStatus)
			})
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", h.Attendance.GetDailySheet)
			r.Get("/export.csv", h.Attendance.ExportCSV)
			r.Post("/clear-week", h.Attendance.ClearEmployeeWeek)
			r.Delete("/{date}", h.Attendance.ClearDay)
			r.Patch("/{date}/{employeeID}", h.Attendance.UpdateRecord)
			r.Delete("/{date}/{employeeID}", h.Attendance.DeleteRecord)
		})

		r.Route("/payroll", func(r chi.Router) {
			r.Get("/weekly", h.Payroll.WeeklySummary)
			r.Get("/weekly.pdf", h.Payroll.ExportWeeklyPDF)
			r.Put("/delays", h.Payroll.SetWeeklyDelay)
		})

		r.Route("/schedule", func(r chi.Router) {
			r.Get("/week", h.Schedule.GetWeek)
			r.Post("/toggle", h.Schedule.Toggle)

			r.Post("/selection", h.Schedule.Select)
			r.Delete("/selection", h.Schedule.ClearSelection)
			r.Post("/click", h.Schedule.ClickCell)
			r.Post("/drag-start", h.Schedule.StartDrag)
			r.Post("/drop", h.Schedule.Drop)
			r.Post("/remove", h.Schedule.RemoveAssignment)

			r.Post("/custom-shift", h.Schedule.EnableCustomShift)
			r.Patch("/custom-shift", h.Schedule.SetCustomShiftTimes)
			r.Delete("/custom-shift", h.Schedule.DisableCustomShift)

			r.Post("/rows", h.Schedule.AddRow)
			r.Delete("/rows/{employeeID}", h.Schedule.RemoveRow)
			r.Post("/reset-week", h.Schedule.ResetWeek)

			r.Get("/export", h.Schedule.ExportWeek)
			r.Get("/export.xlsx", h.Schedule.ExportWeekXLSX)
		})

		r.Route("/revenues", func(r chi.Router) {
			r.Get("/", h.Revenue.MonthlySummary)
			r.Put("/", h.Revenue.SaveDaily)
			r.Get("/export.xlsx", h.Revenue.ExportXLSX)
			r.Get("/settings", h.Revenue.GetSettings)
			r.Put("/settings", h.Revenue.UpdateSettings)
			r.Delete("/{id}", h.Revenue.DeleteDaily)
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Route("/stock", func(r chi.Router) {
				r.Get("/", h.Inventory.ListStock)
				r.Put("/", h.Inventory.SaveStock)
				r.Get("/carry-over", h.Inventory.SuggestCarryOver)
				r.Get("/report.pdf", h.Inventory.ExportReportPDF)
				r.Delete("/{id}", h.Inventory.DeleteStock)
			})
			r.Get("/orders", h.Inventory.ListOrders)
			r.Post("/orders/sync", h.Inventory.SyncOrders)

			r.Get("/catalog", h.Inventory.ListCatalog)
			r.Route("/cart", func(r chi.Router) {
				r.Get("/", h.Inventory.GetCart)
				r.Delete("/", h.Inventory.ClearCart)
				r.Post("/items", h.Inventory.AddCartItem)
				r.Patch("/items/{productID}", h.Inventory.ChangeCartQuantity)
				r.Delete("/items/{productID}", h.Inventory.RemoveCartItem)
				r.Post("/order", h.Inventory.PlaceOrder)
			})
		})

		r.Route("/input", func(r chi.Router) {
			r.Post("/time", h.Input.NormalizeTime)
			r.Post("/time/keystroke", h.Input.TimeKeystroke)
			r.Post("/currency", h.Input.ParseCurrency)
		})

		r.Route("/system", func(r chi.Router) {
			r.Post("/wipe", h.System.WipeAll)
			r.Get("/jobs", h.System.Jobs)
		})

		r.Get("/events", h.System.Stream)
	})
	return r
}
