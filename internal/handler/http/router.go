package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/config"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
	leaveHandler LeaveHandler,
	overtimeHandler OvertimeHandler,
	taskHandler TaskHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-admin-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api", func(r chi.Router) {
		// Tokens are parsed when present but no route requires one yet.
		r.Use(jwtauth.Verifier(jwtService.JWTAuth()))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Post("/", employeeHandler.Create)
			r.Get("/", employeeHandler.List)
			r.Get("/{id}", employeeHandler.Get)
			r.Get("/{id}/report", employeeHandler.GetReport)
		})

		r.Route("/checkinout", func(r chi.Router) {
			r.Post("/checkin", attendanceHandler.CheckIn)
			r.Post("/checkout", attendanceHandler.CheckOut)
		})

		r.Post("/payroll", payrollHandler.RunPayroll)
		r.Put("/performance", employeeHandler.UpdatePerformanceScore)
		r.Put("/shift", employeeHandler.UpdateShift)

		r.Route("/leave", func(r chi.Router) {
			r.Post("/", leaveHandler.Submit)
			r.Get("/", leaveHandler.List)
			r.Put("/{id}", leaveHandler.UpdateStatus)
		})

		r.Route("/overtime", func(r chi.Router) {
			r.Post("/", overtimeHandler.Submit)
			r.Get("/", overtimeHandler.List)
			r.Put("/{id}", overtimeHandler.UpdateStatus)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Post("/", taskHandler.Assign)
			r.Get("/{employeeId}", taskHandler.List)
			r.Put("/{id}", taskHandler.UpdateStatus)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Patch("/employee/{id}", reportHandler.UpdateReport)
			r.Patch("/all", reportHandler.UpdateAllReports)
			r.Get("/analysis/{id}", reportHandler.AnalyzeReport)
		})
	})

	return r
}
