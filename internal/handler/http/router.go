package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/samat2k5/hrms-singapore-sub000/internal/config"
)

func NewRouter(cfg *config.Config, payrollHandler PayrollHandler, attendanceHandler AttendanceHandler, leaveHandler LeaveHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
		Level:       logLevel(cfg.App.LogLevel),
	})).With(
		slog.String("app", "hrms-singapore"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/payroll", func(r chi.Router) {
			r.Post("/runs", payrollHandler.RunPayroll)
			r.Post("/preview", payrollHandler.PreviewPayslip)
		})

		r.Route("/contributions", func(r chi.Router) {
			r.Post("/cpf", payrollHandler.ComputeCPF)
			r.Post("/sdl", payrollHandler.ComputeSDL)
			r.Post("/shg", payrollHandler.ComputeSHG)
		})

		r.Route("/tax", func(r chi.Router) {
			r.Post("/estimate", payrollHandler.EstimateTax)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/classify", attendanceHandler.ClassifyDay)
			r.Post("/classify/month", attendanceHandler.ClassifyMonth)
		})

		r.Route("/leave", func(r chi.Router) {
			r.Post("/balances", leaveHandler.ComputeBalances)
		})
	})
	return r
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
