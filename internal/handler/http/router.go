package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/attendance-payroll/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-payroll/internal/handler/http/middleware"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterOptions struct {
	AllowedOrigins []string
	Env            string
	LogLevel       slog.Level
}

func NewRouter(JWTService jwt.Service, payrollHandler PayrollHandler, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(opts.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-payroll"),
		slog.String("version", "v1.0.0"),
		slog.String("env", opts.Env),
	)

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.RequireRole(employee.RoleAdmin, employee.RoleManager))
				r.Get("/report", payrollHandler.GetReport)
				r.Get("/report/export", payrollHandler.ExportReport)
			})
		})
	})
	return r
}
