package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/attendance-payroll/internal/config"
	appHTTP "github.com/cmlabs-hris/attendance-payroll/internal/handler/http"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/cron"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-payroll/internal/repository/postgresql"
	payrollService "github.com/cmlabs-hris/attendance-payroll/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel(),
	})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	payrollSvc := payrollService.NewPayrollService(attendanceRepo, employeeRepo, cfg.Rates(), cfg.Location())

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(JWTService, payrollHandler, appHTTP.RouterOptions{
		AllowedOrigins: cfg.App.AllowedOrigins,
		Env:            cfg.App.Env,
		LogLevel:       cfg.LogLevel(),
	})

	var scheduler *cron.Scheduler
	if cfg.Cron.Enabled {
		scheduler = cron.NewScheduler(ctx)
		attendanceJobs := cron.NewAttendanceJobs(
			attendanceRepo,
			func(ctx context.Context, fn func(ctx context.Context) error) error {
				return postgresql.WithTransaction(ctx, db, fn)
			},
			cfg.Payroll.StandardHoursPerDay,
			cfg.Cron.AutoCheckoutAfter,
			cfg.Cron.AutoCheckoutInterval,
		)
		attendanceJobs.RegisterJobs(scheduler)
		scheduler.Start()
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Forced shutdown", "error", err)
	}
	if scheduler != nil {
		scheduler.Stop()
	}
	slog.Info("Server exited")
}
