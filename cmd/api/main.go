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

	"github.com/klinikmedika/absensi-backend-go/internal/config"
	appHTTP "github.com/klinikmedika/absensi-backend-go/internal/handler/http"
	"github.com/klinikmedika/absensi-backend-go/internal/pkg/cache"
	"github.com/klinikmedika/absensi-backend-go/internal/pkg/cron"
	"github.com/klinikmedika/absensi-backend-go/internal/pkg/database"
	"github.com/klinikmedika/absensi-backend-go/internal/pkg/jwt"
	"github.com/klinikmedika/absensi-backend-go/internal/pkg/oauth"
	"github.com/klinikmedika/absensi-backend-go/internal/repository/postgresql"
	areaService "github.com/klinikmedika/absensi-backend-go/internal/service/area"
	attendanceService "github.com/klinikmedika/absensi-backend-go/internal/service/attendance"
	authService "github.com/klinikmedika/absensi-backend-go/internal/service/auth"
	correctionService "github.com/klinikmedika/absensi-backend-go/internal/service/correction"
	dashboardService "github.com/klinikmedika/absensi-backend-go/internal/service/dashboard"
	employeeService "github.com/klinikmedika/absensi-backend-go/internal/service/employee"
	overtimeService "github.com/klinikmedika/absensi-backend-go/internal/service/overtime"
	reportService "github.com/klinikmedika/absensi-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	// The report cache is optional. A missing Redis only costs cache hits.
	reportCache, err := cache.New(cfg.Redis)
	if err != nil {
		slog.Warn("redis unavailable, report caching disabled", slog.String("error", err.Error()))
		reportCache = nil
	}
	if reportCache != nil {
		defer reportCache.Close()
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	areaRepo := postgresql.NewAreaRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	correctionRepo := postgresql.NewCorrectionRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	var googleSvc oauth.GoogleService
	if cfg.GoogleOAuthEnabled() {
		googleSvc = oauth.NewGoogleService(
			cfg.OAuth2Google.ClientID,
			cfg.OAuth2Google.ClientSecret,
			cfg.OAuth2Google.RedirectURL,
			cfg.OAuth2Google.Scopes,
		)
	}

	authSvc := authService.NewAuthService(userRepo, jwtSvc, googleSvc)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	areaSvc := areaService.NewAreaService(areaRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo)
	correctionSvc := correctionService.NewCorrectionService(correctionRepo, attendanceRepo, attendanceSvc)
	overtimeSvc := overtimeService.NewOvertimeService(overtimeRepo)
	reportSvc := reportService.NewReportService(reportRepo, reportCache, cfg.Redis.ReportTTL)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, correctionRepo, overtimeRepo)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc, jwtSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Correction: appHTTP.NewCorrectionHandler(correctionSvc),
		Overtime:   appHTTP.NewOvertimeHandler(overtimeSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Area:       appHTTP.NewAreaHandler(areaSvc),
	}

	router := appHTTP.NewRouter(cfg, jwtSvc, handlers)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo).RegisterJobs(scheduler, cfg.Cron.AbsentMarkInterval)
	scheduler.Start()

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		slog.Info("server started", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	scheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", slog.String("error", err.Error()))
	}
}
