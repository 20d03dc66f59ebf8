package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RobertoAguirre/amn-backend-go/internal/config"
	appHTTP "github.com/RobertoAguirre/amn-backend-go/internal/handler/http"
	"github.com/RobertoAguirre/amn-backend-go/internal/pkg/cron"
	"github.com/RobertoAguirre/amn-backend-go/internal/pkg/database"
	"github.com/RobertoAguirre/amn-backend-go/internal/pkg/email"
	"github.com/RobertoAguirre/amn-backend-go/internal/pkg/jwt"
	"github.com/RobertoAguirre/amn-backend-go/internal/pkg/sse"
	"github.com/RobertoAguirre/amn-backend-go/internal/repository/postgresql"
	geofenceService "github.com/RobertoAguirre/amn-backend-go/internal/service/geofence"
	notificationService "github.com/RobertoAguirre/amn-backend-go/internal/service/notification"
	payrollService "github.com/RobertoAguirre/amn-backend-go/internal/service/payroll"
	reportService "github.com/RobertoAguirre/amn-backend-go/internal/service/report"
	scheduleService "github.com/RobertoAguirre/amn-backend-go/internal/service/schedule"
	trackingService "github.com/RobertoAguirre/amn-backend-go/internal/service/tracking"
	workreportService "github.com/RobertoAguirre/amn-backend-go/internal/service/workreport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println("Invalid config:", err)
		return
	}

	loc := cfg.ReportLocation()

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	zoneRepo := postgresql.NewZoneRepository(db)
	eventRepo := postgresql.NewEventRepository(db, loc)
	scheduleRepo := postgresql.NewWorkScheduleRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	payrollRuleRepo := postgresql.NewPayrollRuleRepository(db)
	workReportRepo := postgresql.NewWorkReportRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)
	emailService := email.NewEmailService(cfg.SMTP)
	hub := sse.NewHub()

	zoneSvc := geofenceService.NewZoneService(zoneRepo)
	eventSvc := trackingService.NewEventService(eventRepo, zoneSvc)
	scheduleSvc := scheduleService.NewWorkScheduleService(db, scheduleRepo)
	notificationSvc := notificationService.NewNotificationService(notificationRepo, hub, emailService, notificationService.Config{})
	defer notificationSvc.Stop()
	reportSvc := reportService.NewReportService(eventRepo, scheduleSvc, notificationSvc, loc)
	payrollSvc := payrollService.NewRuleService(payrollRuleRepo)
	workReportSvc := workreportService.NewWorkReportService(workReportRepo)

	scheduler := cron.NewScheduler()
	sweepJobs := cron.NewSweepJobs(eventRepo, scheduleSvc, notificationRepo, notificationSvc, loc, cfg.Sweep.Interval)
	sweepJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Tracking:     appHTTP.NewTrackingHandler(eventSvc),
		Geofence:     appHTTP.NewGeofenceHandler(zoneSvc),
		Schedule:     appHTTP.NewScheduleHandler(scheduleSvc),
		Report:       appHTTP.NewReportHandler(reportSvc),
		Notification: appHTTP.NewNotificationHandler(jwtService, notificationSvc),
		Payroll:      appHTTP.NewPayrollHandler(payrollSvc),
		WorkReport:   appHTTP.NewWorkReportHandler(workReportSvc),
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		fmt.Println("Shutdown error:", err)
	}
}
