package http

import (
	"log/slog"
	"os"

	"github.com/RobertoAguirre/amn-backend-go/internal/config"
	"github.com/RobertoAguirre/amn-backend-go/internal/handler/http/middleware"
	"github.com/RobertoAguirre/amn-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Tracking     TrackingHandler
	Geofence     GeofenceHandler
	Schedule     ScheduleHandler
	Report       ReportHandler
	Notification NotificationHandler
	Payroll      PayrollHandler
	WorkReport   WorkReportHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "amn-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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

		// SSE carries its token as a query parameter; the handler verifies
		// it itself.
		r.Get("/notifications/stream", h.Notification.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/tracker/events", func(r chi.Router) {
				r.Post("/", h.Tracking.Ingest)
				r.Post("/bulk", h.Tracking.BulkIngest)
				r.Get("/", h.Tracking.List)
			})

			r.Route("/geofences", func(r chi.Router) {
				r.Post("/", h.Geofence.Create)
				r.Get("/", h.Geofence.List)
				r.Delete("/{id}", h.Geofence.Delete)
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Post("/", h.Schedule.Create)
				r.Get("/", h.Schedule.List)
				r.Put("/{id}", h.Schedule.Update)
				r.Delete("/{id}", h.Schedule.Delete)
			})

			r.Route("/reports/attendance", func(r chi.Router) {
				r.Get("/", h.Report.Attendance)
				r.Get("/export", h.Report.AttendanceExport)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.List)
				r.Get("/unread-count", h.Notification.UnreadCount)
				r.Put("/read-all", h.Notification.MarkAllRead)
				r.Put("/{id}/read", h.Notification.MarkRead)
				r.Delete("/{id}", h.Notification.Deactivate)
			})

			r.Route("/payroll/rules", func(r chi.Router) {
				r.Post("/", h.Payroll.Create)
				r.Get("/", h.Payroll.List)
				r.Get("/applicable", h.Payroll.Applicable)
				r.Put("/{id}", h.Payroll.Update)
				r.Delete("/{id}", h.Payroll.Delete)
			})

			r.Route("/work-reports", func(r chi.Router) {
				r.Post("/shifts", h.WorkReport.CreateShiftReport)
				r.Get("/shifts", h.WorkReport.ListShiftReports)
				r.Post("/materials", h.WorkReport.CreateMaterialReport)
				r.Get("/materials", h.WorkReport.ListMaterialReports)
				r.Post("/activities", h.WorkReport.CreateActivityLog)
				r.Get("/activities", h.WorkReport.ListActivityLogs)
			})

			r.Post("/sync/bulk", h.WorkReport.BulkSync)
		})
	})

	return r
}
