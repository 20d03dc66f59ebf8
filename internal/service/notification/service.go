package notification

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/RobertoAguirre/amn-backend-go/internal/domain/notification"
	"github.com/RobertoAguirre/amn-backend-go/internal/pkg/email"
	"github.com/RobertoAguirre/amn-backend-go/internal/pkg/sse"
	"github.com/google/uuid"
)

// Config holds notification service configuration
type Config struct {
	BatchSize     int           // default: 100
	FlushInterval time.Duration // default: 5 seconds
	WorkerCount   int           // default: 2
	QueueSize     int           // default: 1000
}

type service struct {
	repo     notification.Repository
	hub      *sse.Hub
	emailSvc email.EmailService
	config   Config

	queue  chan *notification.Notification
	wg     sync.WaitGroup
	stopCh chan struct{}
}

// NewNotificationService creates a new notification service with background
// workers. Emission is fire-and-forget: report generation never waits on or
// fails because of a notification write.
func NewNotificationService(repo notification.Repository, hub *sse.Hub, emailSvc email.EmailService, cfg Config) notification.Service {
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 100
	}
	if cfg.FlushInterval == 0 {
		cfg.FlushInterval = 5 * time.Second
	}
	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize == 0 {
		cfg.QueueSize = 1000
	}

	s := &service{
		repo:     repo,
		hub:      hub,
		emailSvc: emailSvc,
		config:   cfg,
		queue:    make(chan *notification.Notification, cfg.QueueSize),
		stopCh:   make(chan struct{}),
	}

	for i := 0; i < cfg.WorkerCount; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	slog.Info("Notification service started",
		"workers", cfg.WorkerCount,
		"batch_size", cfg.BatchSize,
		"flush_interval", cfg.FlushInterval)

	return s
}

// worker drains the queue in batches
func (s *service) worker(id int) {
	defer s.wg.Done()

	batch := make([]*notification.Notification, 0, s.config.BatchSize)
	ticker := time.NewTicker(s.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.repo.CreateBatch(ctx, batch); err != nil {
			slog.Error("Notification batch insert failed",
				"worker", id, "count", len(batch), "error", err)
		} else {
			for _, n := range batch {
				s.hub.Publish(sse.Event{
					Event: "notification",
					Data:  toResponse(n),
				})
				s.sendEmail(n)
			}
		}

		batch = batch[:0]
	}

	for {
		select {
		case n := <-s.queue:
			batch = append(batch, n)
			if len(batch) >= s.config.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-s.stopCh:
			// Drain whatever is still queued before the final flush
			for {
				select {
				case n := <-s.queue:
					batch = append(batch, n)
					if len(batch) >= s.config.BatchSize {
						flush()
					}
				default:
					flush()
					return
				}
			}
		}
	}
}

// sendEmail forwards high and urgent notifications to the supervisor inbox.
// Failures are logged and dropped.
func (s *service) sendEmail(n *notification.Notification) {
	if s.emailSvc == nil {
		return
	}
	if n.Priority != notification.PriorityHigh && n.Priority != notification.PriorityUrgent {
		return
	}
	if err := s.emailSvc.SendAlert(n.Title, n.Message); err != nil {
		slog.Error("Failed to email notification", "notification_id", n.ID, "error", err)
	}
}

func (s *service) Emit(ctx context.Context, req notification.EmitRequest) {
	n := s.build(req)

	select {
	case s.queue <- n:
	default:
		// Queue full: insert inline rather than dropping the intent
		if err := s.repo.Create(ctx, n); err != nil {
			slog.Error("Failed to store notification with full queue",
				"kind", req.Kind, "employee_id", req.EmployeeID, "error", err)
			return
		}
		s.hub.Publish(sse.Event{Event: "notification", Data: toResponse(n)})
		s.sendEmail(n)
	}
}

// build composes the stored notification from an intent. Titles and messages
// are Spanish-facing, matching what the dashboard displays.
func (s *service) build(req notification.EmitRequest) *notification.Notification {
	date := req.EventDate.Format("2006-01-02")

	var title, message string
	switch req.Kind {
	case notification.KindLateness:
		d, _ := req.Detail.(notification.LatenessDetail)
		title = fmt.Sprintf("Tardanza: %s", req.EmployeeName)
		message = fmt.Sprintf("%s llegó %.0f minutos tarde el %s (entrada esperada %s, registrada %s).",
			req.EmployeeName, d.MinutesOver, date, d.ExpectedIn, d.ActualIn)
	case notification.KindAbsence:
		title = fmt.Sprintf("Falta: %s", req.EmployeeName)
		message = fmt.Sprintf("%s no registró asistencia el %s.", req.EmployeeName, date)
	case notification.KindEarlyDeparture:
		d, _ := req.Detail.(notification.EarlyDepartureDetail)
		title = fmt.Sprintf("Salida anticipada: %s", req.EmployeeName)
		message = fmt.Sprintf("%s salió %.0f minutos antes el %s (salida esperada %s, registrada %s).",
			req.EmployeeName, d.MinutesEarly, date, d.ExpectedOut, d.ActualOut)
	case notification.KindMissingEntry:
		d, _ := req.Detail.(notification.MissingEntryDetail)
		title = fmt.Sprintf("Sin entrada: %s", req.EmployeeName)
		message = fmt.Sprintf("%s no ha registrado entrada el %s (esperada a las %s).",
			req.EmployeeName, date, d.ExpectedIn)
	case notification.KindOvertime:
		d, _ := req.Detail.(notification.OvertimeDetail)
		title = fmt.Sprintf("Horas extra: %s", req.EmployeeName)
		message = fmt.Sprintf("%s acumuló %.2f horas extra el %s.", req.EmployeeName, d.HoursOver, date)
	default:
		d, _ := req.Detail.(notification.SystemDetail)
		title = "Aviso del sistema"
		message = d.Note
	}

	employeeID := req.EmployeeID
	employeeName := req.EmployeeName
	eventDate := req.EventDate

	return &notification.Notification{
		ID:           uuid.New().String(),
		Type:         req.Kind,
		Title:        title,
		Message:      message,
		EmployeeID:   &employeeID,
		EmployeeName: &employeeName,
		SiteID:       req.SiteID,
		EventDate:    &eventDate,
		Route:        "/payroll",
		RouteParams: &notification.RouteParams{
			EmployeeName: req.EmployeeName,
			DateFrom:     date,
			DateTo:       date,
		},
		Detail:    req.Detail,
		Priority:  req.Priority,
		Active:    true,
		CreatedAt: time.Now(),
	}
}

func (s *service) List(ctx context.Context, filter notification.ListFilter) (notification.ListNotificationResponse, error) {
	if err := filter.Validate(); err != nil {
		return notification.ListNotificationResponse{}, err
	}

	notifications, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return notification.ListNotificationResponse{}, fmt.Errorf("failed to list notifications: %w", err)
	}

	unread, err := s.repo.UnreadCount(ctx)
	if err != nil {
		return notification.ListNotificationResponse{}, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	responses := make([]notification.NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = toResponse(n)
	}

	return notification.ListNotificationResponse{
		TotalCount:    total,
		UnreadCount:   unread,
		Limit:         filter.Limit,
		Offset:        filter.Offset,
		Notifications: responses,
	}, nil
}

func (s *service) UnreadCount(ctx context.Context) (int64, error) {
	return s.repo.UnreadCount(ctx)
}

func (s *service) MarkRead(ctx context.Context, id string) error {
	return s.repo.MarkRead(ctx, id)
}

func (s *service) MarkAllRead(ctx context.Context) error {
	return s.repo.MarkAllRead(ctx)
}

func (s *service) Deactivate(ctx context.Context, id string) error {
	return s.repo.Deactivate(ctx, id)
}

func (s *service) Subscribe() (chan sse.Event, func()) {
	return s.hub.Subscribe()
}

// Stop flushes pending notifications and stops the workers
func (s *service) Stop() {
	close(s.stopCh)
	s.wg.Wait()
	slog.Info("Notification service stopped")
}

func toResponse(n *notification.Notification) notification.NotificationResponse {
	resp := notification.NotificationResponse{
		ID:           n.ID,
		Type:         string(n.Type),
		Title:        n.Title,
		Message:      n.Message,
		EmployeeID:   n.EmployeeID,
		EmployeeName: n.EmployeeName,
		SiteID:       n.SiteID,
		Route:        n.Route,
		RouteParams:  n.RouteParams,
		Detail:       n.Detail,
		Priority:     string(n.Priority),
		Read:         n.Read,
		CreatedAt:    n.CreatedAt.Format(time.RFC3339),
	}
	if n.EventDate != nil {
		d := n.EventDate.Format("2006-01-02")
		resp.EventDate = &d
	}
	if n.ReadAt != nil {
		t := n.ReadAt.Format(time.RFC3339)
		resp.ReadAt = &t
	}
	return resp
}
