package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/RobertoAguirre/amn-backend-go/internal/domain/notification"
	"github.com/RobertoAguirre/amn-backend-go/internal/domain/schedule"
	"github.com/RobertoAguirre/amn-backend-go/internal/domain/tracking"
	"github.com/RobertoAguirre/amn-backend-go/internal/pkg/validator"
)

// rosterLookback bounds how far back the sweep looks for employees to check.
// An employee with no events for this long is treated as off the roster.
const rosterLookback = 7 * 24 * time.Hour

// SweepJobs runs the missing-entry check: employees on an active schedule who
// have not recorded an entry after clock-in plus tolerance get one
// notification per local day.
type SweepJobs struct {
	eventRepo        tracking.EventRepository
	scheduleSvc      schedule.WorkScheduleService
	notificationRepo notification.Repository
	notificationSvc  notification.Service
	loc              *time.Location
	interval         time.Duration
}

func NewSweepJobs(
	eventRepo tracking.EventRepository,
	scheduleSvc schedule.WorkScheduleService,
	notificationRepo notification.Repository,
	notificationSvc notification.Service,
	loc *time.Location,
	interval time.Duration,
) *SweepJobs {
	return &SweepJobs{
		eventRepo:        eventRepo,
		scheduleSvc:      scheduleSvc,
		notificationRepo: notificationRepo,
		notificationSvc:  notificationSvc,
		loc:              loc,
		interval:         interval,
	}
}

func (j *SweepJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("missing_entry_sweep", j.interval, j.SweepMissingEntries)
}

func (j *SweepJobs) SweepMissingEntries(ctx context.Context) error {
	now := time.Now().In(j.loc)
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, j.loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	employees, err := j.eventRepo.ListActiveEmployees(ctx, now.Add(-rosterLookback))
	if err != nil {
		return fmt.Errorf("failed to list active employees: %w", err)
	}
	if len(employees) == 0 {
		return nil
	}

	emitted := 0
	for _, emp := range employees {
		if emp.SiteID == nil {
			// Never seen inside a site, no schedule can apply
			continue
		}

		sched, err := j.scheduleSvc.Match(ctx, emp.EmployeeID, *emp.SiteID)
		if err != nil {
			slog.Error("Cron: schedule match failed",
				"employee_id", emp.EmployeeID, "error", err)
			continue
		}
		if sched == nil || !sched.AppliesOn(int(now.Weekday())) {
			continue
		}

		clockInMins, err := validator.ParseClockTime(sched.ClockIn)
		if err != nil {
			slog.Error("Cron: schedule has invalid clock-in time",
				"schedule_id", sched.ID, "clock_in", sched.ClockIn, "error", err)
			continue
		}

		deadline := dayStart.Add(time.Duration(clockInMins+sched.ToleranceMinutes) * time.Minute)
		if now.Before(deadline) {
			continue
		}

		hasEntry, err := j.eventRepo.HasEntryBetween(ctx, emp.EmployeeID, dayStart, now)
		if err != nil {
			slog.Error("Cron: entry lookup failed",
				"employee_id", emp.EmployeeID, "error", err)
			continue
		}
		if hasEntry {
			continue
		}

		exists, err := j.notificationRepo.ExistsForEmployeeOnDate(
			ctx, notification.KindMissingEntry, emp.EmployeeID, dayStart, dayEnd)
		if err != nil {
			slog.Error("Cron: notification dedupe lookup failed",
				"employee_id", emp.EmployeeID, "error", err)
			continue
		}
		if exists {
			continue
		}

		j.notificationSvc.Emit(ctx, notification.EmitRequest{
			Kind:         notification.KindMissingEntry,
			EmployeeID:   emp.EmployeeID,
			EmployeeName: emp.EmployeeName,
			SiteID:       emp.SiteID,
			EventDate:    dayStart,
			Priority:     notification.PriorityHigh,
			Detail:       notification.MissingEntryDetail{ExpectedIn: sched.ClockIn},
		})
		emitted++
	}

	if emitted > 0 {
		slog.Info("Cron: missing-entry sweep emitted notifications", "count", emitted)
	}
	return nil
}
