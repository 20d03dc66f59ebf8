package report

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/RobertoAguirre/amn-backend-go/internal/domain/notification"
	"github.com/RobertoAguirre/amn-backend-go/internal/domain/report"
	"github.com/RobertoAguirre/amn-backend-go/internal/domain/schedule"
	"github.com/RobertoAguirre/amn-backend-go/internal/domain/tracking"
)

type service struct {
	eventRepo       tracking.EventRepository
	scheduleSvc     schedule.WorkScheduleService
	notificationSvc notification.Service
	loc             *time.Location
}

// NewReportService creates a new attendance report service
func NewReportService(
	eventRepo tracking.EventRepository,
	scheduleSvc schedule.WorkScheduleService,
	notificationSvc notification.Service,
	loc *time.Location,
) report.Service {
	return &service{
		eventRepo:       eventRepo,
		scheduleSvc:     scheduleSvc,
		notificationSvc: notificationSvc,
		loc:             loc,
	}
}

func (s *service) Generate(ctx context.Context, filter report.Filter) (report.Response, error) {
	if err := filter.Validate(); err != nil {
		return report.Response{}, err
	}

	fromDay, err := time.ParseInLocation("2006-01-02", filter.DateFrom, s.loc)
	if err != nil {
		return report.Response{}, fmt.Errorf("failed to parse date_from: %w", err)
	}
	toDay, err := time.ParseInLocation("2006-01-02", filter.DateTo, s.loc)
	if err != nil {
		return report.Response{}, fmt.Errorf("failed to parse date_to: %w", err)
	}

	// Range is inclusive of date_to's whole day
	events, err := s.eventRepo.ListForReport(ctx, fromDay, toDay.AddDate(0, 0, 1), filter.EmployeeID, filter.EmployeeName)
	if err != nil {
		return report.Response{}, fmt.Errorf("failed to load events: %w", err)
	}

	rows, err := s.buildRows(ctx, events, fromDay, toDay)
	if err != nil {
		return report.Response{}, err
	}

	return report.Response{
		DateFrom: filter.DateFrom,
		DateTo:   filter.DateTo,
		Timezone: s.loc.String(),
		Rows:     rows,
	}, nil
}

// buildRows groups events per employee, reconstructs their timelines and
// evaluates them against matched schedules.
func (s *service) buildRows(ctx context.Context, events []tracking.Event, fromDay, toDay time.Time) ([]report.EmployeeRow, error) {
	grouped := make(map[string][]tracking.Event)
	var order []string
	for _, e := range events {
		if _, seen := grouped[e.EmployeeID]; !seen {
			order = append(order, e.EmployeeID)
		}
		grouped[e.EmployeeID] = append(grouped[e.EmployeeID], e)
	}

	rows := make([]report.EmployeeRow, 0, len(order))
	for _, employeeID := range order {
		empEvents := grouped[employeeID]

		subject := evalSubject{EmployeeID: employeeID}
		var siteName *string
		for i := len(empEvents) - 1; i >= 0; i-- {
			if subject.EmployeeName == "" && empEvents[i].EmployeeName != "" {
				subject.EmployeeName = empEvents[i].EmployeeName
			}
			if subject.SiteID == nil && empEvents[i].SiteID != nil {
				subject.SiteID = empEvents[i].SiteID
				siteName = empEvents[i].SiteName
			}
			if subject.EmployeeName != "" && subject.SiteID != nil {
				break
			}
		}

		var sched *schedule.WorkSchedule
		if subject.SiteID != nil {
			var err error
			sched, err = s.scheduleSvc.Match(ctx, employeeID, *subject.SiteID)
			if err != nil {
				return nil, fmt.Errorf("failed to match schedule for employee %s: %w", employeeID, err)
			}
		}

		days := reconstruct(empEvents, s.loc)
		agg := evaluate(subject, days, fromDay, toDay, sched, s.loc, func(req notification.EmitRequest) {
			s.notificationSvc.Emit(ctx, req)
		})

		row := report.EmployeeRow{
			EmployeeID:     employeeID,
			EmployeeName:   subject.EmployeeName,
			SiteID:         subject.SiteID,
			SiteName:       siteName,
			InsideHours:    round2(agg.InsideMinutes / 60),
			MealHours:      round2(agg.MealMinutes / 60),
			EffectiveHours: round2(agg.EffectiveMinutes / 60),
			DaysWorked:     agg.DaysWorked,
		}
		if agg.Schedule != nil {
			row.Schedule = &report.ScheduleAggregates{
				ScheduleName:        agg.Schedule.ScheduleName,
				ExpectedHours:       round2(agg.Schedule.ExpectedMinutes / 60),
				DeltaHours:          round2((agg.EffectiveMinutes - agg.Schedule.ExpectedMinutes) / 60),
				DaysAbsent:          agg.Schedule.DaysAbsent,
				LatenessCount:       agg.Schedule.LatenessCount,
				LateMinutes:         round2(agg.Schedule.LateMinutes),
				EarlyDepartureCount: agg.Schedule.EarlyDepartureCount,
				EarlyMinutes:        round2(agg.Schedule.EarlyMinutes),
				OvertimeHours:       round2(agg.Schedule.OvertimeMinutes / 60),
			}
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].EmployeeName < rows[j].EmployeeName
	})

	return rows, nil
}

// round2 rounds to 2 decimal places. Only the response assembly calls it;
// intermediate accumulations stay unrounded.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
