package schedule

import "context"

// WorkScheduleService defines business logic for work schedules.
type WorkScheduleService interface {
	// CreateSchedule creates a schedule
	CreateSchedule(ctx context.Context, req CreateWorkScheduleRequest) (WorkScheduleResponse, error)

	// ListSchedules lists schedules with an optional site filter
	ListSchedules(ctx context.Context, siteID *string) ([]WorkScheduleResponse, error)

	// UpdateSchedule updates a schedule
	UpdateSchedule(ctx context.Context, id string, req UpdateWorkScheduleRequest) (WorkScheduleResponse, error)

	// DeleteSchedule removes a schedule
	DeleteSchedule(ctx context.Context, id string) error

	// Match resolves the applicable schedule for an (employee, site) pair:
	// employee-specific override first, else the site-wide default, else nil
	Match(ctx context.Context, employeeID, siteID string) (*WorkSchedule, error)
}
