package schedule

import "context"

// WorkScheduleRepository defines data access methods for work schedules.
type WorkScheduleRepository interface {
	// Create persists a new schedule
	Create(ctx context.Context, schedule WorkSchedule) (WorkSchedule, error)

	// GetByID retrieves a schedule by ID
	GetByID(ctx context.Context, id string) (WorkSchedule, error)

	// List retrieves schedules with optional site filter
	List(ctx context.Context, siteID *string) ([]WorkSchedule, error)

	// ListActiveForMatch retrieves the active schedules relevant to an
	// (employee, site) pair: employee-specific rows first, then site-wide
	// rows, each tier ordered by created_at so matching is deterministic
	ListActiveForMatch(ctx context.Context, employeeID, siteID string) ([]WorkSchedule, error)

	// Update replaces a schedule's mutable fields
	Update(ctx context.Context, schedule WorkSchedule) error

	// Delete removes a schedule
	Delete(ctx context.Context, id string) error
}
