package tracking

import (
	"context"
	"time"
)

// EventRepository defines data access methods for attendance events.
type EventRepository interface {
	// Create appends a new event
	Create(ctx context.Context, event Event) (Event, error)

	// GetLastByEmployee retrieves the most recent event for an employee,
	// ErrEventNotFound when the employee has no history
	GetLastByEmployee(ctx context.Context, employeeID string) (Event, error)

	// GetByLocalID retrieves an event by its client-generated local_id,
	// used for offline sync dedupe
	GetByLocalID(ctx context.Context, localID string) (Event, error)

	// List retrieves events with filters and pagination, newest first
	List(ctx context.Context, filter EventFilter) ([]Event, int64, error)

	// ListForReport retrieves events in [from, to) strictly ordered by
	// employee then timestamp, as the timeline reconstruction requires
	ListForReport(ctx context.Context, from, to time.Time, employeeID, nameFilter *string) ([]Event, error)

	// HasEntryBetween reports whether the employee recorded an entry event
	// in [from, to); used by the missing-entry sweep
	HasEntryBetween(ctx context.Context, employeeID string, from, to time.Time) (bool, error)

	// ListActiveEmployees returns the distinct employees seen in events
	// since the given time, with the site of their most recent event;
	// the missing-entry sweep uses this as its roster
	ListActiveEmployees(ctx context.Context, since time.Time) ([]EmployeeRef, error)
}
