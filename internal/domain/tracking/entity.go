package tracking

import "time"

type EventKind string

const (
	EventEntry       EventKind = "entry"
	EventExit        EventKind = "exit"
	EventInside      EventKind = "inside"
	EventOutside     EventKind = "outside"
	EventMealStart   EventKind = "meal_start"
	EventMealResume  EventKind = "meal_resume"
	EventRawLocation EventKind = "raw_location"
)

var EventKindValues = []string{
	string(EventEntry),
	string(EventExit),
	string(EventInside),
	string(EventOutside),
	string(EventMealStart),
	string(EventMealResume),
	string(EventRawLocation),
}

// Event is one observed or inferred attendance sample for an employee.
// Events are append-only: reconstruction reads them back in bulk but never
// mutates them.
type Event struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	SiteID       *string
	SiteName     *string
	Kind         EventKind
	OccurredAt   time.Time
	Latitude     float64
	Longitude    float64
	Synced       bool
	LocalID      *string
	CreatedAt    time.Time
}

// InsideSite reports whether the event left the employee inside a site. Exit
// and outside events clear site membership even though they may still carry
// the site the employee left.
func (e *Event) InsideSite() bool {
	return e.SiteID != nil && e.Kind != EventExit && e.Kind != EventOutside
}

// EmployeeRef identifies an employee known only through their events.
type EmployeeRef struct {
	EmployeeID   string
	EmployeeName string
	SiteID       *string
}
