package notification

import "time"

// Kind represents the type of notification
type Kind string

const (
	KindLateness       Kind = "lateness"
	KindAbsence        Kind = "absence"
	KindEarlyDeparture Kind = "early_departure"
	KindMissingEntry   Kind = "missing_entry"
	KindOvertime       Kind = "overtime"
	KindSystem         Kind = "system"
)

var KindValues = []string{
	string(KindLateness),
	string(KindAbsence),
	string(KindEarlyDeparture),
	string(KindMissingEntry),
	string(KindOvertime),
	string(KindSystem),
}

// Priority levels
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Detail is the per-kind payload attached to a notification. Each kind has
// its own concrete type; there is no open-ended field map.
type Detail interface {
	Kind() Kind
}

type LatenessDetail struct {
	MinutesOver float64 `json:"minutes_over"`
	ExpectedIn  string  `json:"expected_in"`
	ActualIn    string  `json:"actual_in"`
}

func (LatenessDetail) Kind() Kind { return KindLateness }

type AbsenceDetail struct {
	Date string `json:"date"`
}

func (AbsenceDetail) Kind() Kind { return KindAbsence }

type EarlyDepartureDetail struct {
	MinutesEarly float64 `json:"minutes_early"`
	ExpectedOut  string  `json:"expected_out"`
	ActualOut    string  `json:"actual_out"`
}

func (EarlyDepartureDetail) Kind() Kind { return KindEarlyDeparture }

type MissingEntryDetail struct {
	ExpectedIn string `json:"expected_in"`
}

func (MissingEntryDetail) Kind() Kind { return KindMissingEntry }

type OvertimeDetail struct {
	HoursOver float64 `json:"hours_over"`
}

func (OvertimeDetail) Kind() Kind { return KindOvertime }

type SystemDetail struct {
	Note string `json:"note"`
}

func (SystemDetail) Kind() Kind { return KindSystem }

// RouteParams are the query parameters the dashboard applies when navigating
// from a notification (always a payroll view filtered to one employee/range).
type RouteParams struct {
	EmployeeName string `json:"employee_name"`
	DateFrom     string `json:"date_from"`
	DateTo       string `json:"date_to"`
}

// Notification is a derived intent persisted for the dashboard; the
// evaluator produces them, it never owns their delivery.
type Notification struct {
	ID           string
	Type         Kind
	Title        string
	Message      string
	EmployeeID   *string
	EmployeeName *string
	SiteID       *string
	EventDate    *time.Time
	Route        string
	RouteParams  *RouteParams
	Detail       Detail
	Priority     Priority
	Read         bool
	ReadAt       *time.Time
	Active       bool
	CreatedAt    time.Time
}
