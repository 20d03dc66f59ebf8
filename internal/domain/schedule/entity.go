package schedule

import "time"

// WorkSchedule is either an employee-specific override (EmployeeID set) or a
// site-wide default (EmployeeID nil). Clock times are "HH:mm" in the
// configured reporting time zone; weekdays use 0=Sunday .. 6=Saturday.
type WorkSchedule struct {
	ID               string
	EmployeeID       *string
	SiteID           string
	Name             string
	Weekdays         []int
	ClockIn          string
	ClockOut         string
	ToleranceMinutes int
	MealStart        *string
	MealEnd          *string
	MealMinutes      int
	ExpectedHours    float64
	Active           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// AppliesOn reports whether weekday (0=Sunday) is one of the schedule's
// working days.
func (s *WorkSchedule) AppliesOn(weekday int) bool {
	for _, d := range s.Weekdays {
		if d == weekday {
			return true
		}
	}
	return false
}
