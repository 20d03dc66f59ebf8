package report

import (
	"github.com/RobertoAguirre/amn-backend-go/internal/pkg/validator"
)

type Filter struct {
	// DateFrom/DateTo are YYYY-MM-DD; the range is inclusive of DateTo's
	// whole day.
	DateFrom     string
	DateTo       string
	EmployeeID   *string
	EmployeeName *string
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	from, okFrom := validator.IsValidDate(f.DateFrom)
	if !okFrom {
		errs = append(errs, validator.ValidationError{
			Field:   "date_from",
			Message: "date_from is required and must be YYYY-MM-DD",
		})
	}
	to, okTo := validator.IsValidDate(f.DateTo)
	if !okTo {
		errs = append(errs, validator.ValidationError{
			Field:   "date_to",
			Message: "date_to is required and must be YYYY-MM-DD",
		})
	}
	if okFrom && okTo && to.Before(from) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_to",
			Message: "date_to must not precede date_from",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ScheduleAggregates holds the schedule-comparison fields of a report row.
// They exist only when a schedule matched; a nil block means "not
// applicable", which is distinct from zero deviation.
type ScheduleAggregates struct {
	ScheduleName        string  `json:"schedule_name"`
	ExpectedHours       float64 `json:"expected_hours"`
	DeltaHours          float64 `json:"delta_hours"`
	DaysAbsent          int     `json:"days_absent"`
	LatenessCount       int     `json:"lateness_count"`
	LateMinutes         float64 `json:"late_minutes"`
	EarlyDepartureCount int     `json:"early_departure_count"`
	EarlyMinutes        float64 `json:"early_minutes"`
	OvertimeHours       float64 `json:"overtime_hours"`
}

type EmployeeRow struct {
	EmployeeID     string              `json:"employee_id"`
	EmployeeName   string              `json:"employee_name"`
	SiteID         *string             `json:"site_id"`
	SiteName       *string             `json:"site_name"`
	InsideHours    float64             `json:"inside_hours"`
	MealHours      float64             `json:"meal_hours"`
	EffectiveHours float64             `json:"effective_hours"`
	DaysWorked     int                 `json:"days_worked"`
	Schedule       *ScheduleAggregates `json:"schedule,omitempty"`
}

type Response struct {
	DateFrom string        `json:"date_from"`
	DateTo   string        `json:"date_to"`
	Timezone string        `json:"timezone"`
	Rows     []EmployeeRow `json:"rows"`
}
