package schedule

import (
	"github.com/RobertoAguirre/amn-backend-go/internal/pkg/validator"
)

type CreateWorkScheduleRequest struct {
	EmployeeID       *string `json:"employee_id,omitempty"`
	SiteID           string  `json:"site_id"`
	Name             string  `json:"name"`
	Weekdays         []int   `json:"weekdays"`
	ClockIn          string  `json:"clock_in"`
	ClockOut         string  `json:"clock_out"`
	ToleranceMinutes *int    `json:"tolerance_minutes,omitempty"`
	MealStart        *string `json:"meal_start,omitempty"`
	MealEnd          *string `json:"meal_end,omitempty"`
	MealMinutes      *int    `json:"meal_minutes,omitempty"`
	ExpectedHours    *float64 `json:"expected_hours,omitempty"`
	Active           *bool   `json:"active,omitempty"`
}

func (r *CreateWorkScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SiteID) {
		errs = append(errs, validator.ValidationError{
			Field:   "site_id",
			Message: "site_id is required",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !validator.IsValidWeekdays(r.Weekdays) {
		errs = append(errs, validator.ValidationError{
			Field:   "weekdays",
			Message: "weekdays must be a non-empty set of values 0 (Sunday) to 6 (Saturday)",
		})
	}
	if !validator.IsValidClockTime(r.ClockIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in",
			Message: "clock_in must be HH:mm 24-hour format",
		})
	}
	if !validator.IsValidClockTime(r.ClockOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_out",
			Message: "clock_out must be HH:mm 24-hour format",
		})
	}
	if r.ToleranceMinutes != nil && *r.ToleranceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "tolerance_minutes",
			Message: "tolerance_minutes must be a non-negative number",
		})
	}
	if r.MealStart != nil && !validator.IsValidClockTime(*r.MealStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "meal_start",
			Message: "meal_start must be HH:mm 24-hour format",
		})
	}
	if r.MealEnd != nil && !validator.IsValidClockTime(*r.MealEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "meal_end",
			Message: "meal_end must be HH:mm 24-hour format",
		})
	}
	if r.MealMinutes != nil && *r.MealMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "meal_minutes",
			Message: "meal_minutes must be a non-negative number",
		})
	}
	if r.ExpectedHours != nil && (*r.ExpectedHours <= 0 || *r.ExpectedHours > 24) {
		errs = append(errs, validator.ValidationError{
			Field:   "expected_hours",
			Message: "expected_hours must be between 0 and 24",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Defaults mirrors the historic behavior: 15 minutes of entry tolerance, a
// 60-minute meal and an 8-hour working day unless stated otherwise.
func (r *CreateWorkScheduleRequest) Defaults() (tolerance, mealMinutes int, expectedHours float64, active bool) {
	tolerance = 15
	if r.ToleranceMinutes != nil {
		tolerance = *r.ToleranceMinutes
	}
	mealMinutes = 60
	if r.MealMinutes != nil {
		mealMinutes = *r.MealMinutes
	}
	expectedHours = 8
	if r.ExpectedHours != nil {
		expectedHours = *r.ExpectedHours
	}
	active = true
	if r.Active != nil {
		active = *r.Active
	}
	return tolerance, mealMinutes, expectedHours, active
}

type UpdateWorkScheduleRequest struct {
	Name             *string  `json:"name,omitempty"`
	Weekdays         []int    `json:"weekdays,omitempty"`
	ClockIn          *string  `json:"clock_in,omitempty"`
	ClockOut         *string  `json:"clock_out,omitempty"`
	ToleranceMinutes *int     `json:"tolerance_minutes,omitempty"`
	MealStart        *string  `json:"meal_start,omitempty"`
	MealEnd          *string  `json:"meal_end,omitempty"`
	MealMinutes      *int     `json:"meal_minutes,omitempty"`
	ExpectedHours    *float64 `json:"expected_hours,omitempty"`
	Active           *bool    `json:"active,omitempty"`
}

func (r *UpdateWorkScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Weekdays != nil && !validator.IsValidWeekdays(r.Weekdays) {
		errs = append(errs, validator.ValidationError{
			Field:   "weekdays",
			Message: "weekdays must be a non-empty set of values 0 (Sunday) to 6 (Saturday)",
		})
	}
	if r.ClockIn != nil && !validator.IsValidClockTime(*r.ClockIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in",
			Message: "clock_in must be HH:mm 24-hour format",
		})
	}
	if r.ClockOut != nil && !validator.IsValidClockTime(*r.ClockOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_out",
			Message: "clock_out must be HH:mm 24-hour format",
		})
	}
	if r.MealStart != nil && !validator.IsValidClockTime(*r.MealStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "meal_start",
			Message: "meal_start must be HH:mm 24-hour format",
		})
	}
	if r.MealEnd != nil && !validator.IsValidClockTime(*r.MealEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "meal_end",
			Message: "meal_end must be HH:mm 24-hour format",
		})
	}
	if r.ToleranceMinutes != nil && *r.ToleranceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "tolerance_minutes",
			Message: "tolerance_minutes must be a non-negative number",
		})
	}
	if r.MealMinutes != nil && *r.MealMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "meal_minutes",
			Message: "meal_minutes must be a non-negative number",
		})
	}
	if r.ExpectedHours != nil && (*r.ExpectedHours <= 0 || *r.ExpectedHours > 24) {
		errs = append(errs, validator.ValidationError{
			Field:   "expected_hours",
			Message: "expected_hours must be between 0 and 24",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WorkScheduleResponse struct {
	ID               string   `json:"id"`
	EmployeeID       *string  `json:"employee_id"`
	SiteID           string   `json:"site_id"`
	Name             string   `json:"name"`
	Weekdays         []int    `json:"weekdays"`
	ClockIn          string   `json:"clock_in"`
	ClockOut         string   `json:"clock_out"`
	ToleranceMinutes int      `json:"tolerance_minutes"`
	MealStart        *string  `json:"meal_start"`
	MealEnd          *string  `json:"meal_end"`
	MealMinutes      int      `json:"meal_minutes"`
	ExpectedHours    float64  `json:"expected_hours"`
	Active           bool     `json:"active"`
	CreatedAt        string   `json:"created_at"`
	UpdatedAt        string   `json:"updated_at"`
}
