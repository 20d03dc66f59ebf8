package tracking

import (
	"strings"

	"github.com/RobertoAguirre/amn-backend-go/internal/pkg/validator"
)

type IngestEventRequest struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	// EventKind, when supplied, overrides automatic classification
	// (e.g. manually flagged meal_start/meal_resume).
	EventKind *string `json:"event_kind,omitempty"`
	SiteID    *string `json:"site_id,omitempty"`
	SiteName  *string `json:"site_name,omitempty"`
	// Timestamp defaults to server time when omitted. Supplied values are
	// stored as-is; offline events arrive hours late.
	Timestamp *string `json:"timestamp,omitempty"`
	LocalID   *string `json:"local_id,omitempty"`
}

func (r *IngestEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.EmployeeName) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_name",
			Message: "employee_name is required",
		})
	}
	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}
	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}
	if r.EventKind != nil && !validator.IsInSlice(*r.EventKind, EventKindValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "event_kind",
			Message: "event_kind must be one of: " + strings.Join(EventKindValues, ", "),
		})
	}
	if r.Timestamp != nil {
		if _, ok := validator.IsValidDateTime(*r.Timestamp); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be a valid ISO8601 datetime",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BulkIngestRequest struct {
	Events []IngestEventRequest `json:"events"`
}

type BulkIngestItemError struct {
	LocalID *string `json:"local_id,omitempty"`
	Error   string  `json:"error"`
}

// BulkIngestResponse mirrors the mobile sync contract: per-item accounting,
// the batch itself never fails wholesale.
type BulkIngestResponse struct {
	Succeeded int                   `json:"succeeded"`
	Failed    int                   `json:"failed"`
	Errors    []BulkIngestItemError `json:"errors,omitempty"`
}

type EventResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	SiteID       *string `json:"site_id"`
	SiteName     *string `json:"site_name"`
	EventKind    string  `json:"event_kind"`
	OccurredAt   string  `json:"occurred_at"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Synced       bool    `json:"synced"`
}

type IngestEventResponse struct {
	Event EventResponse `json:"event"`
	// Zone the ping resolved to, null when outside every zone.
	ZoneID   *string `json:"zone_id"`
	ZoneName *string `json:"zone_name"`
}

type EventFilter struct {
	EmployeeID *string
	DateFrom   *string
	DateTo     *string
	Page       int
	Limit      int
}

func (f *EventFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 200 {
		f.Limit = 50
	}
	if f.DateFrom != nil {
		if _, ok := validator.IsValidDate(*f.DateFrom); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_from",
				Message: "date_from must be YYYY-MM-DD",
			})
		}
	}
	if f.DateTo != nil {
		if _, ok := validator.IsValidDate(*f.DateTo); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_to",
				Message: "date_to must be YYYY-MM-DD",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListEventResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	Events     []EventResponse `json:"events"`
}
