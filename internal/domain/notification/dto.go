package notification

import (
	"time"

	"github.com/RobertoAguirre/amn-backend-go/internal/pkg/validator"
)

// EmitRequest is what the payroll evaluator and the missing-entry sweep hand
// to the emitter. Title and message are composed by the service.
type EmitRequest struct {
	Kind         Kind
	EmployeeID   string
	EmployeeName string
	SiteID       *string
	EventDate    time.Time
	Priority     Priority
	Detail       Detail
}

type ListFilter struct {
	Read       *bool
	Kind       *string
	EmployeeID *string
	SiteID     *string
	Limit      int
	Offset     int
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Limit < 1 || f.Limit > 200 {
		f.Limit = 50
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	if f.Kind != nil && !validator.IsInSlice(*f.Kind, KindValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "unknown notification kind",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type NotificationResponse struct {
	ID           string       `json:"id"`
	Type         string       `json:"type"`
	Title        string       `json:"title"`
	Message      string       `json:"message"`
	EmployeeID   *string      `json:"employee_id"`
	EmployeeName *string      `json:"employee_name"`
	SiteID       *string      `json:"site_id"`
	EventDate    *string      `json:"event_date"`
	Route        string       `json:"route"`
	RouteParams  *RouteParams `json:"route_params,omitempty"`
	Detail       Detail       `json:"detail,omitempty"`
	Priority     string       `json:"priority"`
	Read         bool         `json:"read"`
	ReadAt       *string      `json:"read_at"`
	CreatedAt    string       `json:"created_at"`
}

type ListNotificationResponse struct {
	TotalCount    int64                  `json:"total_count"`
	UnreadCount   int64                  `json:"unread_count"`
	Limit         int                    `json:"limit"`
	Offset        int                    `json:"offset"`
	Notifications []NotificationResponse `json:"notifications"`
}
