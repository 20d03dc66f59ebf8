package response

import (
	"errors"
	"net/http"

	"github.com/RobertoAguirre/amn-backend-go/internal/domain/geofence"
	"github.com/RobertoAguirre/amn-backend-go/internal/domain/notification"
	"github.com/RobertoAguirre/amn-backend-go/internal/domain/payroll"
	"github.com/RobertoAguirre/amn-backend-go/internal/domain/schedule"
	"github.com/RobertoAguirre/amn-backend-go/internal/domain/tracking"
	"github.com/RobertoAguirre/amn-backend-go/internal/domain/workreport"
	"github.com/RobertoAguirre/amn-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Geofence domain errors
	case errors.Is(err, geofence.ErrZoneNotFound):
		NotFound(w, "Geofence zone not found")

	// Tracking domain errors
	case errors.Is(err, tracking.ErrEventNotFound):
		NotFound(w, "Attendance event not found")
	case errors.Is(err, tracking.ErrDuplicateLocalID):
		Conflict(w, "Event with this local_id already exists")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Work schedule not found")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrRuleNotFound):
		NotFound(w, "Payroll rule not found")

	// Work report domain errors
	case errors.Is(err, workreport.ErrReportNotFound):
		NotFound(w, "Work report not found")
	case errors.Is(err, workreport.ErrDuplicateLocalID):
		Conflict(w, "Report with this local_id already exists")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
