package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RobertoAguirre/amn-backend-go/internal/domain/geofence"
	"github.com/RobertoAguirre/amn-backend-go/internal/domain/notification"
	"github.com/RobertoAguirre/amn-backend-go/internal/domain/payroll"
	"github.com/RobertoAguirre/amn-backend-go/internal/domain/schedule"
	"github.com/RobertoAguirre/amn-backend-go/internal/domain/tracking"
	"github.com/RobertoAguirre/amn-backend-go/internal/domain/workreport"
	"github.com/RobertoAguirre/amn-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError_DomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "zone not found",
			err:        geofence.ErrZoneNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "event not found",
			err:        tracking.ErrEventNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "duplicate event local_id",
			err:        tracking.ErrDuplicateLocalID,
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
		},
		{
			name:       "schedule not found",
			err:        schedule.ErrScheduleNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "notification not found",
			err:        notification.ErrNotificationNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "rule not found",
			err:        payroll.ErrRuleNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "duplicate report local_id",
			err:        workreport.ErrDuplicateLocalID,
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
		},
		{
			name:       "wrapped domain error",
			err:        errors.Join(errors.New("lookup failed"), schedule.ErrScheduleNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp Response
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestHandleError_ValidationErrors(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "employee_id", Message: "employee_id is required"},
		{Field: "latitude", Message: "latitude must be between -90 and 90"},
	}

	rec := httptest.NewRecorder()
	HandleError(rec, errs)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "employee_id is required", resp.Error.Details["employee_id"])
	assert.Equal(t, "latitude must be between -90 and 90", resp.Error.Details["latitude"])
}
