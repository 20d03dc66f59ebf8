package workreport

import (
	"strings"

	"github.com/RobertoAguirre/amn-backend-go/internal/pkg/validator"
)

type baseReportRequest struct {
	LocalID      string  `json:"local_id"`
	Date         string  `json:"date"`
	Shift        string  `json:"shift"`
	Operator     string  `json:"operator"`
	Supervisor   string  `json:"supervisor"`
	Line         string  `json:"line"`
	Product      string  `json:"product"`
	Batch        string  `json:"batch"`
	Observations *string `json:"observations,omitempty"`
	Signature    string  `json:"signature"`
}

func (r *baseReportRequest) validateBase() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LocalID) {
		errs = append(errs, validator.ValidationError{
			Field:   "local_id",
			Message: "local_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required and must be YYYY-MM-DD",
		})
	}
	if !validator.IsInSlice(r.Shift, ShiftKindValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift",
			Message: "shift must be one of: " + strings.Join(ShiftKindValues, ", "),
		})
	}
	for field, value := range map[string]string{
		"operator":   r.Operator,
		"supervisor": r.Supervisor,
		"line":       r.Line,
		"product":    r.Product,
		"batch":      r.Batch,
		"signature":  r.Signature,
	} {
		if validator.IsEmpty(value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " is required",
			})
		}
	}

	return errs
}

type CreateShiftReportRequest struct {
	baseReportRequest
	QuantityProduced *int `json:"quantity_produced"`
	QuantityRejected *int `json:"quantity_rejected"`
}

func (r *CreateShiftReportRequest) Validate() error {
	errs := r.validateBase()

	if r.QuantityProduced == nil || *r.QuantityProduced < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "quantity_produced",
			Message: "quantity_produced must be a non-negative number",
		})
	}
	if r.QuantityRejected == nil || *r.QuantityRejected < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "quantity_rejected",
			Message: "quantity_rejected must be a non-negative number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MaterialEntryRequest struct {
	Inspector       string `json:"inspector"`
	SortedPieces    *int   `json:"sorted_pieces"`
	AcceptedPieces  *int   `json:"accepted_pieces"`
	ReworkedPieces  *int   `json:"reworked_pieces"`
	RejectedPieces  *int   `json:"rejected_pieces"`
	RejectionReason string `json:"rejection_reason"`
}

type CreateMaterialReportRequest struct {
	baseReportRequest
	Materials []MaterialEntryRequest `json:"materials"`
}

func (r *CreateMaterialReportRequest) Validate() error {
	errs := r.validateBase()

	if len(r.Materials) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "materials",
			Message: "at least one material entry is required",
		})
	}
	for _, m := range r.Materials {
		if validator.IsEmpty(m.Inspector) || validator.IsEmpty(m.RejectionReason) {
			errs = append(errs, validator.ValidationError{
				Field:   "materials",
				Message: "every material entry requires inspector and rejection_reason",
			})
			break
		}
		for _, n := range []*int{m.SortedPieces, m.AcceptedPieces, m.ReworkedPieces, m.RejectedPieces} {
			if n == nil || *n < 0 {
				errs = append(errs, validator.ValidationError{
					Field:   "materials",
					Message: "every material entry requires non-negative piece counts",
				})
				break
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ActivityRequest struct {
	Code       *int   `json:"code"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	PartNumber string `json:"part_number"`
}

type CreateActivityLogRequest struct {
	baseReportRequest
	Activities []ActivityRequest `json:"activities"`
}

func (r *CreateActivityLogRequest) Validate() error {
	errs := r.validateBase()

	if len(r.Activities) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "activities",
			Message: "at least one activity is required",
		})
	}
	for _, a := range r.Activities {
		if a.Code == nil || *a.Code < 1 || *a.Code > 7 {
			errs = append(errs, validator.ValidationError{
				Field:   "activities",
				Message: "activity code must be between 1 and 7",
			})
			break
		}
		if !validator.IsValidClockTime(a.StartTime) || !validator.IsValidClockTime(a.EndTime) {
			errs = append(errs, validator.ValidationError{
				Field:   "activities",
				Message: "activity times must be HH:mm 24-hour format",
			})
			break
		}
		if validator.IsEmpty(a.PartNumber) {
			errs = append(errs, validator.ValidationError{
				Field:   "activities",
				Message: "every activity requires a part_number",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// BulkSyncRequest carries everything an offline device accumulated.
type BulkSyncRequest struct {
	ShiftReports    []CreateShiftReportRequest    `json:"shift_reports,omitempty"`
	MaterialReports []CreateMaterialReportRequest `json:"material_reports,omitempty"`
	ActivityLogs    []CreateActivityLogRequest    `json:"activity_logs,omitempty"`
}

type SyncItemError struct {
	LocalID string `json:"local_id"`
	Error   string `json:"error"`
}

type SyncCollectionResult struct {
	Succeeded int             `json:"succeeded"`
	Failed    int             `json:"failed"`
	Errors    []SyncItemError `json:"errors,omitempty"`
}

type BulkSyncResponse struct {
	ShiftReports    SyncCollectionResult `json:"shift_reports"`
	MaterialReports SyncCollectionResult `json:"material_reports"`
	ActivityLogs    SyncCollectionResult `json:"activity_logs"`
}

type ShiftReportResponse struct {
	ID               string  `json:"id"`
	LocalID          string  `json:"local_id"`
	Date             string  `json:"date"`
	Shift            string  `json:"shift"`
	Operator         string  `json:"operator"`
	Supervisor       string  `json:"supervisor"`
	Line             string  `json:"line"`
	Product          string  `json:"product"`
	Batch            string  `json:"batch"`
	QuantityProduced int     `json:"quantity_produced"`
	QuantityRejected int     `json:"quantity_rejected"`
	Observations     *string `json:"observations"`
	Synced           bool    `json:"synced"`
	CreatedAt        string  `json:"created_at"`
}

type MaterialEntryResponse struct {
	Inspector       string `json:"inspector"`
	SortedPieces    int    `json:"sorted_pieces"`
	AcceptedPieces  int    `json:"accepted_pieces"`
	ReworkedPieces  int    `json:"reworked_pieces"`
	RejectedPieces  int    `json:"rejected_pieces"`
	RejectionReason string `json:"rejection_reason"`
}

type MaterialReportResponse struct {
	ID           string                  `json:"id"`
	LocalID      string                  `json:"local_id"`
	Date         string                  `json:"date"`
	Shift        string                  `json:"shift"`
	Operator     string                  `json:"operator"`
	Supervisor   string                  `json:"supervisor"`
	Line         string                  `json:"line"`
	Product      string                  `json:"product"`
	Batch        string                  `json:"batch"`
	Materials    []MaterialEntryResponse `json:"materials"`
	Observations *string                 `json:"observations"`
	Synced       bool                    `json:"synced"`
	CreatedAt    string                  `json:"created_at"`
}

type ActivityResponse struct {
	Code       int    `json:"code"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	PartNumber string `json:"part_number"`
}

type ActivityLogResponse struct {
	ID           string             `json:"id"`
	LocalID      string             `json:"local_id"`
	Date         string             `json:"date"`
	Shift        string             `json:"shift"`
	Operator     string             `json:"operator"`
	Supervisor   string             `json:"supervisor"`
	Line         string             `json:"line"`
	Product      string             `json:"product"`
	Batch        string             `json:"batch"`
	Activities   []ActivityResponse `json:"activities"`
	Observations *string            `json:"observations"`
	Synced       bool               `json:"synced"`
	CreatedAt    string             `json:"created_at"`
}

type ListFilter struct {
	OperatorID string
	Page       int
	Limit      int
}

func (f *ListFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

type ListShiftReportResponse struct {
	TotalCount int64                 `json:"total_count"`
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
	Reports    []ShiftReportResponse `json:"reports"`
}

type ListMaterialReportResponse struct {
	TotalCount int64                    `json:"total_count"`
	Page       int                      `json:"page"`
	Limit      int                      `json:"limit"`
	Reports    []MaterialReportResponse `json:"reports"`
}

type ListActivityLogResponse struct {
	TotalCount int64                 `json:"total_count"`
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
	Reports    []ActivityLogResponse `json:"reports"`
}
