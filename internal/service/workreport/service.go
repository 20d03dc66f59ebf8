package workreport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RobertoAguirre/amn-backend-go/internal/domain/workreport"
	"github.com/google/uuid"
)

type service struct {
	repo workreport.Repository
}

// NewWorkReportService creates a new work report service
func NewWorkReportService(repo workreport.Repository) workreport.Service {
	return &service{repo: repo}
}

func (s *service) CreateShiftReport(ctx context.Context, operatorID string, req workreport.CreateShiftReportRequest) (workreport.ShiftReportResponse, error) {
	if err := req.Validate(); err != nil {
		return workreport.ShiftReportResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return workreport.ShiftReportResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	now := time.Now()
	r := workreport.ShiftReport{
		ID:               uuid.New().String(),
		LocalID:          req.LocalID,
		OperatorID:       operatorID,
		Date:             date,
		Shift:            workreport.ShiftKind(req.Shift),
		Operator:         req.Operator,
		Supervisor:       req.Supervisor,
		Line:             req.Line,
		Product:          req.Product,
		Batch:            req.Batch,
		QuantityProduced: *req.QuantityProduced,
		QuantityRejected: *req.QuantityRejected,
		Observations:     req.Observations,
		Signature:        req.Signature,
		Synced:           true,
		SyncedAt:         &now,
		CreatedAt:        now,
	}

	created, err := s.repo.CreateShiftReport(ctx, r)
	if err != nil {
		return workreport.ShiftReportResponse{}, err
	}
	return toShiftResponse(created), nil
}

func (s *service) ListShiftReports(ctx context.Context, filter workreport.ListFilter) (workreport.ListShiftReportResponse, error) {
	filter.Normalize()

	reports, total, err := s.repo.ListShiftReports(ctx, filter.OperatorID, filter.Page, filter.Limit)
	if err != nil {
		return workreport.ListShiftReportResponse{}, fmt.Errorf("failed to list shift reports: %w", err)
	}

	responses := make([]workreport.ShiftReportResponse, len(reports))
	for i, r := range reports {
		responses[i] = toShiftResponse(r)
	}

	return workreport.ListShiftReportResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Reports:    responses,
	}, nil
}

func (s *service) CreateMaterialReport(ctx context.Context, operatorID string, req workreport.CreateMaterialReportRequest) (workreport.MaterialReportResponse, error) {
	if err := req.Validate(); err != nil {
		return workreport.MaterialReportResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return workreport.MaterialReportResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	materials := make([]workreport.MaterialEntry, len(req.Materials))
	for i, m := range req.Materials {
		materials[i] = workreport.MaterialEntry{
			Inspector:       m.Inspector,
			SortedPieces:    *m.SortedPieces,
			AcceptedPieces:  *m.AcceptedPieces,
			ReworkedPieces:  *m.ReworkedPieces,
			RejectedPieces:  *m.RejectedPieces,
			RejectionReason: m.RejectionReason,
		}
	}

	now := time.Now()
	r := workreport.MaterialReport{
		ID:           uuid.New().String(),
		LocalID:      req.LocalID,
		OperatorID:   operatorID,
		Date:         date,
		Shift:        workreport.ShiftKind(req.Shift),
		Operator:     req.Operator,
		Supervisor:   req.Supervisor,
		Line:         req.Line,
		Product:      req.Product,
		Batch:        req.Batch,
		Materials:    materials,
		Observations: req.Observations,
		Signature:    req.Signature,
		Synced:       true,
		SyncedAt:     &now,
		CreatedAt:    now,
	}

	created, err := s.repo.CreateMaterialReport(ctx, r)
	if err != nil {
		return workreport.MaterialReportResponse{}, err
	}
	return toMaterialResponse(created), nil
}

func (s *service) ListMaterialReports(ctx context.Context, filter workreport.ListFilter) (workreport.ListMaterialReportResponse, error) {
	filter.Normalize()

	reports, total, err := s.repo.ListMaterialReports(ctx, filter.OperatorID, filter.Page, filter.Limit)
	if err != nil {
		return workreport.ListMaterialReportResponse{}, fmt.Errorf("failed to list material reports: %w", err)
	}

	responses := make([]workreport.MaterialReportResponse, len(reports))
	for i, r := range reports {
		responses[i] = toMaterialResponse(r)
	}

	return workreport.ListMaterialReportResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Reports:    responses,
	}, nil
}

func (s *service) CreateActivityLog(ctx context.Context, operatorID string, req workreport.CreateActivityLogRequest) (workreport.ActivityLogResponse, error) {
	if err := req.Validate(); err != nil {
		return workreport.ActivityLogResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return workreport.ActivityLogResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	activities := make([]workreport.Activity, len(req.Activities))
	for i, a := range req.Activities {
		activities[i] = workreport.Activity{
			Code:       *a.Code,
			StartTime:  a.StartTime,
			EndTime:    a.EndTime,
			PartNumber: a.PartNumber,
		}
	}

	now := time.Now()
	r := workreport.ActivityLog{
		ID:           uuid.New().String(),
		LocalID:      req.LocalID,
		OperatorID:   operatorID,
		Date:         date,
		Shift:        workreport.ShiftKind(req.Shift),
		Operator:     req.Operator,
		Supervisor:   req.Supervisor,
		Line:         req.Line,
		Product:      req.Product,
		Batch:        req.Batch,
		Activities:   activities,
		Observations: req.Observations,
		Signature:    req.Signature,
		Synced:       true,
		SyncedAt:     &now,
		CreatedAt:    now,
	}

	created, err := s.repo.CreateActivityLog(ctx, r)
	if err != nil {
		return workreport.ActivityLogResponse{}, err
	}
	return toActivityResponse(created), nil
}

func (s *service) ListActivityLogs(ctx context.Context, filter workreport.ListFilter) (workreport.ListActivityLogResponse, error) {
	filter.Normalize()

	reports, total, err := s.repo.ListActivityLogs(ctx, filter.OperatorID, filter.Page, filter.Limit)
	if err != nil {
		return workreport.ListActivityLogResponse{}, fmt.Errorf("failed to list activity logs: %w", err)
	}

	responses := make([]workreport.ActivityLogResponse, len(reports))
	for i, r := range reports {
		responses[i] = toActivityResponse(r)
	}

	return workreport.ListActivityLogResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Reports:    responses,
	}, nil
}

// BulkSync processes each collection independently with per-item accounting.
// A local_id the server has already seen counts as success so devices can
// retry whole batches safely.
func (s *service) BulkSync(ctx context.Context, operatorID string, req workreport.BulkSyncRequest) (workreport.BulkSyncResponse, error) {
	var resp workreport.BulkSyncResponse

	for i := range req.ShiftReports {
		item := req.ShiftReports[i]
		_, err := s.CreateShiftReport(ctx, operatorID, item)
		record(&resp.ShiftReports, item.LocalID, err)
	}
	for i := range req.MaterialReports {
		item := req.MaterialReports[i]
		_, err := s.CreateMaterialReport(ctx, operatorID, item)
		record(&resp.MaterialReports, item.LocalID, err)
	}
	for i := range req.ActivityLogs {
		item := req.ActivityLogs[i]
		_, err := s.CreateActivityLog(ctx, operatorID, item)
		record(&resp.ActivityLogs, item.LocalID, err)
	}

	return resp, nil
}

func record(result *workreport.SyncCollectionResult, localID string, err error) {
	switch {
	case err == nil, errors.Is(err, workreport.ErrDuplicateLocalID):
		result.Succeeded++
	default:
		result.Failed++
		result.Errors = append(result.Errors, workreport.SyncItemError{
			LocalID: localID,
			Error:   err.Error(),
		})
	}
}

func toShiftResponse(r workreport.ShiftReport) workreport.ShiftReportResponse {
	return workreport.ShiftReportResponse{
		ID:               r.ID,
		LocalID:          r.LocalID,
		Date:             r.Date.Format("2006-01-02"),
		Shift:            string(r.Shift),
		Operator:         r.Operator,
		Supervisor:       r.Supervisor,
		Line:             r.Line,
		Product:          r.Product,
		Batch:            r.Batch,
		QuantityProduced: r.QuantityProduced,
		QuantityRejected: r.QuantityRejected,
		Observations:     r.Observations,
		Synced:           r.Synced,
		CreatedAt:        r.CreatedAt.Format(time.RFC3339),
	}
}

func toMaterialResponse(r workreport.MaterialReport) workreport.MaterialReportResponse {
	materials := make([]workreport.MaterialEntryResponse, len(r.Materials))
	for i, m := range r.Materials {
		materials[i] = workreport.MaterialEntryResponse{
			Inspector:       m.Inspector,
			SortedPieces:    m.SortedPieces,
			AcceptedPieces:  m.AcceptedPieces,
			ReworkedPieces:  m.ReworkedPieces,
			RejectedPieces:  m.RejectedPieces,
			RejectionReason: m.RejectionReason,
		}
	}
	return workreport.MaterialReportResponse{
		ID:           r.ID,
		LocalID:      r.LocalID,
		Date:         r.Date.Format("2006-01-02"),
		Shift:        string(r.Shift),
		Operator:     r.Operator,
		Supervisor:   r.Supervisor,
		Line:         r.Line,
		Product:      r.Product,
		Batch:        r.Batch,
		Materials:    materials,
		Observations: r.Observations,
		Synced:       r.Synced,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
	}
}

func toActivityResponse(r workreport.ActivityLog) workreport.ActivityLogResponse {
	activities := make([]workreport.ActivityResponse, len(r.Activities))
	for i, a := range r.Activities {
		activities[i] = workreport.ActivityResponse{
			Code:       a.Code,
			StartTime:  a.StartTime,
			EndTime:    a.EndTime,
			PartNumber: a.PartNumber,
		}
	}
	return workreport.ActivityLogResponse{
		ID:           r.ID,
		LocalID:      r.LocalID,
		Date:         r.Date.Format("2006-01-02"),
		Shift:        string(r.Shift),
		Operator:     r.Operator,
		Supervisor:   r.Supervisor,
		Line:         r.Line,
		Product:      r.Product,
		Batch:        r.Batch,
		Activities:   activities,
		Observations: r.Observations,
		Synced:       r.Synced,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
	}
}
