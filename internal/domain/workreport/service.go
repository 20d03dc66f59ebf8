package workreport

import "context"

// Service defines business logic for field work reports.
type Service interface {
	// CreateShiftReport stores one production shift report
	CreateShiftReport(ctx context.Context, operatorID string, req CreateShiftReportRequest) (ShiftReportResponse, error)

	// ListShiftReports lists an operator's shift reports, newest first
	ListShiftReports(ctx context.Context, filter ListFilter) (ListShiftReportResponse, error)

	// CreateMaterialReport stores one material inspection report
	CreateMaterialReport(ctx context.Context, operatorID string, req CreateMaterialReportRequest) (MaterialReportResponse, error)

	// ListMaterialReports lists an operator's material reports, newest first
	ListMaterialReports(ctx context.Context, filter ListFilter) (ListMaterialReportResponse, error)

	// CreateActivityLog stores one individual activity log
	CreateActivityLog(ctx context.Context, operatorID string, req CreateActivityLogRequest) (ActivityLogResponse, error)

	// ListActivityLogs lists an operator's activity logs, newest first
	ListActivityLogs(ctx context.Context, filter ListFilter) (ListActivityLogResponse, error)

	// BulkSync ingests an offline batch of all three collections with
	// per-item local_id dedupe; the batch never fails wholesale
	BulkSync(ctx context.Context, operatorID string, req BulkSyncRequest) (BulkSyncResponse, error)
}
