package workreport

import "context"

// Repository defines data access methods for the three field report
// collections. Creates return ErrDuplicateLocalID on a local_id collision so
// bulk sync can account per item.
type Repository interface {
	CreateShiftReport(ctx context.Context, r ShiftReport) (ShiftReport, error)
	ListShiftReports(ctx context.Context, operatorID string, page, limit int) ([]ShiftReport, int64, error)

	CreateMaterialReport(ctx context.Context, r MaterialReport) (MaterialReport, error)
	ListMaterialReports(ctx context.Context, operatorID string, page, limit int) ([]MaterialReport, int64, error)

	CreateActivityLog(ctx context.Context, r ActivityLog) (ActivityLog, error)
	ListActivityLogs(ctx context.Context, operatorID string, page, limit int) ([]ActivityLog, int64, error)
}
