package report

import "context"

// Service defines the attendance report surface.
type Service interface {
	// Generate reconstructs per-employee timelines over the range and
	// evaluates them against matched schedules
	Generate(ctx context.Context, filter Filter) (Response, error)

	// ExportExcel renders the same rows as an xlsx workbook
	ExportExcel(ctx context.Context, filter Filter) ([]byte, error)
}
