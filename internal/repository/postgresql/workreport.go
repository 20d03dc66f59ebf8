package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/RobertoAguirre/amn-backend-go/internal/domain/workreport"
	"github.com/RobertoAguirre/amn-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5/pgconn"
)

type workReportRepository struct {
	db *database.DB
}

// NewWorkReportRepository creates a new work report repository
func NewWorkReportRepository(db *database.DB) workreport.Repository {
	return &workReportRepository{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

const shiftColumns = `id, local_id, operator_id, date, shift, operator, supervisor, line, product, batch, quantity_produced, quantity_rejected, observations, signature, synced, synced_at, created_at`

func (r *workReportRepository) CreateShiftReport(ctx context.Context, rep workreport.ShiftReport) (workreport.ShiftReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_reports (` + shiftColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := q.Exec(ctx, query,
		rep.ID, rep.LocalID, rep.OperatorID, rep.Date, string(rep.Shift),
		rep.Operator, rep.Supervisor, rep.Line, rep.Product, rep.Batch,
		rep.QuantityProduced, rep.QuantityRejected,
		rep.Observations, rep.Signature, rep.Synced, rep.SyncedAt, rep.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return workreport.ShiftReport{}, workreport.ErrDuplicateLocalID
		}
		return workreport.ShiftReport{}, fmt.Errorf("failed to create shift report: %w", err)
	}

	return rep, nil
}

func (r *workReportRepository) ListShiftReports(ctx context.Context, operatorID string, page, limit int) ([]workreport.ShiftReport, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM shift_reports WHERE operator_id = $1`, operatorID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count shift reports: %w", err)
	}

	query := `
		SELECT ` + shiftColumns + `
		FROM shift_reports
		WHERE operator_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, operatorID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list shift reports: %w", err)
	}
	defer rows.Close()

	var reports []workreport.ShiftReport
	for rows.Next() {
		var rep workreport.ShiftReport
		var shift string
		err := rows.Scan(
			&rep.ID, &rep.LocalID, &rep.OperatorID, &rep.Date, &shift,
			&rep.Operator, &rep.Supervisor, &rep.Line, &rep.Product, &rep.Batch,
			&rep.QuantityProduced, &rep.QuantityRejected,
			&rep.Observations, &rep.Signature, &rep.Synced, &rep.SyncedAt, &rep.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan shift report: %w", err)
		}
		rep.Shift = workreport.ShiftKind(shift)
		reports = append(reports, rep)
	}

	return reports, total, rows.Err()
}

const materialColumns = `id, local_id, operator_id, date, shift, operator, supervisor, line, product, batch, materials, observations, signature, synced, synced_at, created_at`

func (r *workReportRepository) CreateMaterialReport(ctx context.Context, rep workreport.MaterialReport) (workreport.MaterialReport, error) {
	q := GetQuerier(ctx, r.db)

	materialsJSON, err := json.Marshal(rep.Materials)
	if err != nil {
		return workreport.MaterialReport{}, fmt.Errorf("failed to marshal materials: %w", err)
	}

	query := `
		INSERT INTO material_reports (` + materialColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err = q.Exec(ctx, query,
		rep.ID, rep.LocalID, rep.OperatorID, rep.Date, string(rep.Shift),
		rep.Operator, rep.Supervisor, rep.Line, rep.Product, rep.Batch,
		materialsJSON, rep.Observations, rep.Signature, rep.Synced, rep.SyncedAt, rep.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return workreport.MaterialReport{}, workreport.ErrDuplicateLocalID
		}
		return workreport.MaterialReport{}, fmt.Errorf("failed to create material report: %w", err)
	}

	return rep, nil
}

func (r *workReportRepository) ListMaterialReports(ctx context.Context, operatorID string, page, limit int) ([]workreport.MaterialReport, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM material_reports WHERE operator_id = $1`, operatorID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count material reports: %w", err)
	}

	query := `
		SELECT ` + materialColumns + `
		FROM material_reports
		WHERE operator_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, operatorID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list material reports: %w", err)
	}
	defer rows.Close()

	var reports []workreport.MaterialReport
	for rows.Next() {
		var rep workreport.MaterialReport
		var shift string
		var materialsJSON []byte
		err := rows.Scan(
			&rep.ID, &rep.LocalID, &rep.OperatorID, &rep.Date, &shift,
			&rep.Operator, &rep.Supervisor, &rep.Line, &rep.Product, &rep.Batch,
			&materialsJSON, &rep.Observations, &rep.Signature, &rep.Synced, &rep.SyncedAt, &rep.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan material report: %w", err)
		}
		rep.Shift = workreport.ShiftKind(shift)
		if err := json.Unmarshal(materialsJSON, &rep.Materials); err != nil {
			return nil, 0, fmt.Errorf("failed to unmarshal materials: %w", err)
		}
		reports = append(reports, rep)
	}

	return reports, total, rows.Err()
}

const activityColumns = `id, local_id, operator_id, date, shift, operator, supervisor, line, product, batch, activities, observations, signature, synced, synced_at, created_at`

func (r *workReportRepository) CreateActivityLog(ctx context.Context, rep workreport.ActivityLog) (workreport.ActivityLog, error) {
	q := GetQuerier(ctx, r.db)

	activitiesJSON, err := json.Marshal(rep.Activities)
	if err != nil {
		return workreport.ActivityLog{}, fmt.Errorf("failed to marshal activities: %w", err)
	}

	query := `
		INSERT INTO activity_logs (` + activityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err = q.Exec(ctx, query,
		rep.ID, rep.LocalID, rep.OperatorID, rep.Date, string(rep.Shift),
		rep.Operator, rep.Supervisor, rep.Line, rep.Product, rep.Batch,
		activitiesJSON, rep.Observations, rep.Signature, rep.Synced, rep.SyncedAt, rep.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return workreport.ActivityLog{}, workreport.ErrDuplicateLocalID
		}
		return workreport.ActivityLog{}, fmt.Errorf("failed to create activity log: %w", err)
	}

	return rep, nil
}

func (r *workReportRepository) ListActivityLogs(ctx context.Context, operatorID string, page, limit int) ([]workreport.ActivityLog, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM activity_logs WHERE operator_id = $1`, operatorID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count activity logs: %w", err)
	}

	query := `
		SELECT ` + activityColumns + `
		FROM activity_logs
		WHERE operator_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, operatorID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list activity logs: %w", err)
	}
	defer rows.Close()

	var reports []workreport.ActivityLog
	for rows.Next() {
		var rep workreport.ActivityLog
		var shift string
		var activitiesJSON []byte
		err := rows.Scan(
			&rep.ID, &rep.LocalID, &rep.OperatorID, &rep.Date, &shift,
			&rep.Operator, &rep.Supervisor, &rep.Line, &rep.Product, &rep.Batch,
			&activitiesJSON, &rep.Observations, &rep.Signature, &rep.Synced, &rep.SyncedAt, &rep.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan activity log: %w", err)
		}
		rep.Shift = workreport.ShiftKind(shift)
		if err := json.Unmarshal(activitiesJSON, &rep.Activities); err != nil {
			return nil, 0, fmt.Errorf("failed to unmarshal activities: %w", err)
		}
		reports = append(reports, rep)
	}

	return reports, total, rows.Err()
}
