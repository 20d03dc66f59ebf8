package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/RobertoAguirre/amn-backend-go/internal/domain/schedule"
	"github.com/RobertoAguirre/amn-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type scheduleRepository struct {
	db *database.DB
}

// NewWorkScheduleRepository creates a new work schedule repository
func NewWorkScheduleRepository(db *database.DB) schedule.WorkScheduleRepository {
	return &scheduleRepository{db: db}
}

const scheduleColumns = `id, employee_id, site_id, name, weekdays, clock_in, clock_out, tolerance_minutes, meal_start, meal_end, meal_minutes, expected_hours, active, created_at, updated_at`

func (r *scheduleRepository) Create(ctx context.Context, s schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_schedules (` + scheduleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := q.Exec(ctx, query,
		s.ID,
		s.EmployeeID,
		s.SiteID,
		s.Name,
		s.Weekdays,
		s.ClockIn,
		s.ClockOut,
		s.ToleranceMinutes,
		s.MealStart,
		s.MealEnd,
		s.MealMinutes,
		s.ExpectedHours,
		s.Active,
		s.CreatedAt,
		s.UpdatedAt,
	)
	if err != nil {
		return schedule.WorkSchedule{}, fmt.Errorf("failed to create schedule: %w", err)
	}

	return s, nil
}

func (r *scheduleRepository) GetByID(ctx context.Context, id string) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + scheduleColumns + ` FROM work_schedules WHERE id = $1`

	s, err := scanSchedule(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return schedule.WorkSchedule{}, schedule.ErrScheduleNotFound
	}
	if err != nil {
		return schedule.WorkSchedule{}, fmt.Errorf("failed to get schedule: %w", err)
	}

	return s, nil
}

func (r *scheduleRepository) List(ctx context.Context, siteID *string) ([]schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + scheduleColumns + ` FROM work_schedules`
	args := []interface{}{}
	if siteID != nil {
		query += ` WHERE site_id = $1`
		args = append(args, *siteID)
	}
	query += ` ORDER BY created_at, id`

	return r.queryMany(ctx, q, query, args...)
}

// ListActiveForMatch returns the candidate schedules for an (employee, site)
// pair: employee overrides first, then site-wide rows, each tier in creation
// order so matching stays deterministic.
func (r *scheduleRepository) ListActiveForMatch(ctx context.Context, employeeID, siteID string) ([]schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + scheduleColumns + `
		FROM work_schedules
		WHERE active
		  AND site_id = $2
		  AND (employee_id = $1 OR employee_id IS NULL)
		ORDER BY (employee_id IS NULL), created_at, id
	`

	return r.queryMany(ctx, q, query, employeeID, siteID)
}

func (r *scheduleRepository) Update(ctx context.Context, s schedule.WorkSchedule) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE work_schedules
		SET name = $2, weekdays = $3, clock_in = $4, clock_out = $5,
		    tolerance_minutes = $6, meal_start = $7, meal_end = $8,
		    meal_minutes = $9, expected_hours = $10, active = $11, updated_at = $12
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		s.ID,
		s.Name,
		s.Weekdays,
		s.ClockIn,
		s.ClockOut,
		s.ToleranceMinutes,
		s.MealStart,
		s.MealEnd,
		s.MealMinutes,
		s.ExpectedHours,
		s.Active,
		s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}

	return nil
}

func (r *scheduleRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM work_schedules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}

	return nil
}

func (r *scheduleRepository) queryMany(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]schedule.WorkSchedule, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedules: %w", err)
	}
	defer rows.Close()

	var schedules []schedule.WorkSchedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, s)
	}

	return schedules, rows.Err()
}

func scanSchedule(row pgx.Row) (schedule.WorkSchedule, error) {
	var s schedule.WorkSchedule

	err := row.Scan(
		&s.ID,
		&s.EmployeeID,
		&s.SiteID,
		&s.Name,
		&s.Weekdays,
		&s.ClockIn,
		&s.ClockOut,
		&s.ToleranceMinutes,
		&s.MealStart,
		&s.MealEnd,
		&s.MealMinutes,
		&s.ExpectedHours,
		&s.Active,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return schedule.WorkSchedule{}, err
	}

	return s, nil
}
