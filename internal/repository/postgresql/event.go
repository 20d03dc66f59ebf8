package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RobertoAguirre/amn-backend-go/internal/domain/tracking"
	"github.com/RobertoAguirre/amn-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type eventRepository struct {
	db *database.DB
	// loc is the reporting time zone; date filters on the list endpoint are
	// interpreted in it
	loc *time.Location
}

// NewEventRepository creates a new attendance event repository
func NewEventRepository(db *database.DB, loc *time.Location) tracking.EventRepository {
	return &eventRepository{db: db, loc: loc}
}

const eventColumns = `id, employee_id, employee_name, site_id, site_name, kind, occurred_at, latitude, longitude, synced, local_id, created_at`

func (r *eventRepository) Create(ctx context.Context, event tracking.Event) (tracking.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := q.Exec(ctx, query,
		event.ID,
		event.EmployeeID,
		event.EmployeeName,
		event.SiteID,
		event.SiteName,
		string(event.Kind),
		event.OccurredAt,
		event.Latitude,
		event.Longitude,
		event.Synced,
		event.LocalID,
		event.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return tracking.Event{}, tracking.ErrDuplicateLocalID
		}
		return tracking.Event{}, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

func (r *eventRepository) GetLastByEmployee(ctx context.Context, employeeID string) (tracking.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + eventColumns + `
		FROM attendance_events
		WHERE employee_id = $1
		ORDER BY occurred_at DESC, created_at DESC
		LIMIT 1
	`

	event, err := scanEvent(q.QueryRow(ctx, query, employeeID))
	if errors.Is(err, pgx.ErrNoRows) {
		return tracking.Event{}, tracking.ErrEventNotFound
	}
	if err != nil {
		return tracking.Event{}, fmt.Errorf("failed to get last event: %w", err)
	}

	return event, nil
}

func (r *eventRepository) GetByLocalID(ctx context.Context, localID string) (tracking.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + eventColumns + `
		FROM attendance_events
		WHERE local_id = $1
	`

	event, err := scanEvent(q.QueryRow(ctx, query, localID))
	if errors.Is(err, pgx.ErrNoRows) {
		return tracking.Event{}, tracking.ErrEventNotFound
	}
	if err != nil {
		return tracking.Event{}, fmt.Errorf("failed to get event by local_id: %w", err)
	}

	return event, nil
}

func (r *eventRepository) List(ctx context.Context, filter tracking.EventFilter) ([]tracking.Event, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := " WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.DateFrom != nil {
		from, err := time.ParseInLocation("2006-01-02", *filter.DateFrom, r.loc)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to parse date_from: %w", err)
		}
		where += fmt.Sprintf(" AND occurred_at >= $%d", argPos)
		args = append(args, from)
		argPos++
	}
	if filter.DateTo != nil {
		to, err := time.ParseInLocation("2006-01-02", *filter.DateTo, r.loc)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to parse date_to: %w", err)
		}
		where += fmt.Sprintf(" AND occurred_at < $%d", argPos)
		args = append(args, to.AddDate(0, 0, 1))
		argPos++
	}

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM attendance_events"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	query := "SELECT " + eventColumns + " FROM attendance_events" + where +
		fmt.Sprintf(" ORDER BY occurred_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []tracking.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	return events, total, rows.Err()
}

// ListForReport returns events in [from, to) strictly ordered by employee
// then timestamp. The timeline reconstruction depends on that order.
func (r *eventRepository) ListForReport(ctx context.Context, from, to time.Time, employeeID, nameFilter *string) ([]tracking.Event, error) {
	q := GetQuerier(ctx, r.db)

	where := " WHERE occurred_at >= $1 AND occurred_at < $2"
	args := []interface{}{from, to}
	argPos := 3

	if employeeID != nil {
		where += fmt.Sprintf(" AND employee_id = $%d", argPos)
		args = append(args, *employeeID)
		argPos++
	}
	if nameFilter != nil {
		where += fmt.Sprintf(" AND employee_name ILIKE $%d", argPos)
		args = append(args, "%"+*nameFilter+"%")
		argPos++
	}

	query := "SELECT " + eventColumns + " FROM attendance_events" + where +
		" ORDER BY employee_id, occurred_at, created_at"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list events for report: %w", err)
	}
	defer rows.Close()

	var events []tracking.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	return events, rows.Err()
}

func (r *eventRepository) HasEntryBetween(ctx context.Context, employeeID string, from, to time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM attendance_events
			WHERE employee_id = $1 AND kind = 'entry' AND occurred_at >= $2 AND occurred_at < $3
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, from, to).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check entry events: %w", err)
	}

	return exists, nil
}

// ListActiveEmployees returns each employee seen since the cutoff with the
// site of their most recent sited event.
func (r *eventRepository) ListActiveEmployees(ctx context.Context, since time.Time) ([]tracking.EmployeeRef, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT ON (employee_id) employee_id, employee_name, site_id
		FROM attendance_events
		WHERE occurred_at >= $1
		ORDER BY employee_id, (site_id IS NULL), occurred_at DESC
	`

	rows, err := q.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var refs []tracking.EmployeeRef
	for rows.Next() {
		var ref tracking.EmployeeRef
		if err := rows.Scan(&ref.EmployeeID, &ref.EmployeeName, &ref.SiteID); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		refs = append(refs, ref)
	}

	return refs, rows.Err()
}

func scanEvent(row pgx.Row) (tracking.Event, error) {
	var event tracking.Event
	var kind string

	err := row.Scan(
		&event.ID,
		&event.EmployeeID,
		&event.EmployeeName,
		&event.SiteID,
		&event.SiteName,
		&kind,
		&event.OccurredAt,
		&event.Latitude,
		&event.Longitude,
		&event.Synced,
		&event.LocalID,
		&event.CreatedAt,
	)
	if err != nil {
		return tracking.Event{}, err
	}

	event.Kind = tracking.EventKind(kind)
	return event, nil
}
