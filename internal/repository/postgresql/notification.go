package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/RobertoAguirre/amn-backend-go/internal/domain/notification"
	"github.com/RobertoAguirre/amn-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type notificationRepository struct {
	db *database.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepository{db: db}
}

const notificationColumns = `id, type, title, message, employee_id, employee_name, site_id, event_date, route, route_params, detail, priority, read, read_at, active, created_at`

func (r *notificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	q := GetQuerier(ctx, r.db)

	routeParamsJSON, detailJSON, err := marshalPayload(n)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO notifications (` + notificationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err = q.Exec(ctx, query,
		n.ID,
		string(n.Type),
		n.Title,
		n.Message,
		n.EmployeeID,
		n.EmployeeName,
		n.SiteID,
		n.EventDate,
		n.Route,
		routeParamsJSON,
		detailJSON,
		string(n.Priority),
		n.Read,
		n.ReadAt,
		n.Active,
		n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

// CreateBatch inserts several notifications in one statement
func (r *notificationRepository) CreateBatch(ctx context.Context, notifications []*notification.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	const cols = 16
	valueStrings := make([]string, 0, len(notifications))
	valueArgs := make([]interface{}, 0, len(notifications)*cols)

	for i, n := range notifications {
		routeParamsJSON, detailJSON, err := marshalPayload(n)
		if err != nil {
			return err
		}

		base := i * cols
		placeholders := make([]string, cols)
		for j := range placeholders {
			placeholders[j] = fmt.Sprintf("$%d", base+j+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(placeholders, ", ")+")")
		valueArgs = append(valueArgs,
			n.ID,
			string(n.Type),
			n.Title,
			n.Message,
			n.EmployeeID,
			n.EmployeeName,
			n.SiteID,
			n.EventDate,
			n.Route,
			routeParamsJSON,
			detailJSON,
			string(n.Priority),
			n.Read,
			n.ReadAt,
			n.Active,
			n.CreatedAt,
		)
	}

	query := fmt.Sprintf(`
		INSERT INTO notifications (`+notificationColumns+`)
		VALUES %s
	`, strings.Join(valueStrings, ", "))

	if _, err := q.Exec(ctx, query, valueArgs...); err != nil {
		return fmt.Errorf("failed to batch create notifications: %w", err)
	}

	return nil
}

func (r *notificationRepository) List(ctx context.Context, filter notification.ListFilter) ([]*notification.Notification, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := " WHERE active"
	args := []interface{}{}
	argPos := 1

	if filter.Read != nil {
		where += fmt.Sprintf(" AND read = $%d", argPos)
		args = append(args, *filter.Read)
		argPos++
	}
	if filter.Kind != nil {
		where += fmt.Sprintf(" AND type = $%d", argPos)
		args = append(args, *filter.Kind)
		argPos++
	}
	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.SiteID != nil {
		where += fmt.Sprintf(" AND site_id = $%d", argPos)
		args = append(args, *filter.SiteID)
		argPos++
	}

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM notifications"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	query := "SELECT " + notificationColumns + " FROM notifications" + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*notification.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}

	return notifications, total, rows.Err()
}

func (r *notificationRepository) UnreadCount(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM notifications WHERE active AND NOT read`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE notifications SET read = TRUE, read_at = $2 WHERE id = $1 AND active`,
		id, time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notification.ErrNotificationNotFound
	}

	return nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`UPDATE notifications SET read = TRUE, read_at = $1 WHERE active AND NOT read`,
		time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return nil
}

func (r *notificationRepository) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE notifications SET active = FALSE WHERE id = $1 AND active`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate notification: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notification.ErrNotificationNotFound
	}

	return nil
}

func (r *notificationRepository) ExistsForEmployeeOnDate(ctx context.Context, kind notification.Kind, employeeID string, dayStart, dayEnd time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM notifications
			WHERE active AND type = $1 AND employee_id = $2
			  AND event_date >= $3 AND event_date < $4
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, string(kind), employeeID, dayStart, dayEnd).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check existing notifications: %w", err)
	}

	return exists, nil
}

func marshalPayload(n *notification.Notification) (routeParams, detail []byte, err error) {
	if n.RouteParams != nil {
		routeParams, err = json.Marshal(n.RouteParams)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to marshal route params: %w", err)
		}
	}
	if n.Detail != nil {
		detail, err = json.Marshal(n.Detail)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to marshal detail: %w", err)
		}
	}
	return routeParams, detail, nil
}

func scanNotification(row pgx.Row) (*notification.Notification, error) {
	var n notification.Notification
	var kind, priority string
	var routeParamsJSON, detailJSON []byte

	err := row.Scan(
		&n.ID,
		&kind,
		&n.Title,
		&n.Message,
		&n.EmployeeID,
		&n.EmployeeName,
		&n.SiteID,
		&n.EventDate,
		&n.Route,
		&routeParamsJSON,
		&detailJSON,
		&priority,
		&n.Read,
		&n.ReadAt,
		&n.Active,
		&n.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	n.Type = notification.Kind(kind)
	n.Priority = notification.Priority(priority)

	if len(routeParamsJSON) > 0 {
		n.RouteParams = &notification.RouteParams{}
		if err := json.Unmarshal(routeParamsJSON, n.RouteParams); err != nil {
			return nil, fmt.Errorf("failed to unmarshal route params: %w", err)
		}
	}
	if len(detailJSON) > 0 {
		detail, err := unmarshalDetail(n.Type, detailJSON)
		if err != nil {
			return nil, err
		}
		n.Detail = detail
	}

	return &n, nil
}

// unmarshalDetail decodes the stored payload into the concrete type for the
// notification kind.
func unmarshalDetail(kind notification.Kind, data []byte) (notification.Detail, error) {
	var (
		detail notification.Detail
		err    error
	)

	switch kind {
	case notification.KindLateness:
		var d notification.LatenessDetail
		err = json.Unmarshal(data, &d)
		detail = d
	case notification.KindAbsence:
		var d notification.AbsenceDetail
		err = json.Unmarshal(data, &d)
		detail = d
	case notification.KindEarlyDeparture:
		var d notification.EarlyDepartureDetail
		err = json.Unmarshal(data, &d)
		detail = d
	case notification.KindMissingEntry:
		var d notification.MissingEntryDetail
		err = json.Unmarshal(data, &d)
		detail = d
	case notification.KindOvertime:
		var d notification.OvertimeDetail
		err = json.Unmarshal(data, &d)
		detail = d
	default:
		var d notification.SystemDetail
		err = json.Unmarshal(data, &d)
		detail = d
	}
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s detail: %w", kind, err)
	}

	return detail, nil
}
