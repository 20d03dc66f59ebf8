package notification

import (
	"context"
	"time"
)

// Repository defines the notification repository interface
type Repository interface {
	// Create persists a notification
	Create(ctx context.Context, notification *Notification) error

	// CreateBatch persists several notifications in one round trip
	CreateBatch(ctx context.Context, notifications []*Notification) error

	// List retrieves active notifications with filters, newest first
	List(ctx context.Context, filter ListFilter) ([]*Notification, int64, error)

	// UnreadCount counts active unread notifications
	UnreadCount(ctx context.Context) (int64, error)

	// MarkRead marks one notification as read
	MarkRead(ctx context.Context, id string) error

	// MarkAllRead marks every active notification as read
	MarkAllRead(ctx context.Context) error

	// Deactivate hides a notification without deleting it
	Deactivate(ctx context.Context, id string) error

	// ExistsForEmployeeOnDate reports whether an active unread notification
	// of this kind already exists for the employee on the given local day;
	// the missing-entry sweep uses it to avoid duplicates
	ExistsForEmployeeOnDate(ctx context.Context, kind Kind, employeeID string, dayStart, dayEnd time.Time) (bool, error)
}
