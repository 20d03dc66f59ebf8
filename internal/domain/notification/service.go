package notification

import (
	"context"

	"github.com/RobertoAguirre/amn-backend-go/internal/pkg/sse"
)

// Service defines the notification service interface. Emit is queued and
// processed by background workers: a failed write is logged and dropped, it
// never propagates to the caller (report generation must not fail because a
// notification could not be recorded).
type Service interface {
	// Emit queues a notification intent (fire-and-forget)
	Emit(ctx context.Context, req EmitRequest)

	// List retrieves notifications with filters
	List(ctx context.Context, filter ListFilter) (ListNotificationResponse, error)

	// UnreadCount returns the number of active unread notifications
	UnreadCount(ctx context.Context) (int64, error)

	// MarkRead marks one notification as read
	MarkRead(ctx context.Context, id string) error

	// MarkAllRead marks every notification as read
	MarkAllRead(ctx context.Context) error

	// Deactivate hides a notification
	Deactivate(ctx context.Context, id string) error

	// Subscribe attaches an SSE listener for newly emitted notifications
	Subscribe() (chan sse.Event, func())

	// Stop drains the queue and stops the workers
	Stop()
}
