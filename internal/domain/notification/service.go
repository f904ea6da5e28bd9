package notification

import (
	"context"

	"github.com/hrpulse/attendance-backend-go/internal/pkg/sse"
)

// Service defines the notification service interface
type Service interface {
	// QueueNotification enqueues a notification for async persistence and
	// SSE delivery. Never blocks request flows: a full queue falls back to
	// delivering inline on the caller's goroutine.
	QueueNotification(ctx context.Context, req CreateNotificationRequest) error

	// List retrieves notifications for a user.
	List(ctx context.Context, recipientID string, page, limit int) (ListResponse, error)

	// MarkAsRead marks one notification as read.
	MarkAsRead(ctx context.Context, recipientID, notificationID string) error

	// MarkAllAsRead marks all notifications as read.
	MarkAllAsRead(ctx context.Context, recipientID string) error

	// Subscribe registers an SSE subscriber for a user.
	Subscribe(recipientID string) (chan sse.Event, func())

	// Stop drains the queue and stops background workers.
	Stop()
}
