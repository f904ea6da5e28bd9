package notification

import "context"

// Repository defines data access for notifications.
type Repository interface {
	// CreateBatch inserts a batch of notifications.
	CreateBatch(ctx context.Context, notifications []Notification) error

	// ListByRecipient retrieves notifications for a user, newest first.
	ListByRecipient(ctx context.Context, recipientID string, page, limit int) ([]Notification, int64, error)

	// CountUnread counts unread notifications for a user.
	CountUnread(ctx context.Context, recipientID string) (int, error)

	// MarkAsRead marks one notification as read, scoped to the recipient.
	MarkAsRead(ctx context.Context, recipientID, notificationID string) error

	// MarkAllAsRead marks every unread notification as read for a user.
	MarkAllAsRead(ctx context.Context, recipientID string) error
}
