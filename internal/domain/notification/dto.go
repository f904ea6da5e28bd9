package notification

// CreateNotificationRequest carries one notification into the queue.
type CreateNotificationRequest struct {
	RecipientID string
	SenderID    *string
	Type        Type
	Title       string
	Message     string
	Data        map[string]interface{}

	// Optional email delivery, used for request decisions
	EmailTo *string
}

type Response struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Data      map[string]interface{} `json:"data,omitempty"`
	IsRead    bool                   `json:"is_read"`
	CreatedAt string                 `json:"created_at"`
}

type ListResponse struct {
	Notifications []Response `json:"notifications"`
	UnreadCount   int        `json:"unread_count"`
	TotalItems    int64      `json:"total_items"`
}
