package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hrpulse/attendance-backend-go/internal/domain/notification"
	"github.com/hrpulse/attendance-backend-go/internal/pkg/email"
	"github.com/hrpulse/attendance-backend-go/internal/pkg/sse"
)

// Config holds notification worker tuning.
type Config struct {
	BatchSize     int           // default: 100
	FlushInterval time.Duration // default: 5 seconds
	WorkerCount   int           // default: 2
	QueueSize     int           // default: 1000
}

type service struct {
	repo     notification.Repository
	hub      *sse.Hub
	emailSvc email.Service
	config   Config

	queue  chan notification.CreateNotificationRequest
	wg     sync.WaitGroup
	stopCh chan struct{}
}

// NewNotificationService creates a notification service with background
// workers that batch-persist queued notifications and push them over SSE.
func NewNotificationService(repo notification.Repository, hub *sse.Hub, emailSvc email.Service, cfg Config) notification.Service {
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 100
	}
	if cfg.FlushInterval == 0 {
		cfg.FlushInterval = 5 * time.Second
	}
	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize == 0 {
		cfg.QueueSize = 1000
	}

	s := &service{
		repo:     repo,
		hub:      hub,
		emailSvc: emailSvc,
		config:   cfg,
		queue:    make(chan notification.CreateNotificationRequest, cfg.QueueSize),
		stopCh:   make(chan struct{}),
	}

	for i := 0; i < cfg.WorkerCount; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	slog.Info("Notification service started",
		"workers", cfg.WorkerCount, "batch_size", cfg.BatchSize, "flush_interval", cfg.FlushInterval)

	return s
}

func (s *service) worker(id int) {
	defer s.wg.Done()

	batch := make([]notification.CreateNotificationRequest, 0, s.config.BatchSize)
	ticker := time.NewTicker(s.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		s.deliver(ctx, id, batch)
		batch = batch[:0]
	}

	for {
		select {
		case req := <-s.queue:
			batch = append(batch, req)
			if len(batch) >= s.config.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-s.stopCh:
			flush()
			return
		}
	}
}

// deliver persists a batch, pushes SSE events, and sends any requested
// decision emails.
func (s *service) deliver(ctx context.Context, workerID int, batch []notification.CreateNotificationRequest) {
	notifications := make([]notification.Notification, len(batch))
	for i, req := range batch {
		notifications[i] = notification.Notification{
			ID:          uuid.New().String(),
			RecipientID: req.RecipientID,
			SenderID:    req.SenderID,
			Type:        req.Type,
			Title:       req.Title,
			Message:     req.Message,
			Data:        req.Data,
			IsRead:      false,
			CreatedAt:   time.Now(),
		}
	}

	if err := s.repo.CreateBatch(ctx, notifications); err != nil {
		slog.Error("Failed to persist notification batch", "worker", workerID, "count", len(batch), "error", err)
		return
	}

	for i, n := range notifications {
		s.hub.Publish(n.RecipientID, sse.Event{
			UserID: n.RecipientID,
			Event:  "notification",
			Data:   toResponse(n),
		})

		if batch[i].EmailTo != nil && s.emailSvc != nil {
			if err := s.emailSvc.SendRequestDecision(*batch[i].EmailTo, "", string(n.Type), n.Title, n.Message); err != nil {
				slog.Error("Failed to send decision email", "to", *batch[i].EmailTo, "error", err)
			}
		}
	}
}

// QueueNotification implements notification.Service.
func (s *service) QueueNotification(ctx context.Context, req notification.CreateNotificationRequest) error {
	select {
	case s.queue <- req:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		// Queue full, deliver inline rather than drop.
		s.deliver(ctx, -1, []notification.CreateNotificationRequest{req})
		return nil
	}
}

// List implements notification.Service.
func (s *service) List(ctx context.Context, recipientID string, page, limit int) (notification.ListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	notifications, total, err := s.repo.ListByRecipient(ctx, recipientID, page, limit)
	if err != nil {
		return notification.ListResponse{}, err
	}

	unread, err := s.repo.CountUnread(ctx, recipientID)
	if err != nil {
		return notification.ListResponse{}, err
	}

	responses := make([]notification.Response, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, toResponse(n))
	}

	return notification.ListResponse{
		Notifications: responses,
		UnreadCount:   unread,
		TotalItems:    total,
	}, nil
}

// MarkAsRead implements notification.Service.
func (s *service) MarkAsRead(ctx context.Context, recipientID, notificationID string) error {
	return s.repo.MarkAsRead(ctx, recipientID, notificationID)
}

// MarkAllAsRead implements notification.Service.
func (s *service) MarkAllAsRead(ctx context.Context, recipientID string) error {
	return s.repo.MarkAllAsRead(ctx, recipientID)
}

// Subscribe implements notification.Service.
func (s *service) Subscribe(recipientID string) (chan sse.Event, func()) {
	return s.hub.Subscribe(recipientID)
}

// Stop implements notification.Service.
func (s *service) Stop() {
	close(s.stopCh)
	s.wg.Wait()
}

func toResponse(n notification.Notification) notification.Response {
	return notification.Response{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Data:      n.Data,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
}
