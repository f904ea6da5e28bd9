package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/hrpulse/attendance-backend-go/internal/domain/approval"
	"github.com/hrpulse/attendance-backend-go/internal/domain/employee"
	"github.com/hrpulse/attendance-backend-go/internal/domain/leave"
	"github.com/hrpulse/attendance-backend-go/internal/domain/notification"
	"github.com/hrpulse/attendance-backend-go/internal/pkg/database"
)

type leaveServiceImpl struct {
	tx              database.Transactor
	leaveRepo       leave.Repository
	employeeRepo    employee.Repository
	gate            approval.Gate
	notificationSvc notification.Service
}

func NewLeaveService(
	tx database.Transactor,
	leaveRepo leave.Repository,
	employeeRepo employee.Repository,
	gate approval.Gate,
	notificationSvc notification.Service,
) leave.Service {
	return &leaveServiceImpl{
		tx:              tx,
		leaveRepo:       leaveRepo,
		employeeRepo:    employeeRepo,
		gate:            gate,
		notificationSvc: notificationSvc,
	}
}

// Create implements leave.Service.
func (s *leaveServiceImpl) Create(ctx context.Context, req leave.CreateRequest) (leave.Response, error) {
	if err := req.Validate(); err != nil {
		return leave.Response{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.Response{}, fmt.Errorf("failed to get employee: %w", err)
	}

	request := leave.Request{
		EmployeeID: req.EmployeeID,
		Category:   req.Category,
		StartDate:  req.Start,
		EndDate:    req.End,
		Days:       int(req.End.Sub(req.Start).Hours()/24) + 1,
		Reason:     req.Reason,
	}

	fields := s.gate.Decide(ctx, approval.TypeLeave)
	request.Status = fields.Status
	request.ApprovedAt = fields.ApprovedAt
	request.ApprovedBy = fields.ApprovedBy

	// Overlap check and insert run in one transaction so two concurrent
	// submissions for the same range cannot both pass the check.
	var created leave.Request
	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		overlap, err := s.leaveRepo.HasOverlap(txCtx, req.EmployeeID, request)
		if err != nil {
			return fmt.Errorf("failed to check overlap: %w", err)
		}
		if overlap {
			return leave.ErrOverlapping
		}

		created, err = s.leaveRepo.Create(txCtx, request)
		if err != nil {
			return fmt.Errorf("failed to create leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.Response{}, err
	}

	s.notifySubmitted(ctx, emp, created)

	return toResponse(created), nil
}

// Get implements leave.Service.
func (s *leaveServiceImpl) Get(ctx context.Context, id string, requesterEmployeeID string, isManager bool) (leave.Response, error) {
	request, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.Response{}, err
	}

	if !isManager && request.EmployeeID != requesterEmployeeID {
		return leave.Response{}, leave.ErrUnauthorized
	}

	return toResponse(request), nil
}

// List implements leave.Service.
func (s *leaveServiceImpl) List(ctx context.Context, filter leave.ListFilter) (leave.ListResponse, error) {
	requests, total, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return leave.ListResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.Response, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, toResponse(r))
	}
	return leave.ListResponse{Requests: responses, TotalItems: total}, nil
}

// ListMine implements leave.Service.
func (s *leaveServiceImpl) ListMine(ctx context.Context, employeeID string, filter leave.ListFilter) (leave.ListResponse, error) {
	filter.EmployeeID = &employeeID
	return s.List(ctx, filter)
}

// Approve implements leave.Service.
func (s *leaveServiceImpl) Approve(ctx context.Context, req leave.ApproveRequest) (leave.Response, error) {
	return s.decide(ctx, req.ID, req.ApprovedBy, approval.StatusApproved, nil)
}

// Reject implements leave.Service.
func (s *leaveServiceImpl) Reject(ctx context.Context, req leave.RejectRequest) (leave.Response, error) {
	if err := req.Validate(); err != nil {
		return leave.Response{}, err
	}
	return s.decide(ctx, req.ID, req.RejectedBy, approval.StatusRejected, &req.Reason)
}

func (s *leaveServiceImpl) decide(ctx context.Context, id, deciderID, status string, reason *string) (leave.Response, error) {
	request, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.Response{}, err
	}

	if request.Status != approval.StatusPending {
		return leave.Response{}, leave.ErrAlreadyProcessed
	}

	now := time.Now()
	request.Status = status
	request.ApprovedBy = &deciderID
	request.ApprovedAt = &now
	request.RejectionReason = reason

	if err := s.leaveRepo.Update(ctx, request); err != nil {
		return leave.Response{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	s.notifyDecided(ctx, request, status, reason)

	return toResponse(request), nil
}

func (s *leaveServiceImpl) notifySubmitted(ctx context.Context, emp employee.Employee, request leave.Request) {
	if request.Status != approval.StatusPending {
		return
	}

	managers, err := s.employeeRepo.GetManagers(ctx)
	if err != nil {
		return
	}

	for _, m := range managers {
		_ = s.notificationSvc.QueueNotification(ctx, notification.CreateNotificationRequest{
			RecipientID: m.ID,
			SenderID:    &emp.ID,
			Type:        notification.TypeLeaveSubmitted,
			Title:       "New leave request",
			Message: fmt.Sprintf("%s requested %s leave %s to %s",
				emp.FullName, request.Category,
				request.StartDate.Format("2006-01-02"), request.EndDate.Format("2006-01-02")),
			Data: map[string]interface{}{"request_id": request.ID},
		})
	}
}

func (s *leaveServiceImpl) notifyDecided(ctx context.Context, request leave.Request, status string, reason *string) {
	emp, err := s.employeeRepo.GetByID(ctx, request.EmployeeID)
	if err != nil {
		return
	}

	notifType := notification.TypeLeaveApproved
	message := fmt.Sprintf("Your leave request starting %s was approved", request.StartDate.Format("2006-01-02"))
	if status == approval.StatusRejected {
		notifType = notification.TypeLeaveRejected
		message = fmt.Sprintf("Your leave request starting %s was rejected", request.StartDate.Format("2006-01-02"))
		if reason != nil {
			message += ": " + *reason
		}
	}

	_ = s.notificationSvc.QueueNotification(ctx, notification.CreateNotificationRequest{
		RecipientID: emp.ID,
		Type:        notifType,
		Title:       "Leave request update",
		Message:     message,
		Data:        map[string]interface{}{"request_id": request.ID},
		EmailTo:     &emp.Email,
	})
}

func toResponse(r leave.Request) leave.Response {
	resp := leave.Response{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		Category:     r.Category,
		StartDate:    r.StartDate.Format("2006-01-02"),
		EndDate:      r.EndDate.Format("2006-01-02"),
		Days:         r.Days,
		Reason:       r.Reason,
		Status:       r.Status,
		ApprovedBy:   r.ApprovedBy,
	}
	if r.ApprovedAt != nil {
		approvedAt := r.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &approvedAt
	}
	return resp
}
