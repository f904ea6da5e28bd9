package workrequest

import (
	"context"
	"fmt"
	"time"

	"github.com/hrpulse/attendance-backend-go/internal/domain/approval"
	"github.com/hrpulse/attendance-backend-go/internal/domain/employee"
	"github.com/hrpulse/attendance-backend-go/internal/domain/notification"
	"github.com/hrpulse/attendance-backend-go/internal/domain/workrequest"
)

// gateTypeFor maps a work request kind to its approval request type.
var gateTypeFor = map[string]approval.RequestType{
	workrequest.KindWFH:       approval.TypeWFH,
	workrequest.KindFieldWork: approval.TypeFieldWork,
	workrequest.KindLate:      approval.TypeLate,
}

type workRequestServiceImpl struct {
	workRequestRepo workrequest.Repository
	employeeRepo    employee.Repository
	gate            approval.Gate
	notificationSvc notification.Service
}

func NewWorkRequestService(
	workRequestRepo workrequest.Repository,
	employeeRepo employee.Repository,
	gate approval.Gate,
	notificationSvc notification.Service,
) workrequest.Service {
	return &workRequestServiceImpl{
		workRequestRepo: workRequestRepo,
		employeeRepo:    employeeRepo,
		gate:            gate,
		notificationSvc: notificationSvc,
	}
}

// Create implements workrequest.Service.
func (s *workRequestServiceImpl) Create(ctx context.Context, req workrequest.CreateRequest) (workrequest.Response, error) {
	if err := req.Validate(); err != nil {
		return workrequest.Response{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return workrequest.Response{}, fmt.Errorf("failed to get employee: %w", err)
	}

	exists, err := s.workRequestRepo.ExistsForDate(ctx, req.EmployeeID, req.Kind, req.Day)
	if err != nil {
		return workrequest.Response{}, fmt.Errorf("failed to check existing requests: %w", err)
	}
	if exists {
		return workrequest.Response{}, workrequest.ErrDuplicate
	}

	request := workrequest.Request{
		EmployeeID: req.EmployeeID,
		Kind:       req.Kind,
		Date:       req.Day,
		StartTime:  req.Start,
		EndTime:    req.End,
		Reason:     req.Reason,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Location:   req.Location,
	}

	fields := s.gate.Decide(ctx, gateTypeFor[req.Kind])
	request.Status = fields.Status
	request.ApprovedAt = fields.ApprovedAt
	request.ApprovedBy = fields.ApprovedBy

	created, err := s.workRequestRepo.Create(ctx, request)
	if err != nil {
		return workrequest.Response{}, fmt.Errorf("failed to create work request: %w", err)
	}

	s.notifySubmitted(ctx, emp, created)

	return toResponse(created), nil
}

// Get implements workrequest.Service.
func (s *workRequestServiceImpl) Get(ctx context.Context, id string, requesterEmployeeID string, isManager bool) (workrequest.Response, error) {
	request, err := s.workRequestRepo.GetByID(ctx, id)
	if err != nil {
		return workrequest.Response{}, err
	}

	if !isManager && request.EmployeeID != requesterEmployeeID {
		return workrequest.Response{}, workrequest.ErrUnauthorized
	}

	return toResponse(request), nil
}

// List implements workrequest.Service.
func (s *workRequestServiceImpl) List(ctx context.Context, filter workrequest.ListFilter) (workrequest.ListResponse, error) {
	requests, total, err := s.workRequestRepo.List(ctx, filter)
	if err != nil {
		return workrequest.ListResponse{}, fmt.Errorf("failed to list work requests: %w", err)
	}

	responses := make([]workrequest.Response, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, toResponse(r))
	}
	return workrequest.ListResponse{Requests: responses, TotalItems: total}, nil
}

// ListMine implements workrequest.Service.
func (s *workRequestServiceImpl) ListMine(ctx context.Context, employeeID string, filter workrequest.ListFilter) (workrequest.ListResponse, error) {
	filter.EmployeeID = &employeeID
	return s.List(ctx, filter)
}

// Approve implements workrequest.Service.
func (s *workRequestServiceImpl) Approve(ctx context.Context, req workrequest.ApproveRequest) (workrequest.Response, error) {
	return s.decide(ctx, req.ID, req.ApprovedBy, approval.StatusApproved, nil)
}

// Reject implements workrequest.Service.
func (s *workRequestServiceImpl) Reject(ctx context.Context, req workrequest.RejectRequest) (workrequest.Response, error) {
	if err := req.Validate(); err != nil {
		return workrequest.Response{}, err
	}
	return s.decide(ctx, req.ID, req.RejectedBy, approval.StatusRejected, &req.Reason)
}

func (s *workRequestServiceImpl) decide(ctx context.Context, id, deciderID, status string, reason *string) (workrequest.Response, error) {
	request, err := s.workRequestRepo.GetByID(ctx, id)
	if err != nil {
		return workrequest.Response{}, err
	}

	if request.Status != approval.StatusPending {
		return workrequest.Response{}, workrequest.ErrAlreadyProcessed
	}

	now := time.Now()
	request.Status = status
	request.ApprovedBy = &deciderID
	request.ApprovedAt = &now
	request.RejectionReason = reason

	if err := s.workRequestRepo.Update(ctx, request); err != nil {
		return workrequest.Response{}, fmt.Errorf("failed to update work request: %w", err)
	}

	s.notifyDecided(ctx, request, status, reason)

	return toResponse(request), nil
}

func (s *workRequestServiceImpl) notifySubmitted(ctx context.Context, emp employee.Employee, request workrequest.Request) {
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
			Type:        notification.TypeWorkRequestSubmitted,
			Title:       "New work request",
			Message: fmt.Sprintf("%s submitted a %s request for %s",
				emp.FullName, request.Kind, request.Date.Format("2006-01-02")),
			Data: map[string]interface{}{"request_id": request.ID, "kind": request.Kind},
		})
	}
}

func (s *workRequestServiceImpl) notifyDecided(ctx context.Context, request workrequest.Request, status string, reason *string) {
	emp, err := s.employeeRepo.GetByID(ctx, request.EmployeeID)
	if err != nil {
		return
	}

	notifType := notification.TypeWorkRequestApproved
	message := fmt.Sprintf("Your %s request for %s was approved", request.Kind, request.Date.Format("2006-01-02"))
	if status == approval.StatusRejected {
		notifType = notification.TypeWorkRequestRejected
		message = fmt.Sprintf("Your %s request for %s was rejected", request.Kind, request.Date.Format("2006-01-02"))
		if reason != nil {
			message += ": " + *reason
		}
	}

	_ = s.notificationSvc.QueueNotification(ctx, notification.CreateNotificationRequest{
		RecipientID: emp.ID,
		Type:        notifType,
		Title:       "Work request update",
		Message:     message,
		Data:        map[string]interface{}{"request_id": request.ID, "kind": request.Kind},
		EmailTo:     &emp.Email,
	})
}

func toResponse(r workrequest.Request) workrequest.Response {
	resp := workrequest.Response{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		Kind:         r.Kind,
		Date:         r.Date.Format("2006-01-02"),
		Reason:       r.Reason,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		Location:     r.Location,
		Status:       r.Status,
		ApprovedBy:   r.ApprovedBy,
	}
	if r.StartTime != nil {
		st := r.StartTime.Format(time.RFC3339)
		resp.StartTime = &st
	}
	if r.EndTime != nil {
		et := r.EndTime.Format(time.RFC3339)
		resp.EndTime = &et
	}
	if r.ApprovedAt != nil {
		approvedAt := r.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &approvedAt
	}
	return resp
}
