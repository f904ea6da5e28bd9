package overtime

import (
	"context"
	"fmt"
	"time"

	"github.com/hrpulse/attendance-backend-go/internal/config"
	"github.com/hrpulse/attendance-backend-go/internal/domain/approval"
	"github.com/hrpulse/attendance-backend-go/internal/domain/employee"
	"github.com/hrpulse/attendance-backend-go/internal/domain/notification"
	"github.com/hrpulse/attendance-backend-go/internal/domain/overtime"
	"github.com/hrpulse/attendance-backend-go/internal/domain/settings"
	"github.com/hrpulse/attendance-backend-go/internal/pkg/database"
)

type overtimeServiceImpl struct {
	tx              database.Transactor
	overtimeRepo    overtime.Repository
	employeeRepo    employee.Repository
	settingsService settings.Service
	rateResolver    RateResolver
	gate            approval.Gate
	notificationSvc notification.Service
	work            config.WorkConfig
}

func NewOvertimeService(
	tx database.Transactor,
	overtimeRepo overtime.Repository,
	employeeRepo employee.Repository,
	settingsService settings.Service,
	rateResolver RateResolver,
	gate approval.Gate,
	notificationSvc notification.Service,
	work config.WorkConfig,
) overtime.Service {
	return &overtimeServiceImpl{
		tx:              tx,
		overtimeRepo:    overtimeRepo,
		employeeRepo:    employeeRepo,
		settingsService: settingsService,
		rateResolver:    rateResolver,
		gate:            gate,
		notificationSvc: notificationSvc,
		work:            work,
	}
}

// rateConfigFor builds the three-tier rate config for one employee: company
// settings first, then per-employee overrides.
func (s *overtimeServiceImpl) rateConfigFor(ctx context.Context, emp employee.Employee) overtime.RateConfig {
	cfg := overtime.RateConfig{
		WorkdayRate: s.settingsService.Float(ctx, settings.KeyOTRateWorkday, overtime.DefaultWorkdayRate),
		WeekendRate: s.settingsService.Float(ctx, settings.KeyOTRateWeekend, overtime.DefaultWeekendRate),
		HolidayRate: s.settingsService.Float(ctx, settings.KeyOTRateHoliday, overtime.DefaultHolidayRate),
	}
	return cfg.Merge(emp.OTRateWorkday, emp.OTRateWeekend, emp.OTRateHoliday)
}

// price resolves the rate and computes the monetary snapshot for a span.
func (s *overtimeServiceImpl) price(ctx context.Context, emp employee.Employee, start, end time.Time, otType string) (ResolvedRate, CalcResult, error) {
	cfg := s.rateConfigFor(ctx, emp)
	rate := s.rateResolver.ResolveRate(ctx, start, emp.BranchID, otType, cfg)

	var salary float64
	if emp.BaseSalary != nil {
		salary = *emp.BaseSalary
	}

	result, err := CalculateOT(CalcInput{
		Start:        start,
		End:          end,
		BaseSalary:   salary,
		Multiplier:   rate.Multiplier,
		DaysPerMonth: s.settingsService.Float(ctx, settings.KeyWorkDaysPerMonth, s.work.DaysPerMonth),
		HoursPerDay:  s.settingsService.Float(ctx, settings.KeyWorkHoursPerDay, s.work.HoursPerDay),
	})
	if err != nil {
		return ResolvedRate{}, CalcResult{}, err
	}

	return rate, result, nil
}

// Create implements overtime.Service.
func (s *overtimeServiceImpl) Create(ctx context.Context, req overtime.CreateRequest) (overtime.Response, error) {
	if err := req.Validate(); err != nil {
		return overtime.Response{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return overtime.Response{}, fmt.Errorf("failed to get employee: %w", err)
	}

	// The calendar day comes from the start timestamp's own wall clock, so a
	// pre-shift span in a +07:00 branch lands on the same local day the rate
	// resolver priced it on.
	day := time.Date(req.Start.Year(), req.Start.Month(), req.Start.Day(), 0, 0, 0, 0, req.Start.Location())

	request := overtime.Request{
		EmployeeID: req.EmployeeID,
		Date:       day,
		StartTime:  req.Start,
		EndTime:    req.End,
		Type:       req.Type,
		Reason:     req.Reason,
	}

	rate, result, err := s.price(ctx, emp, req.Start, req.End, req.Type)
	if err != nil {
		return overtime.Response{}, err
	}

	request.RateMultiplier = rate.Multiplier
	request.IsHoliday = rate.IsHoliday
	request.HolidayName = rate.HolidayName
	request.Hours = result.Hours
	request.HourlyRate = result.HourlyRate
	request.Amount = result.Amount

	fields := s.gate.Decide(ctx, approval.TypeOvertime)
	request.Status = fields.Status
	request.ApprovedAt = fields.ApprovedAt
	request.ApprovedBy = fields.ApprovedBy

	// Overlap check and insert run in one transaction so two concurrent
	// submissions for the same span cannot both pass the check.
	var created overtime.Request
	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		overlap, err := s.overtimeRepo.HasOverlap(txCtx, req.EmployeeID, request)
		if err != nil {
			return fmt.Errorf("failed to check overlap: %w", err)
		}
		if overlap {
			return overtime.ErrOverlapping
		}

		created, err = s.overtimeRepo.Create(txCtx, request)
		if err != nil {
			return fmt.Errorf("failed to create overtime request: %w", err)
		}
		return nil
	})
	if err != nil {
		return overtime.Response{}, err
	}

	s.notifySubmitted(ctx, emp, created)

	return toResponse(created), nil
}

// Preview implements overtime.Service.
func (s *overtimeServiceImpl) Preview(ctx context.Context, req overtime.PreviewRequest) (overtime.PreviewResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.PreviewResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return overtime.PreviewResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	rate, result, err := s.price(ctx, emp, req.Start, req.End, req.Type)
	if err != nil {
		return overtime.PreviewResponse{}, err
	}

	return overtime.PreviewResponse{
		Hours:          result.Hours,
		HourlyRate:     result.HourlyRate,
		Amount:         result.Amount,
		RateMultiplier: rate.Multiplier,
		IsHoliday:      rate.IsHoliday,
		HolidayName:    rate.HolidayName,
	}, nil
}

// Get implements overtime.Service.
func (s *overtimeServiceImpl) Get(ctx context.Context, id string, requesterEmployeeID string, isManager bool) (overtime.Response, error) {
	request, err := s.overtimeRepo.GetByID(ctx, id)
	if err != nil {
		return overtime.Response{}, err
	}

	if !isManager && request.EmployeeID != requesterEmployeeID {
		return overtime.Response{}, overtime.ErrUnauthorized
	}

	return toResponse(request), nil
}

// List implements overtime.Service.
func (s *overtimeServiceImpl) List(ctx context.Context, filter overtime.ListFilter) (overtime.ListResponse, error) {
	requests, total, err := s.overtimeRepo.List(ctx, filter)
	if err != nil {
		return overtime.ListResponse{}, fmt.Errorf("failed to list overtime requests: %w", err)
	}
	return toListResponse(requests, total), nil
}

// ListMine implements overtime.Service.
func (s *overtimeServiceImpl) ListMine(ctx context.Context, employeeID string, filter overtime.ListFilter) (overtime.ListResponse, error) {
	filter.EmployeeID = &employeeID
	return s.List(ctx, filter)
}

// Approve implements overtime.Service.
func (s *overtimeServiceImpl) Approve(ctx context.Context, req overtime.ApproveRequest) (overtime.Response, error) {
	return s.decide(ctx, req.ID, req.ApprovedBy, approval.StatusApproved, nil)
}

// Reject implements overtime.Service.
func (s *overtimeServiceImpl) Reject(ctx context.Context, req overtime.RejectRequest) (overtime.Response, error) {
	if err := req.Validate(); err != nil {
		return overtime.Response{}, err
	}
	return s.decide(ctx, req.ID, req.RejectedBy, approval.StatusRejected, &req.Reason)
}

func (s *overtimeServiceImpl) decide(ctx context.Context, id, deciderID, status string, reason *string) (overtime.Response, error) {
	request, err := s.overtimeRepo.GetByID(ctx, id)
	if err != nil {
		return overtime.Response{}, err
	}

	if request.Status != approval.StatusPending {
		return overtime.Response{}, overtime.ErrAlreadyProcessed
	}

	now := time.Now()
	request.Status = status
	request.ApprovedBy = &deciderID
	request.ApprovedAt = &now
	request.RejectionReason = reason

	if err := s.overtimeRepo.Update(ctx, request); err != nil {
		return overtime.Response{}, fmt.Errorf("failed to update overtime request: %w", err)
	}

	s.notifyDecided(ctx, request, status, reason)

	return toResponse(request), nil
}

func (s *overtimeServiceImpl) notifySubmitted(ctx context.Context, emp employee.Employee, request overtime.Request) {
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
			Type:        notification.TypeOvertimeSubmitted,
			Title:       "New overtime request",
			Message:     fmt.Sprintf("%s requested overtime on %s", emp.FullName, request.Date.Format("2006-01-02")),
			Data: map[string]interface{}{
				"request_id": request.ID,
				"hours":      request.Hours,
			},
		})
	}
}

func (s *overtimeServiceImpl) notifyDecided(ctx context.Context, request overtime.Request, status string, reason *string) {
	emp, err := s.employeeRepo.GetByID(ctx, request.EmployeeID)
	if err != nil {
		return
	}

	notifType := notification.TypeOvertimeApproved
	message := fmt.Sprintf("Your overtime request for %s was approved", request.Date.Format("2006-01-02"))
	if status == approval.StatusRejected {
		notifType = notification.TypeOvertimeRejected
		message = fmt.Sprintf("Your overtime request for %s was rejected", request.Date.Format("2006-01-02"))
		if reason != nil {
			message += ": " + *reason
		}
	}

	_ = s.notificationSvc.QueueNotification(ctx, notification.CreateNotificationRequest{
		RecipientID: emp.ID,
		Type:        notifType,
		Title:       "Overtime request update",
		Message:     message,
		Data:        map[string]interface{}{"request_id": request.ID},
		EmailTo:     &emp.Email,
	})
}

func toResponse(r overtime.Request) overtime.Response {
	resp := overtime.Response{
		ID:             r.ID,
		EmployeeID:     r.EmployeeID,
		EmployeeName:   r.EmployeeName,
		Date:           r.Date.Format("2006-01-02"),
		StartTime:      r.StartTime.Format(time.RFC3339),
		EndTime:        r.EndTime.Format(time.RFC3339),
		Type:           r.Type,
		Reason:         r.Reason,
		RateMultiplier: r.RateMultiplier,
		Hours:          r.Hours,
		HourlyRate:     r.HourlyRate,
		Amount:         r.Amount,
		IsHoliday:      r.IsHoliday,
		HolidayName:    r.HolidayName,
		Status:         r.Status,
		ApprovedBy:     r.ApprovedBy,
	}
	if r.ApprovedAt != nil {
		approvedAt := r.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &approvedAt
	}
	return resp
}

func toListResponse(requests []overtime.Request, total int64) overtime.ListResponse {
	responses := make([]overtime.Response, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, toResponse(r))
	}
	return overtime.ListResponse{Requests: responses, TotalItems: total}
}
