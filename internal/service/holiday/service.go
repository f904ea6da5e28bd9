package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/hrpulse/attendance-backend-go/internal/domain/branch"
	"github.com/hrpulse/attendance-backend-go/internal/domain/holiday"
	"github.com/hrpulse/attendance-backend-go/internal/pkg/validator"
)

type holidayServiceImpl struct {
	holidayRepo holiday.Repository
	branchRepo  branch.Repository
}

func NewHolidayService(holidayRepo holiday.Repository, branchRepo branch.Repository) holiday.Service {
	return &holidayServiceImpl{
		holidayRepo: holidayRepo,
		branchRepo:  branchRepo,
	}
}

// Create implements holiday.Service.
func (s *holidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	if req.Type == holiday.TypeBranch {
		if _, err := s.branchRepo.GetByID(ctx, *req.BranchID); err != nil {
			return holiday.HolidayResponse{}, fmt.Errorf("failed to verify branch: %w", err)
		}
	}

	created, err := s.holidayRepo.Create(ctx, holiday.Holiday{
		Date:     date,
		Name:     req.Name,
		Type:     req.Type,
		BranchID: req.BranchID,
		IsActive: true,
	})
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return toResponse(created), nil
}

// List implements holiday.Service.
func (s *holidayServiceImpl) List(ctx context.Context, from, to string) ([]holiday.HolidayResponse, error) {
	fromDate, ok := validator.IsValidDate(from)
	if !ok {
		fromDate = time.Now().AddDate(0, -1, 0)
	}
	toDate, ok := validator.IsValidDate(to)
	if !ok {
		toDate = time.Now().AddDate(1, 0, 0)
	}

	holidays, err := s.holidayRepo.List(ctx, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, toResponse(h))
	}
	return responses, nil
}

// Update implements holiday.Service.
func (s *holidayServiceImpl) Update(ctx context.Context, id string, req holiday.UpdateHolidayRequest) (holiday.HolidayResponse, error) {
	h, err := s.holidayRepo.GetByID(ctx, id)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	if req.Name != nil {
		h.Name = *req.Name
	}
	if req.IsActive != nil {
		h.IsActive = *req.IsActive
	}

	if err := s.holidayRepo.Update(ctx, h); err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to update holiday: %w", err)
	}

	return toResponse(h), nil
}

// Delete implements holiday.Service.
func (s *holidayServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.holidayRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.holidayRepo.Delete(ctx, id)
}

func toResponse(h holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:       h.ID,
		Date:     h.Date.Format("2006-01-02"),
		Name:     h.Name,
		Type:     h.Type,
		BranchID: h.BranchID,
		IsActive: h.IsActive,
	}
}
