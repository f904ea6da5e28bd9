package holiday

import (
	"github.com/hrpulse/attendance-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Date     string  `json:"date"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	BranchID *string `json:"branch_id,omitempty"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsInSlice(r.Type, Types) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of public, company, branch",
		})
	}

	if r.Type == TypeBranch && (r.BranchID == nil || validator.IsEmpty(*r.BranchID)) {
		errs = append(errs, validator.ValidationError{
			Field:   "branch_id",
			Message: "branch_id is required for branch holidays",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateHolidayRequest struct {
	Name     *string `json:"name,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type HolidayResponse struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	BranchID *string `json:"branch_id,omitempty"`
	IsActive bool    `json:"is_active"`
}
