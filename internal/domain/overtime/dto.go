package overtime

import (
	"time"

	"github.com/hrpulse/attendance-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	EmployeeID string `json:"-"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Type       string `json:"type"`
	Reason     string `json:"reason"`

	// Parsed by Validate
	Start time.Time `json:"-"`
	End   time.Time `json:"-"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDateTime(r.StartTime)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be an ISO8601 timestamp",
		})
	}

	end, okEnd := validator.IsValidDateTime(r.EndTime)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be an ISO8601 timestamp",
		})
	}

	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must not be before start_time",
		})
	}

	if r.Type == "" {
		r.Type = TypeNormal
	}
	if !validator.IsInSlice(r.Type, Types) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of normal, pre_shift, holiday",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	r.Start = start
	r.End = end
	return nil
}

// PreviewRequest asks for a price without persisting anything.
type PreviewRequest struct {
	EmployeeID string `json:"-"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Type       string `json:"type"`

	Start time.Time `json:"-"`
	End   time.Time `json:"-"`
}

func (r *PreviewRequest) Validate() error {
	cr := CreateRequest{
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Type:      r.Type,
		Reason:    "preview",
	}
	if err := cr.Validate(); err != nil {
		return err
	}
	r.Type = cr.Type
	r.Start = cr.Start
	r.End = cr.End
	return nil
}

type ApproveRequest struct {
	ID         string `json:"-"`
	ApprovedBy string `json:"-"`
}

type RejectRequest struct {
	ID         string `json:"-"`
	RejectedBy string `json:"-"`
	Reason     string `json:"reason"`
}

func (r *RejectRequest) Validate() error {
	if validator.IsEmpty(r.Reason) {
		return validator.ValidationErrors{{
			Field:   "reason",
			Message: "rejection reason is required",
		}}
	}
	return nil
}

type ListFilter struct {
	EmployeeID *string
	Status     *string
	DateFrom   *time.Time
	DateTo     *time.Time
	Page       int
	Limit      int
}

type Response struct {
	ID             string   `json:"id"`
	EmployeeID     string   `json:"employee_id"`
	EmployeeName   *string  `json:"employee_name,omitempty"`
	Date           string   `json:"date"`
	StartTime      string   `json:"start_time"`
	EndTime        string   `json:"end_time"`
	Type           string   `json:"type"`
	Reason         string   `json:"reason"`
	RateMultiplier float64  `json:"rate_multiplier"`
	Hours          float64  `json:"hours"`
	HourlyRate     *float64 `json:"hourly_rate,omitempty"`
	Amount         *float64 `json:"amount"`
	IsHoliday      bool     `json:"is_holiday"`
	HolidayName    *string  `json:"holiday_name,omitempty"`
	Status         string   `json:"status"`
	ApprovedBy     *string  `json:"approved_by,omitempty"`
	ApprovedAt     *string  `json:"approved_at,omitempty"`
}

// PreviewResponse carries the computed price for the UI. A nil Amount means
// pricing is unavailable (missing salary configuration), which is distinct
// from a computed amount of 0.
type PreviewResponse struct {
	Hours          float64  `json:"hours"`
	HourlyRate     *float64 `json:"hourly_rate"`
	Amount         *float64 `json:"amount"`
	RateMultiplier float64  `json:"rate_multiplier"`
	IsHoliday      bool     `json:"is_holiday"`
	HolidayName    *string  `json:"holiday_name,omitempty"`
}

type ListResponse struct {
	Requests   []Response `json:"requests"`
	TotalItems int64      `json:"total_items"`
}
