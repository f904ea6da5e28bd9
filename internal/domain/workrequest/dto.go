package workrequest

import (
	"time"

	"github.com/hrpulse/attendance-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	EmployeeID string   `json:"-"`
	Kind       string   `json:"kind"`
	Date       string   `json:"date"`
	StartTime  *string  `json:"start_time,omitempty"`
	EndTime    *string  `json:"end_time,omitempty"`
	Reason     string   `json:"reason"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	Location   *string  `json:"location,omitempty"`

	Day   time.Time  `json:"-"`
	Start *time.Time `json:"-"`
	End   *time.Time `json:"-"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Kind, Kinds) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of WFH, FIELD_WORK, LATE",
		})
	}

	day, okDay := validator.IsValidDate(r.Date)
	if !okDay {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	var start, end *time.Time
	if r.StartTime != nil {
		t, ok := validator.IsValidDateTime(*r.StartTime)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time must be an ISO8601 timestamp",
			})
		} else {
			start = &t
		}
	}
	if r.EndTime != nil {
		t, ok := validator.IsValidDateTime(*r.EndTime)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be an ISO8601 timestamp",
			})
		} else {
			end = &t
		}
	}
	if start != nil && end != nil && end.Before(*start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must not be before start_time",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if r.Kind == KindFieldWork {
		if r.Latitude == nil || r.Longitude == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "latitude",
				Message: "field work requires destination coordinates",
			})
		} else {
			if !validator.IsValidLatitude(*r.Latitude) {
				errs = append(errs, validator.ValidationError{
					Field:   "latitude",
					Message: "latitude must be between -90 and 90",
				})
			}
			if !validator.IsValidLongitude(*r.Longitude) {
				errs = append(errs, validator.ValidationError{
					Field:   "longitude",
					Message: "longitude must be between -180 and 180",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	r.Day = day
	r.Start = start
	r.End = end
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
	Kind       *string
	Status     *string
	Page       int
	Limit      int
}

type Response struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employee_id"`
	EmployeeName *string  `json:"employee_name,omitempty"`
	Kind         string   `json:"kind"`
	Date         string   `json:"date"`
	StartTime    *string  `json:"start_time,omitempty"`
	EndTime      *string  `json:"end_time,omitempty"`
	Reason       string   `json:"reason"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Location     *string  `json:"location,omitempty"`
	Status       string   `json:"status"`
	ApprovedBy   *string  `json:"approved_by,omitempty"`
	ApprovedAt   *string  `json:"approved_at,omitempty"`
}

type ListResponse struct {
	Requests   []Response `json:"requests"`
	TotalItems int64      `json:"total_items"`
}
