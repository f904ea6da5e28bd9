package attendance

import (
	"mime/multipart"
	"strings"
	"time"

	"github.com/hrpulse/attendance-backend-go/internal/pkg/validator"
)

type ClockInRequest struct {
	EmployeeID string                `json:"-"`
	Latitude   float64               `json:"latitude"`
	Longitude  float64               `json:"longitude"`
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *ClockInRequest) Validate() error {
	return validateClockPayload(r.Latitude, r.Longitude, r.FileHeader)
}

type ClockOutRequest struct {
	EmployeeID string                `json:"-"`
	Latitude   float64               `json:"latitude"`
	Longitude  float64               `json:"longitude"`
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *ClockOutRequest) Validate() error {
	return validateClockPayload(r.Latitude, r.Longitude, r.FileHeader)
}

func validateClockPayload(lat, lng float64, fileHeader *multipart.FileHeader) error {
	var errs validator.ValidationErrors

	if !validator.IsValidLatitude(lat) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(lng) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if fileHeader == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "file",
			Message: "attendance proof photo is required",
		})
	} else {
		filename := fileHeader.Filename
		idx := strings.LastIndex(filename, ".")
		ext := ""
		if idx >= 0 {
			ext = strings.ToLower(filename[idx:])
		}
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
			errs = append(errs, validator.ValidationError{
				Field:   "file",
				Message: "invalid file type: only jpg, jpeg, png allowed",
			})
		} else if fileHeader.Size > 10<<20 { // 10MB
			errs = append(errs, validator.ValidationError{
				Field:   "file",
				Message: "attendance proof photo size must not exceed 10MB",
			})
		}
	}

	if len(errs) > 0 {
		return errs
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
	ID                string   `json:"id"`
	EmployeeID        string   `json:"employee_id"`
	EmployeeName      *string  `json:"employee_name,omitempty"`
	Date              string   `json:"date"`
	ClockInTime       *string  `json:"clock_in_time"`
	ClockOutTime      *string  `json:"clock_out_time"`
	ClockInDistanceM  *int     `json:"clock_in_distance_m,omitempty"`
	ClockOutDistanceM *int     `json:"clock_out_distance_m,omitempty"`
	ClockInProofURL   *string  `json:"clock_in_proof_url,omitempty"`
	ClockOutProofURL  *string  `json:"clock_out_proof_url,omitempty"`
	WorkMinutes       *int     `json:"work_minutes"`
	Status            string   `json:"status"`
	LateMinutes       *int     `json:"late_minutes"`
	OvertimeMinutes   *int     `json:"overtime_minutes"`
}

type ListResponse struct {
	Attendances []Response `json:"attendances"`
	TotalItems  int64      `json:"total_items"`
}
