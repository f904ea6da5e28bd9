package settings

import (
	"github.com/hrpulse/attendance-backend-go/internal/pkg/validator"
)

type UpdateSettingRequest struct {
	Key       string `json:"key"`
	Value     string `json:"value"`
	UpdatedBy string `json:"-"`
}

func (r *UpdateSettingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Key) {
		errs = append(errs, validator.ValidationError{
			Field:   "key",
			Message: "key is required",
		})
	} else if !validator.IsInSlice(r.Key, KnownKeys) {
		errs = append(errs, validator.ValidationError{
			Field:   "key",
			Message: "unknown setting key",
		})
	}

	if validator.IsEmpty(r.Value) {
		errs = append(errs, validator.ValidationError{
			Field:   "value",
			Message: "value is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SettingResponse struct {
	Key       string `json:"key"`
	Value     string `json:"value"`
	UpdatedAt string `json:"updated_at"`
}
