package response

import (
	"errors"
	"net/http"

	"github.com/hrpulse/attendance-backend-go/internal/domain/attendance"
	"github.com/hrpulse/attendance-backend-go/internal/domain/auth"
	"github.com/hrpulse/attendance-backend-go/internal/domain/employee"
	"github.com/hrpulse/attendance-backend-go/internal/domain/holiday"
	"github.com/hrpulse/attendance-backend-go/internal/domain/leave"
	"github.com/hrpulse/attendance-backend-go/internal/domain/notification"
	"github.com/hrpulse/attendance-backend-go/internal/domain/overtime"
	"github.com/hrpulse/attendance-backend-go/internal/domain/settings"
	"github.com/hrpulse/attendance-backend-go/internal/domain/user"
	"github.com/hrpulse/attendance-backend-go/internal/domain/workrequest"
	"github.com/hrpulse/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token revoked")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Employee
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrNoBranchAssigned):
		BadRequest(w, "Employee has no branch assigned", nil)

	// Attendance
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "You have already checked in today")
	case errors.Is(err, attendance.ErrOutsideAllowedRadius):
		Forbidden(w, "You are outside the allowed check-in radius")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "You have not checked in yet", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "You have already checked out")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrUnauthorized):
		Forbidden(w, "Unauthorized to access this attendance record")

	// Overtime
	case errors.Is(err, overtime.ErrRequestNotFound):
		NotFound(w, "Overtime request not found")
	case errors.Is(err, overtime.ErrEndBeforeStart):
		BadRequest(w, "End time must not be before start time", nil)
	case errors.Is(err, overtime.ErrAlreadyProcessed):
		Conflict(w, "Overtime request already processed")
	case errors.Is(err, overtime.ErrOverlapping):
		Conflict(w, "An overtime request already exists for this time range")
	case errors.Is(err, overtime.ErrUnauthorized):
		Forbidden(w, "Unauthorized to access this overtime request")

	// Leave
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrOverlapping):
		Conflict(w, "A leave request already exists for these dates")
	case errors.Is(err, leave.ErrUnauthorized):
		Forbidden(w, "Unauthorized to access this leave request")

	// Work requests
	case errors.Is(err, workrequest.ErrRequestNotFound):
		NotFound(w, "Work request not found")
	case errors.Is(err, workrequest.ErrAlreadyProcessed):
		Conflict(w, "Work request already processed")
	case errors.Is(err, workrequest.ErrDuplicate):
		Conflict(w, "A request of this kind already exists for this date")
	case errors.Is(err, workrequest.ErrUnauthorized):
		Forbidden(w, "Unauthorized to access this work request")

	// Holidays
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "A holiday already exists on this date")
	case errors.Is(err, holiday.ErrBranchRequired):
		BadRequest(w, "branch_id is required for branch holidays", nil)

	// Settings
	case errors.Is(err, settings.ErrSettingNotFound):
		NotFound(w, "Setting not found")
	case errors.Is(err, settings.ErrUnknownKey):
		BadRequest(w, "Unknown setting key", nil)

	// Notifications
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
