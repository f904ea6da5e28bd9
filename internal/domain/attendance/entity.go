package attendance

import "time"

// Attendance statuses.
const (
	StatusPresent    = "present"
	StatusLate       = "late"
	StatusAbsent     = "absent"
	StatusAutoClosed = "auto_closed"
)

type Attendance struct {
	ID         string
	EmployeeID string

	// Date is the working day in the branch's timezone, not a timestamp.
	Date time.Time

	ClockIn            *time.Time
	ClockOut           *time.Time
	WorkMinutes        *int
	ClockInLatitude    *float64
	ClockInLongitude   *float64
	ClockInDistanceM   *int
	ClockInProofURL    *string
	ClockOutLatitude   *float64
	ClockOutLongitude  *float64
	ClockOutDistanceM  *int
	ClockOutProofURL   *string
	Status             string
	LateMinutes        *int
	OvertimeMinutes    *int
	Note               *string
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// DTO
	EmployeeName *string
}
