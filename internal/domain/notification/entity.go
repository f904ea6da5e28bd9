package notification

import "time"

// Type represents the kind of notification
type Type string

const (
	TypeOvertimeSubmitted    Type = "overtime_submitted"
	TypeOvertimeApproved     Type = "overtime_approved"
	TypeOvertimeRejected     Type = "overtime_rejected"
	TypeLeaveSubmitted       Type = "leave_submitted"
	TypeLeaveApproved        Type = "leave_approved"
	TypeLeaveRejected        Type = "leave_rejected"
	TypeWorkRequestSubmitted Type = "work_request_submitted"
	TypeWorkRequestApproved  Type = "work_request_approved"
	TypeWorkRequestRejected  Type = "work_request_rejected"
	TypeRequestExpired       Type = "request_expired"
	TypeAttendanceAutoClosed Type = "attendance_auto_closed"
)

type Notification struct {
	ID          string
	RecipientID string
	SenderID    *string
	Type        Type
	Title       string
	Message     string
	Data        map[string]interface{}
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}
