package approval

import "time"

// RequestType identifies one of the request flows that share the
// auto-approval gate.
type RequestType string

const (
	TypeOvertime  RequestType = "OT"
	TypeLeave     RequestType = "LEAVE"
	TypeWFH       RequestType = "WFH"
	TypeFieldWork RequestType = "FIELD_WORK"
	TypeLate      RequestType = "LATE"
)

// AllTypes lists every request type known to the gate.
var AllTypes = []RequestType{TypeOvertime, TypeLeave, TypeWFH, TypeFieldWork, TypeLate}

// Request status lifecycle shared by all request types.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
	StatusExpired  = "expired"
)

// Fields carries the initial approval state stamped onto a request record at
// creation time. ApprovedBy is nil when the system-actor lookup failed; the
// approval itself still stands.
type Fields struct {
	Status     string
	ApprovedAt *time.Time
	ApprovedBy *string
}
