package workrequest

import "time"

// Work request kinds. WFH and field-work cover a whole day or a time range;
// late requests excuse a late clock-in on the given date.
const (
	KindWFH       = "WFH"
	KindFieldWork = "FIELD_WORK"
	KindLate      = "LATE"
)

var Kinds = []string{KindWFH, KindFieldWork, KindLate}

type Request struct {
	ID         string
	EmployeeID string
	Kind       string
	Date       time.Time
	StartTime  *time.Time
	EndTime    *time.Time
	Reason     string

	// Field-work destination, required for KindFieldWork
	Latitude  *float64
	Longitude *float64
	Location  *string

	Status          string
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO
	EmployeeName *string
}
