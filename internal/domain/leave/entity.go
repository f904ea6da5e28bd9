package leave

import "time"

// Leave categories carried on the request; quota accounting is out of scope
// here and lives with payroll.
const (
	CategoryAnnual   = "annual"
	CategorySick     = "sick"
	CategoryPersonal = "personal"
	CategoryUnpaid   = "unpaid"
)

var Categories = []string{CategoryAnnual, CategorySick, CategoryPersonal, CategoryUnpaid}

type Request struct {
	ID         string
	EmployeeID string
	Category   string
	StartDate  time.Time
	EndDate    time.Time
	Days       int
	Reason     string

	Status          string
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO
	EmployeeName *string
}
