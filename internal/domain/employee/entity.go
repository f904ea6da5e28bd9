package employee

import "time"

// Employment roles used for authorization.
const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

type Employee struct {
	ID               string
	UserID           *string
	FullName         string
	Email            string
	BranchID         *string
	Role             string
	BaseSalary       *float64
	EmploymentStatus string

	// Per-employee overtime rate overrides. Nil means the company-level
	// setting (or the built-in default) applies.
	OTRateWorkday *float64
	OTRateWeekend *float64
	OTRateHoliday *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
