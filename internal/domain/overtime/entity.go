package overtime

import "time"

// Overtime request types. A holiday on the requested date always wins the
// holiday rate regardless of the requested type.
const (
	TypeNormal   = "normal"
	TypePreShift = "pre_shift"
	TypeHoliday  = "holiday"
)

var Types = []string{TypeNormal, TypePreShift, TypeHoliday}

type Request struct {
	ID         string
	EmployeeID string
	Date       time.Time
	StartTime  time.Time
	EndTime    time.Time
	Type       string
	Reason     string

	// Pricing snapshot taken at creation time
	RateMultiplier float64
	Hours          float64
	HourlyRate     *float64
	Amount         *float64
	IsHoliday      bool
	HolidayName    *string

	Status          string
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO
	EmployeeName *string
}

// RateConfig holds the three overtime rate tiers. Zero values mean "use the
// default" for that tier.
type RateConfig struct {
	WorkdayRate float64
	WeekendRate float64
	HolidayRate float64
}

// Default rate multipliers applied when neither the settings store nor the
// employee record configures a tier.
const (
	DefaultWorkdayRate = 1.0
	DefaultWeekendRate = 1.5
	DefaultHolidayRate = 2.0
)

// Merge overlays per-employee overrides onto the base config. Nil overrides
// keep the base value.
func (c RateConfig) Merge(workday, weekend, holiday *float64) RateConfig {
	out := c
	if workday != nil {
		out.WorkdayRate = *workday
	}
	if weekend != nil {
		out.WeekendRate = *weekend
	}
	if holiday != nil {
		out.HolidayRate = *holiday
	}
	return out
}

// WithDefaults fills unset tiers with the built-in defaults.
func (c RateConfig) WithDefaults() RateConfig {
	out := c
	if out.WorkdayRate <= 0 {
		out.WorkdayRate = DefaultWorkdayRate
	}
	if out.WeekendRate <= 0 {
		out.WeekendRate = DefaultWeekendRate
	}
	if out.HolidayRate <= 0 {
		out.HolidayRate = DefaultHolidayRate
	}
	return out
}
