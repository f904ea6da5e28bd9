package settings

import "time"

// Setting is a single row of the generic key-value configuration store.
type Setting struct {
	Key       string
	Value     string
	UpdatedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Well-known setting keys. Values are stored as strings; numeric settings are
// parsed on read and fall back to defaults when absent or malformed.
const (
	KeyAutoApproveOT        = "auto_approve_ot"
	KeyAutoApproveLeave     = "auto_approve_leave"
	KeyAutoApproveWFH       = "auto_approve_wfh"
	KeyAutoApproveFieldWork = "auto_approve_field_work"
	KeyAutoApproveLate      = "auto_approve_late"

	KeyOTRateWorkday = "ot_rate_workday"
	KeyOTRateWeekend = "ot_rate_weekend"
	KeyOTRateHoliday = "ot_rate_holiday"

	KeyWorkDaysPerMonth = "work_days_per_month"
	KeyWorkHoursPerDay  = "work_hours_per_day"
	KeyWorkStartTime    = "work_start_time"
	KeyWorkEndTime      = "work_end_time"
)

// KnownKeys lists every key the settings endpoints accept.
var KnownKeys = []string{
	KeyAutoApproveOT,
	KeyAutoApproveLeave,
	KeyAutoApproveWFH,
	KeyAutoApproveFieldWork,
	KeyAutoApproveLate,
	KeyOTRateWorkday,
	KeyOTRateWeekend,
	KeyOTRateHoliday,
	KeyWorkDaysPerMonth,
	KeyWorkHoursPerDay,
	KeyWorkStartTime,
	KeyWorkEndTime,
}
