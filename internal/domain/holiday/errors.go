package holiday

import "errors"

var (
	ErrHolidayNotFound = errors.New("holiday not found")
	ErrHolidayExists   = errors.New("a holiday already exists on this date")
	ErrBranchRequired  = errors.New("branch_id is required for branch holidays")
)
