package overtime

import "errors"

var (
	ErrRequestNotFound  = errors.New("overtime request not found")
	ErrEndBeforeStart   = errors.New("end time must not be before start time")
	ErrAlreadyProcessed = errors.New("overtime request has already been approved or rejected")
	ErrOverlapping      = errors.New("an overtime request already exists for this time range")
	ErrUnauthorized     = errors.New("unauthorized to access this overtime request")
)
