package leave

import "errors"

var (
	ErrRequestNotFound  = errors.New("leave request not found")
	ErrAlreadyProcessed = errors.New("leave request has already been approved or rejected")
	ErrOverlapping      = errors.New("a leave request already exists for these dates")
	ErrUnauthorized     = errors.New("unauthorized to access this leave request")
)
