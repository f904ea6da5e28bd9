package workrequest

import "errors"

var (
	ErrRequestNotFound  = errors.New("work request not found")
	ErrAlreadyProcessed = errors.New("work request has already been approved or rejected")
	ErrDuplicate        = errors.New("a request of this kind already exists for this date")
	ErrUnauthorized     = errors.New("unauthorized to access this work request")
)
