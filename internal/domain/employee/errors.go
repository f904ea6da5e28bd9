package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailExists      = errors.New("email already registered")
	ErrNoBranchAssigned = errors.New("employee has no branch assigned")
)
