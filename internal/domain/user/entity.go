package user

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Linked employee record, when one exists
	EmployeeID *string
	Role       *string
}
