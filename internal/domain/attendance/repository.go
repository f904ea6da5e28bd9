package attendance

import (
	"context"
	"time"
)

// Repository defines data access for attendance records.
type Repository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByID retrieves attendance by ID
	GetByID(ctx context.Context, id string) (Attendance, error)

	// Update updates an existing attendance record
	Update(ctx context.Context, attendance Attendance) error

	// List retrieves attendance records with filters and pagination
	List(ctx context.Context, filter ListFilter) ([]Attendance, int64, error)

	// HasCheckedInToday reports whether a record already exists for the
	// employee on the given local working day.
	HasCheckedInToday(ctx context.Context, employeeID string, dateLocal string) (bool, error)

	// GetOpenSession retrieves the employee's latest record without a clock-out.
	GetOpenSession(ctx context.Context, employeeID string) (Attendance, error)

	// GetStaleOpenSessions retrieves open sessions whose clock-in is older
	// than the cutoff.
	GetStaleOpenSessions(ctx context.Context, olderThan time.Time) ([]Attendance, error)
}
