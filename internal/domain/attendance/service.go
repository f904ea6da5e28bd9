package attendance

import "context"

// Service defines business logic for attendance operations
type Service interface {
	// ClockIn processes employee check-in with geofence validation
	ClockIn(ctx context.Context, req ClockInRequest) (Response, error)

	// ClockOut processes employee check-out
	ClockOut(ctx context.Context, req ClockOutRequest) (Response, error)

	// GetMyAttendance retrieves attendance records for the authenticated employee
	GetMyAttendance(ctx context.Context, employeeID string, filter ListFilter) (ListResponse, error)

	// List retrieves attendance records with filters (manager/admin)
	List(ctx context.Context, filter ListFilter) (ListResponse, error)

	// Get retrieves a single attendance record by ID
	Get(ctx context.Context, id string) (Response, error)
}
