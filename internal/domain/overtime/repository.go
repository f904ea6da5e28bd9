package overtime

import (
	"context"
	"time"
)

// Repository defines data access for overtime requests.
type Repository interface {
	// Create creates a new overtime request.
	Create(ctx context.Context, request Request) (Request, error)

	// GetByID retrieves an overtime request by ID.
	GetByID(ctx context.Context, id string) (Request, error)

	// List retrieves overtime requests with filters and pagination.
	List(ctx context.Context, filter ListFilter) ([]Request, int64, error)

	// Update updates an existing overtime request.
	Update(ctx context.Context, request Request) error

	// HasOverlap reports whether the employee already has a non-rejected
	// request intersecting the given time range.
	HasOverlap(ctx context.Context, employeeID string, request Request) (bool, error)

	// MarkExpiredBefore expires pending requests created before the cutoff
	// and returns how many rows changed.
	MarkExpiredBefore(ctx context.Context, before time.Time) (int64, error)
}
