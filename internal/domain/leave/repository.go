package leave

import (
	"context"
	"time"
)

// Repository defines data access for leave requests.
type Repository interface {
	Create(ctx context.Context, request Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	List(ctx context.Context, filter ListFilter) ([]Request, int64, error)
	Update(ctx context.Context, request Request) error

	// HasOverlap reports whether the employee already has a non-rejected
	// leave request intersecting the given date range.
	HasOverlap(ctx context.Context, employeeID string, request Request) (bool, error)

	// MarkExpiredBefore expires pending requests created before the cutoff
	// and returns how many rows changed.
	MarkExpiredBefore(ctx context.Context, before time.Time) (int64, error)
}
