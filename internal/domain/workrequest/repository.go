package workrequest

import (
	"context"
	"time"
)

// Repository defines data access for WFH, field-work and late requests.
type Repository interface {
	Create(ctx context.Context, request Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	List(ctx context.Context, filter ListFilter) ([]Request, int64, error)
	Update(ctx context.Context, request Request) error

	// ExistsForDate reports whether the employee already has a non-rejected
	// request of the given kind on the given day.
	ExistsForDate(ctx context.Context, employeeID, kind string, date time.Time) (bool, error)

	// MarkExpiredBefore expires pending requests created before the cutoff
	// and returns how many rows changed.
	MarkExpiredBefore(ctx context.Context, before time.Time) (int64, error)
}
