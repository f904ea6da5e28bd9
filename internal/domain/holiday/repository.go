package holiday

import (
	"context"
	"time"
)

// Repository defines data access for holiday rows.
type Repository interface {
	// Create creates a new holiday.
	Create(ctx context.Context, holiday Holiday) (Holiday, error)

	// GetByID retrieves a holiday by ID.
	GetByID(ctx context.Context, id string) (Holiday, error)

	// FindActiveByDate retrieves the first active holiday matching the given
	// calendar day. Public and company holidays always match; branch holidays
	// match only when branchID equals their branch_id. Returns
	// ErrHolidayNotFound when the date is a regular day.
	FindActiveByDate(ctx context.Context, date time.Time, branchID *string) (Holiday, error)

	// List retrieves holidays within a date range.
	List(ctx context.Context, from, to time.Time) ([]Holiday, error)

	// Update updates an existing holiday.
	Update(ctx context.Context, holiday Holiday) error

	// Delete removes a holiday.
	Delete(ctx context.Context, id string) error
}
