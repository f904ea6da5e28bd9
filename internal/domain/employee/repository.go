package employee

import "context"

// Repository defines data access for employees.
type Repository interface {
	// GetByID retrieves an employee by ID.
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByEmail retrieves an employee by email. Used for the system-actor
	// lookup during auto-approval attribution.
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// GetByUserID retrieves the employee linked to a user account.
	GetByUserID(ctx context.Context, userID string) (Employee, error)

	// GetManagers retrieves all active employees with the manager or admin role.
	GetManagers(ctx context.Context) ([]Employee, error)

	// GetActive retrieves all active employees.
	GetActive(ctx context.Context) ([]Employee, error)
}
