package branch

import "context"

// Repository defines data access for branches.
type Repository interface {
	// GetByID retrieves a branch by ID.
	GetByID(ctx context.Context, id string) (Branch, error)

	// GetByEmployeeID retrieves the branch an employee is assigned to.
	GetByEmployeeID(ctx context.Context, employeeID string) (Branch, error)

	// List retrieves all branches.
	List(ctx context.Context) ([]Branch, error)
}
