package user

import "context"

// Repository defines data access for user accounts.
type Repository interface {
	// GetByEmail retrieves a user with the linked employee record joined in.
	GetByEmail(ctx context.Context, email string) (User, error)

	// GetByID retrieves a user by ID.
	GetByID(ctx context.Context, id string) (User, error)
}
