package overtime

import "context"

// Service defines business logic for overtime requests.
type Service interface {
	// Create prices and persists a new overtime request. The initial status
	// comes from the auto-approval gate.
	Create(ctx context.Context, req CreateRequest) (Response, error)

	// Preview computes the monetary preview without persisting.
	Preview(ctx context.Context, req PreviewRequest) (PreviewResponse, error)

	// Get retrieves a single overtime request.
	Get(ctx context.Context, id string, requesterEmployeeID string, isManager bool) (Response, error)

	// List retrieves overtime requests (manager/admin).
	List(ctx context.Context, filter ListFilter) (ListResponse, error)

	// ListMine retrieves the authenticated employee's requests.
	ListMine(ctx context.Context, employeeID string, filter ListFilter) (ListResponse, error)

	// Approve approves a pending request.
	Approve(ctx context.Context, req ApproveRequest) (Response, error)

	// Reject rejects a pending request with a reason.
	Reject(ctx context.Context, req RejectRequest) (Response, error)
}
