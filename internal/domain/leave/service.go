package leave

import "context"

// Service defines business logic for leave requests.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (Response, error)
	Get(ctx context.Context, id string, requesterEmployeeID string, isManager bool) (Response, error)
	List(ctx context.Context, filter ListFilter) (ListResponse, error)
	ListMine(ctx context.Context, employeeID string, filter ListFilter) (ListResponse, error)
	Approve(ctx context.Context, req ApproveRequest) (Response, error)
	Reject(ctx context.Context, req RejectRequest) (Response, error)
}
