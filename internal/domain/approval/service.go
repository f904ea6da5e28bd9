package approval

import "context"

// Gate decides the initial status of a newly created request. Every request
// flow (overtime, leave, WFH, field work, late) goes through the same gate so
// auto-approval means exactly one thing across the application.
type Gate interface {
	// ShouldAutoApprove reports whether the given request type is configured
	// for auto-approval. Missing or unreadable configuration means false.
	ShouldAutoApprove(ctx context.Context, requestType RequestType) bool

	// Decide returns the approval fields for a new request of the given type:
	// approved-with-attribution when auto-approval is on, pending otherwise.
	Decide(ctx context.Context, requestType RequestType) Fields
}
