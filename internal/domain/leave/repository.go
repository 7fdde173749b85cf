package leave

import "context"

// LeaveRequestRepository defines data access methods for leave requests.
type LeaveRequestRepository interface {
	// Create inserts a new leave request with status pending
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)

	// GetByID retrieves a leave request by ID
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// List retrieves leave requests, newest first, with optional filters
	List(ctx context.Context, filter ListLeaveFilter) ([]LeaveRequest, error)

	// UpdateStatus overwrites the status and returns the updated request
	UpdateStatus(ctx context.Context, id string, status Status) (LeaveRequest, error)
}
