package overtime

import "context"

// OvertimeRequestRepository defines data access methods for overtime requests.
type OvertimeRequestRepository interface {
	// Create inserts a new overtime request with status pending
	Create(ctx context.Context, request OvertimeRequest) (OvertimeRequest, error)

	// GetByID retrieves an overtime request by ID
	GetByID(ctx context.Context, id string) (OvertimeRequest, error)

	// List retrieves overtime requests, newest first, with optional filters
	List(ctx context.Context, filter ListOvertimeFilter) ([]OvertimeRequest, error)

	// UpdateStatus overwrites the status and returns the updated request
	UpdateStatus(ctx context.Context, id string, status Status) (OvertimeRequest, error)
}
