package overtime

import "context"

// OvertimeService defines submission, listing and the approval lifecycle for
// overtime requests.
type OvertimeService interface {
	// Submit files a new overtime request for an existing employee
	Submit(ctx context.Context, req SubmitOvertimeRequest) (OvertimeRequestResponse, error)

	// List retrieves overtime requests with optional status/employee filters
	List(ctx context.Context, filter ListOvertimeFilter) ([]OvertimeRequestResponse, error)

	// UpdateStatus moves a request between pending/approved/rejected and
	// adjusts the employee's overtime-approved accumulator on transitions
	// into or out of approved.
	UpdateStatus(ctx context.Context, req UpdateOvertimeStatusRequest) (OvertimeRequestResponse, error)
}
