package leave

import "context"

// LeaveService defines submission, listing and the approval lifecycle for
// leave requests.
type LeaveService interface {
	// Submit files a new leave request for an existing employee
	Submit(ctx context.Context, req SubmitLeaveRequest) (LeaveRequestResponse, error)

	// List retrieves leave requests with optional status/employee filters
	List(ctx context.Context, filter ListLeaveFilter) ([]LeaveRequestResponse, error)

	// UpdateStatus moves a request between pending/approved/rejected and
	// adjusts the employee's total-leave-taken accumulator on transitions
	// into or out of approved.
	UpdateStatus(ctx context.Context, req UpdateLeaveStatusRequest) (LeaveRequestResponse, error)
}
