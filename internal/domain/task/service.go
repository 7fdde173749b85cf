package task

import "context"

// TaskService defines task assignment and status tracking.
type TaskService interface {
	// Assign creates one task per input item for the employee. Items are
	// created independently; a failing item does not roll back the ones
	// already created.
	Assign(ctx context.Context, req AssignTasksRequest) ([]TaskResponse, error)

	// List retrieves an employee's tasks with an optional status filter
	List(ctx context.Context, filter ListTasksFilter) ([]TaskResponse, error)

	// UpdateStatus moves a task between pending/in-progress/completed
	UpdateStatus(ctx context.Context, req UpdateTaskStatusRequest) (TaskResponse, error)
}
