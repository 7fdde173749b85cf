package task

import "context"

// TaskRepository defines data access methods for tasks.
type TaskRepository interface {
	// Create inserts a single task document
	Create(ctx context.Context, newTask Task) (Task, error)

	// ListByEmployee retrieves an employee's tasks, newest first, with an
	// optional status filter
	ListByEmployee(ctx context.Context, filter ListTasksFilter) ([]Task, error)

	// UpdateStatus overwrites the status and returns the updated task
	UpdateStatus(ctx context.Context, id string, status Status) (Task, error)
}
