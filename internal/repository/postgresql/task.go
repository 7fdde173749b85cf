package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/task"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/pkg/database"
)

const taskColumns = `id, employee_id, employee_name, description, deadline, priority, status,
		created_at, updated_at`

type taskRepositoryImpl struct {
	db database.Querier
}

func NewTaskRepository(db database.Querier) task.TaskRepository {
	return &taskRepositoryImpl{db: db}
}

func scanTask(row pgx.Row) (task.Task, error) {
	var t task.Task
	err := row.Scan(
		&t.ID, &t.EmployeeID, &t.EmployeeName, &t.Description, &t.Deadline, &t.Priority, &t.Status,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, err
	}
	return t, nil
}

// Create implements task.TaskRepository.
func (r *taskRepositoryImpl) Create(ctx context.Context, newTask task.Task) (task.Task, error) {
	query := `
		INSERT INTO tasks (
			id, employee_id, employee_name, description, deadline, priority
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + taskColumns

	return scanTask(r.db.QueryRow(ctx, query,
		uuid.NewString(), newTask.EmployeeID, newTask.EmployeeName,
		newTask.Description, newTask.Deadline, newTask.Priority,
	))
}

// ListByEmployee implements task.TaskRepository.
func (r *taskRepositoryImpl) ListByEmployee(ctx context.Context, filter task.ListTasksFilter) ([]task.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE employee_id = $1`
	args := []interface{}{filter.EmployeeID}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// UpdateStatus implements task.TaskRepository.
func (r *taskRepositoryImpl) UpdateStatus(ctx context.Context, id string, status task.Status) (task.Task, error) {
	query := `
		UPDATE tasks
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + taskColumns
	return scanTask(r.db.QueryRow(ctx, query, status, id))
}
