package task

import (
	"context"
	"time"

	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/employee"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/task"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/pkg/validator"
)

type TaskServiceImpl struct {
	taskRepo     task.TaskRepository
	employeeRepo employee.EmployeeRepository
}

func NewTaskService(taskRepo task.TaskRepository, employeeRepo employee.EmployeeRepository) task.TaskService {
	return &TaskServiceImpl{
		taskRepo:     taskRepo,
		employeeRepo: employeeRepo,
	}
}

// Assign implements task.TaskService. Items are created one by one; when an
// item fails, the ones already written stay in place.
func (s *TaskServiceImpl) Assign(ctx context.Context, req task.AssignTasksRequest) ([]task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	created := make([]task.TaskResponse, 0, len(req.Tasks))
	for _, item := range req.Tasks {
		deadline, _ := task.ParseDeadline(item.Deadline)
		if !deadline.After(time.Now()) {
			return created, task.ErrDeadlinePassed
		}

		priority := task.PriorityMedium
		if item.Priority != "" {
			priority = task.Priority(item.Priority)
		}

		t, err := s.taskRepo.Create(ctx, task.Task{
			EmployeeID:   emp.ID,
			EmployeeName: emp.FullName(),
			Description:  item.Description,
			Deadline:     deadline,
			Priority:     priority,
		})
		if err != nil {
			return created, err
		}
		created = append(created, task.ToResponse(t))
	}

	return created, nil
}

// List implements task.TaskService. The employee is not looked up here; an
// unknown employeeId just yields an empty list.
func (s *TaskServiceImpl) List(ctx context.Context, filter task.ListTasksFilter) ([]task.TaskResponse, error) {
	tasks, err := s.taskRepo.ListByEmployee(ctx, filter)
	if err != nil {
		return nil, err
	}
	return task.ToResponseList(tasks), nil
}

// UpdateStatus implements task.TaskService.
func (s *TaskServiceImpl) UpdateStatus(ctx context.Context, req task.UpdateTaskStatusRequest) (task.TaskResponse, error) {
	if !validator.IsInSlice(req.Status, task.Statuses()) {
		return task.TaskResponse{}, task.ErrInvalidStatus
	}

	updated, err := s.taskRepo.UpdateStatus(ctx, req.ID, task.Status(req.Status))
	if err != nil {
		return task.TaskResponse{}, err
	}

	return task.ToResponse(updated), nil
}
