package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/task"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/handler/http/response"
)

type TaskHandler interface {
	Assign(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type taskHandlerImpl struct {
	taskService task.TaskService
}

func NewTaskHandler(taskService task.TaskService) TaskHandler {
	return &taskHandlerImpl{
		taskService: taskService,
	}
}

// Assign implements TaskHandler.
func (h *taskHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	var req task.AssignTasksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}

	results, err := h.taskService.Assign(r.Context(), req)
	if err != nil {
		response.HandleError(w, err, "Error assigning tasks")
		return
	}

	response.Created(w, "Tasks assigned successfully", results)
}

// List implements TaskHandler.
func (h *taskHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := task.ListTasksFilter{
		EmployeeID: chi.URLParam(r, "employeeId"),
		Status:     r.URL.Query().Get("status"),
	}

	results, err := h.taskService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err, "Error fetching tasks")
		return
	}

	response.SuccessWithCount(w, "Tasks fetched successfully", len(results), results)
}

// UpdateStatus implements TaskHandler.
func (h *taskHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req task.UpdateTaskStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}
	req.ID = id

	result, err := h.taskService.UpdateStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err, "Error updating task status")
		return
	}

	response.Success(w, "Task status updated successfully", result)
}
