package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/overtime"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/handler/http/response"
)

type OvertimeHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type overtimeHandlerImpl struct {
	overtimeService overtime.OvertimeService
}

func NewOvertimeHandler(overtimeService overtime.OvertimeService) OvertimeHandler {
	return &overtimeHandlerImpl{
		overtimeService: overtimeService,
	}
}

// Submit implements OvertimeHandler.
func (h *overtimeHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req overtime.SubmitOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}

	result, err := h.overtimeService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err, "Error submitting overtime request")
		return
	}

	response.Created(w, "Overtime request submitted successfully", result)
}

// List implements OvertimeHandler.
func (h *overtimeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := overtime.ListOvertimeFilter{
		Status:     r.URL.Query().Get("status"),
		EmployeeID: r.URL.Query().Get("employeeId"),
	}

	results, err := h.overtimeService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err, "Error fetching overtime requests")
		return
	}

	response.SuccessWithCount(w, "Overtime requests fetched successfully", len(results), results)
}

// UpdateStatus implements OvertimeHandler.
func (h *overtimeHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req overtime.UpdateOvertimeStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}
	req.ID = id

	result, err := h.overtimeService.UpdateStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err, "Error updating overtime request status")
		return
	}

	response.Success(w, "Overtime request status updated successfully", result)
}
