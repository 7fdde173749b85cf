package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/employee"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetReport(w http.ResponseWriter, r *http.Request)
	UpdatePerformanceScore(w http.ResponseWriter, r *http.Request)
	UpdateShift(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// Create implements EmployeeHandler.
func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}

	result, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err, "Error adding employee")
		return
	}

	response.Created(w, "Employee added successfully", result)
}

// List implements EmployeeHandler.
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.employeeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err, "Error fetching employees")
		return
	}

	response.SuccessWithCount(w, "Employees fetched successfully", len(results), results)
}

// Get implements EmployeeHandler.
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.employeeService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err, "Error fetching employee")
		return
	}

	response.Success(w, "Employee fetched successfully", result)
}

// GetReport implements EmployeeHandler.
func (h *employeeHandlerImpl) GetReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	report, err := h.employeeService.GetReport(r.Context(), id)
	if err != nil {
		response.HandleError(w, err, "Error fetching employee report")
		return
	}

	response.Success(w, "Employee report fetched successfully", map[string]string{"report": report})
}

// UpdatePerformanceScore implements EmployeeHandler.
func (h *employeeHandlerImpl) UpdatePerformanceScore(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdatePerformanceScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}

	result, err := h.employeeService.UpdatePerformanceScore(r.Context(), req)
	if err != nil {
		response.HandleError(w, err, "Error updating performance score")
		return
	}

	response.Success(w, "Performance score updated successfully", result)
}

// UpdateShift implements EmployeeHandler.
func (h *employeeHandlerImpl) UpdateShift(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}

	result, err := h.employeeService.UpdateShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err, "Error updating shift")
		return
	}

	response.Success(w, "Shift updated successfully", result)
}
