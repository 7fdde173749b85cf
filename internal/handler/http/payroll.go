package http

import (
	"encoding/json"
	"net/http"

	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/payroll"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	RunPayroll(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// RunPayroll implements PayrollHandler.
func (h *payrollHandlerImpl) RunPayroll(w http.ResponseWriter, r *http.Request) {
	var req payroll.RunPayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}

	result, err := h.payrollService.RunPayroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err, "Error updating employee salary")
		return
	}

	response.Success(w, "Employee salary updated successfully", result)
}
