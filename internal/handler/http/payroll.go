package http

import (
	"encoding/json"
	"net/http"

	"github.com/samat2k5/hrms-singapore-sub000/internal/domain/payroll"
	"github.com/samat2k5/hrms-singapore-sub000/internal/handler/http/response"
)

type PayrollHandler interface {
	// Runs
	RunPayroll(w http.ResponseWriter, r *http.Request)
	PreviewPayslip(w http.ResponseWriter, r *http.Request)

	// Contribution calculators
	ComputeCPF(w http.ResponseWriter, r *http.Request)
	ComputeSDL(w http.ResponseWriter, r *http.Request)
	ComputeSHG(w http.ResponseWriter, r *http.Request)

	// Tax
	EstimateTax(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// ========== RUNS ==========

func (h *payrollHandlerImpl) RunPayroll(w http.ResponseWriter, r *http.Request) {
	var req payroll.RunPayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.RunPayroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll run completed", result)
}

func (h *payrollHandlerImpl) PreviewPayslip(w http.ResponseWriter, r *http.Request) {
	var req payroll.PreviewPayslipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.PreviewPayslip(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== CONTRIBUTION CALCULATORS ==========

func (h *payrollHandlerImpl) ComputeCPF(w http.ResponseWriter, r *http.Request) {
	var req payroll.CPFRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.ComputeCPF(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ComputeSDL(w http.ResponseWriter, r *http.Request) {
	var req payroll.SDLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.ComputeSDL(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ComputeSHG(w http.ResponseWriter, r *http.Request) {
	var req payroll.SHGRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.ComputeSHG(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== TAX ==========

func (h *payrollHandlerImpl) EstimateTax(w http.ResponseWriter, r *http.Request) {
	var req payroll.TaxRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.EstimateTax(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
