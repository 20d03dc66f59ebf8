package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/RobertoAguirre/amn-backend-go/internal/domain/payroll"
	"github.com/RobertoAguirre/amn-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Applicable(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	ruleService payroll.RuleService
}

func NewPayrollHandler(ruleService payroll.RuleService) PayrollHandler {
	return &PayrollHandlerImpl{ruleService: ruleService}
}

// Create implements PayrollHandler.
func (h *PayrollHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create rule decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rule, err := h.ruleService.CreateRule(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create payroll rule", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Rule created successfully", rule)
}

// List implements PayrollHandler.
func (h *PayrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	rules, err := h.ruleService.ListRules(r.Context())
	if err != nil {
		slog.Error("Failed to list payroll rules", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rules)
}

// Applicable implements PayrollHandler. It resolves the active rules covering
// an employee at a site.
func (h *PayrollHandlerImpl) Applicable(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	siteID := r.URL.Query().Get("site_id")
	if employeeID == "" {
		response.BadRequest(w, "Query parameter 'employee_id' is required", nil)
		return
	}

	rules, err := h.ruleService.ApplicableRules(r.Context(), employeeID, siteID)
	if err != nil {
		slog.Error("Failed to resolve applicable rules", "error", err, "employee_id", employeeID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rules)
}

// Update implements PayrollHandler.
func (h *PayrollHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req payroll.UpdateRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update rule decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rule, err := h.ruleService.UpdateRule(r.Context(), id, req)
	if err != nil {
		slog.Error("Failed to update payroll rule", "error", err, "rule_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Rule updated successfully", rule)
}

// Delete implements PayrollHandler.
func (h *PayrollHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.ruleService.DeleteRule(r.Context(), id); err != nil {
		slog.Error("Failed to delete payroll rule", "error", err, "rule_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Rule deleted successfully", nil)
}
