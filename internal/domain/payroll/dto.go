package payroll

import (
	"strings"

	"github.com/RobertoAguirre/amn-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ConditionRequest struct {
	Kind            string  `json:"kind"`
	MinMinutes      *int    `json:"min_minutes,omitempty"`
	ConsecutiveDays *int    `json:"consecutive_days,omitempty"`
	MinHours        *float64 `json:"min_hours,omitempty"`
}

type ValueRequest struct {
	Kind   string `json:"kind"`
	Amount string `json:"amount"`
}

type CreateRuleRequest struct {
	Name        string           `json:"name"`
	Type        string           `json:"type"`
	Scope       string           `json:"scope"`
	SiteID      *string          `json:"site_id,omitempty"`
	EmployeeID  *string          `json:"employee_id,omitempty"`
	Condition   ConditionRequest `json:"condition"`
	Value       ValueRequest     `json:"value"`
	Description *string          `json:"description,omitempty"`
	Active      *bool            `json:"active,omitempty"`
}

func (r *CreateRuleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !validator.IsInSlice(r.Type, RuleTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: " + strings.Join(RuleTypeValues, ", "),
		})
	}
	if !validator.IsInSlice(r.Scope, ScopeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "scope",
			Message: "scope must be one of: " + strings.Join(ScopeValues, ", "),
		})
	}
	if r.Scope == string(ScopeSite) && (r.SiteID == nil || validator.IsEmpty(*r.SiteID)) {
		errs = append(errs, validator.ValidationError{
			Field:   "site_id",
			Message: "site_id is required for site-scoped rules",
		})
	}
	if r.Scope == string(ScopeEmployee) && (r.EmployeeID == nil || validator.IsEmpty(*r.EmployeeID)) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required for employee-scoped rules",
		})
	}
	if !validator.IsInSlice(r.Condition.Kind, ConditionKindValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "condition.kind",
			Message: "condition.kind must be one of: " + strings.Join(ConditionKindValues, ", "),
		})
	}
	if !validator.IsInSlice(r.Value.Kind, ValueKindValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "value.kind",
			Message: "value.kind must be one of: " + strings.Join(ValueKindValues, ", "),
		})
	}
	if amount, err := decimal.NewFromString(r.Value.Amount); err != nil || amount.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "value.amount",
			Message: "value.amount must be a non-negative decimal number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateRuleRequest struct {
	Name        *string           `json:"name,omitempty"`
	Condition   *ConditionRequest `json:"condition,omitempty"`
	Value       *ValueRequest     `json:"value,omitempty"`
	Description *string           `json:"description,omitempty"`
	Active      *bool             `json:"active,omitempty"`
}

func (r *UpdateRuleRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Condition != nil && !validator.IsInSlice(r.Condition.Kind, ConditionKindValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "condition.kind",
			Message: "condition.kind must be one of: " + strings.Join(ConditionKindValues, ", "),
		})
	}
	if r.Value != nil {
		if !validator.IsInSlice(r.Value.Kind, ValueKindValues) {
			errs = append(errs, validator.ValidationError{
				Field:   "value.kind",
				Message: "value.kind must be one of: " + strings.Join(ValueKindValues, ", "),
			})
		}
		if amount, err := decimal.NewFromString(r.Value.Amount); err != nil || amount.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "value.amount",
				Message: "value.amount must be a non-negative decimal number",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ConditionResponse struct {
	Kind            string  `json:"kind"`
	MinMinutes      int     `json:"min_minutes"`
	ConsecutiveDays int     `json:"consecutive_days"`
	MinHours        float64 `json:"min_hours"`
}

type ValueResponse struct {
	Kind   string `json:"kind"`
	Amount string `json:"amount"`
}

type RuleResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Type        string            `json:"type"`
	Scope       string            `json:"scope"`
	SiteID      *string           `json:"site_id"`
	EmployeeID  *string           `json:"employee_id"`
	Condition   ConditionResponse `json:"condition"`
	Value       ValueResponse     `json:"value"`
	Description *string           `json:"description"`
	Active      bool              `json:"active"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
}
