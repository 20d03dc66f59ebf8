package payroll

import "context"

// RuleService defines business logic for payroll rules.
type RuleService interface {
	// CreateRule creates a rule
	CreateRule(ctx context.Context, req CreateRuleRequest) (RuleResponse, error)

	// ListRules lists all rules
	ListRules(ctx context.Context) ([]RuleResponse, error)

	// UpdateRule updates a rule
	UpdateRule(ctx context.Context, id string, req UpdateRuleRequest) (RuleResponse, error)

	// DeleteRule removes a rule
	DeleteRule(ctx context.Context, id string) error

	// ApplicableRules resolves the active rules covering an employee/site
	ApplicableRules(ctx context.Context, employeeID, siteID string) ([]RuleResponse, error)
}
