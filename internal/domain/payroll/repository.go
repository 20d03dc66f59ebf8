package payroll

import "context"

// RuleRepository defines data access methods for payroll rules.
type RuleRepository interface {
	// Create persists a new rule
	Create(ctx context.Context, rule Rule) (Rule, error)

	// GetByID retrieves a rule by ID
	GetByID(ctx context.Context, id string) (Rule, error)

	// List retrieves all rules, active first, newest first
	List(ctx context.Context) ([]Rule, error)

	// ListActive retrieves active rules only
	ListActive(ctx context.Context) ([]Rule, error)

	// Update replaces a rule's mutable fields
	Update(ctx context.Context, rule Rule) error

	// Delete removes a rule
	Delete(ctx context.Context, id string) error
}
