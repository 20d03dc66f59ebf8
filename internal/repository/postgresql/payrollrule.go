package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/RobertoAguirre/amn-backend-go/internal/domain/payroll"
	"github.com/RobertoAguirre/amn-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type payrollRuleRepository struct {
	db *database.DB
}

// NewPayrollRuleRepository creates a new payroll rule repository
func NewPayrollRuleRepository(db *database.DB) payroll.RuleRepository {
	return &payrollRuleRepository{db: db}
}

const ruleColumns = `id, name, type, scope, site_id, employee_id, condition, value_kind, value_amount::text, description, active, created_at, updated_at`

func (r *payrollRuleRepository) Create(ctx context.Context, rule payroll.Rule) (payroll.Rule, error) {
	q := GetQuerier(ctx, r.db)

	conditionJSON, err := json.Marshal(rule.Condition)
	if err != nil {
		return payroll.Rule{}, fmt.Errorf("failed to marshal condition: %w", err)
	}

	query := `
		INSERT INTO payroll_rules (id, name, type, scope, site_id, employee_id, condition, value_kind, value_amount, description, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err = q.Exec(ctx, query,
		rule.ID,
		rule.Name,
		string(rule.Type),
		string(rule.Scope),
		rule.SiteID,
		rule.EmployeeID,
		conditionJSON,
		string(rule.Value.Kind),
		rule.Value.Amount.String(),
		rule.Description,
		rule.Active,
		rule.CreatedAt,
		rule.UpdatedAt,
	)
	if err != nil {
		return payroll.Rule{}, fmt.Errorf("failed to create rule: %w", err)
	}

	return rule, nil
}

func (r *payrollRuleRepository) GetByID(ctx context.Context, id string) (payroll.Rule, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + ruleColumns + ` FROM payroll_rules WHERE id = $1`

	rule, err := scanRule(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return payroll.Rule{}, payroll.ErrRuleNotFound
	}
	if err != nil {
		return payroll.Rule{}, fmt.Errorf("failed to get rule: %w", err)
	}

	return rule, nil
}

func (r *payrollRuleRepository) List(ctx context.Context) ([]payroll.Rule, error) {
	query := `SELECT ` + ruleColumns + ` FROM payroll_rules ORDER BY active DESC, created_at DESC`
	return r.queryMany(ctx, query)
}

func (r *payrollRuleRepository) ListActive(ctx context.Context) ([]payroll.Rule, error) {
	query := `SELECT ` + ruleColumns + ` FROM payroll_rules WHERE active ORDER BY created_at DESC`
	return r.queryMany(ctx, query)
}

func (r *payrollRuleRepository) Update(ctx context.Context, rule payroll.Rule) error {
	q := GetQuerier(ctx, r.db)

	conditionJSON, err := json.Marshal(rule.Condition)
	if err != nil {
		return fmt.Errorf("failed to marshal condition: %w", err)
	}

	query := `
		UPDATE payroll_rules
		SET name = $2, condition = $3, value_kind = $4, value_amount = $5,
		    description = $6, active = $7, updated_at = $8
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		rule.ID,
		rule.Name,
		conditionJSON,
		string(rule.Value.Kind),
		rule.Value.Amount.String(),
		rule.Description,
		rule.Active,
		rule.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update rule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrRuleNotFound
	}

	return nil
}

func (r *payrollRuleRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payroll_rules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete rule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrRuleNotFound
	}

	return nil
}

func (r *payrollRuleRepository) queryMany(ctx context.Context, query string) ([]payroll.Rule, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query rules: %w", err)
	}
	defer rows.Close()

	var rules []payroll.Rule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rule: %w", err)
		}
		rules = append(rules, rule)
	}

	return rules, rows.Err()
}

func scanRule(row pgx.Row) (payroll.Rule, error) {
	var rule payroll.Rule
	var ruleType, scope, valueKind, amount string
	var conditionJSON []byte

	err := row.Scan(
		&rule.ID,
		&rule.Name,
		&ruleType,
		&scope,
		&rule.SiteID,
		&rule.EmployeeID,
		&conditionJSON,
		&valueKind,
		&amount,
		&rule.Description,
		&rule.Active,
		&rule.CreatedAt,
		&rule.UpdatedAt,
	)
	if err != nil {
		return payroll.Rule{}, err
	}

	rule.Type = payroll.RuleType(ruleType)
	rule.Scope = payroll.Scope(scope)
	rule.Value.Kind = payroll.ValueKind(valueKind)

	rule.Value.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return payroll.Rule{}, fmt.Errorf("failed to parse stored amount: %w", err)
	}
	if err := json.Unmarshal(conditionJSON, &rule.Condition); err != nil {
		return payroll.Rule{}, fmt.Errorf("failed to unmarshal condition: %w", err)
	}

	return rule, nil
}
