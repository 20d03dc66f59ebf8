package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/RobertoAguirre/amn-backend-go/internal/domain/payroll"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type service struct {
	repo payroll.RuleRepository
}

// NewRuleService creates a new payroll rule service
func NewRuleService(repo payroll.RuleRepository) payroll.RuleService {
	return &service{repo: repo}
}

func (s *service) CreateRule(ctx context.Context, req payroll.CreateRuleRequest) (payroll.RuleResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RuleResponse{}, err
	}

	amount, err := decimal.NewFromString(req.Value.Amount)
	if err != nil {
		return payroll.RuleResponse{}, fmt.Errorf("failed to parse amount: %w", err)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	now := time.Now()
	rule := payroll.Rule{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Type:        payroll.RuleType(req.Type),
		Scope:       payroll.Scope(req.Scope),
		SiteID:      req.SiteID,
		EmployeeID:  req.EmployeeID,
		Condition:   toCondition(req.Condition),
		Value: payroll.Value{
			Kind:   payroll.ValueKind(req.Value.Kind),
			Amount: amount,
		},
		Description: req.Description,
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, rule)
	if err != nil {
		return payroll.RuleResponse{}, fmt.Errorf("failed to create rule: %w", err)
	}

	return toResponse(created), nil
}

func (s *service) ListRules(ctx context.Context) ([]payroll.RuleResponse, error) {
	rules, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rules: %w", err)
	}

	responses := make([]payroll.RuleResponse, len(rules))
	for i, r := range rules {
		responses[i] = toResponse(r)
	}
	return responses, nil
}

func (s *service) UpdateRule(ctx context.Context, id string, req payroll.UpdateRuleRequest) (payroll.RuleResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RuleResponse{}, err
	}

	rule, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return payroll.RuleResponse{}, err
	}

	if req.Name != nil {
		rule.Name = *req.Name
	}
	if req.Condition != nil {
		rule.Condition = toCondition(*req.Condition)
	}
	if req.Value != nil {
		amount, err := decimal.NewFromString(req.Value.Amount)
		if err != nil {
			return payroll.RuleResponse{}, fmt.Errorf("failed to parse amount: %w", err)
		}
		rule.Value = payroll.Value{
			Kind:   payroll.ValueKind(req.Value.Kind),
			Amount: amount,
		}
	}
	if req.Description != nil {
		rule.Description = req.Description
	}
	if req.Active != nil {
		rule.Active = *req.Active
	}
	rule.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, rule); err != nil {
		return payroll.RuleResponse{}, fmt.Errorf("failed to update rule: %w", err)
	}

	return toResponse(rule), nil
}

func (s *service) DeleteRule(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) ApplicableRules(ctx context.Context, employeeID, siteID string) ([]payroll.RuleResponse, error) {
	rules, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active rules: %w", err)
	}

	responses := make([]payroll.RuleResponse, 0)
	for _, r := range rules {
		if r.AppliesTo(employeeID, siteID) {
			responses = append(responses, toResponse(r))
		}
	}
	return responses, nil
}

func toCondition(req payroll.ConditionRequest) payroll.Condition {
	c := payroll.Condition{Kind: payroll.ConditionKind(req.Kind)}
	if req.MinMinutes != nil {
		c.MinMinutes = *req.MinMinutes
	}
	if req.ConsecutiveDays != nil {
		c.ConsecutiveDays = *req.ConsecutiveDays
	}
	if req.MinHours != nil {
		c.MinHours = *req.MinHours
	}
	return c
}

func toResponse(r payroll.Rule) payroll.RuleResponse {
	return payroll.RuleResponse{
		ID:         r.ID,
		Name:       r.Name,
		Type:       string(r.Type),
		Scope:      string(r.Scope),
		SiteID:     r.SiteID,
		EmployeeID: r.EmployeeID,
		Condition: payroll.ConditionResponse{
			Kind:            string(r.Condition.Kind),
			MinMinutes:      r.Condition.MinMinutes,
			ConsecutiveDays: r.Condition.ConsecutiveDays,
			MinHours:        r.Condition.MinHours,
		},
		Value: payroll.ValueResponse{
			Kind:   string(r.Value.Kind),
			Amount: r.Value.Amount.String(),
		},
		Description: r.Description,
		Active:      r.Active,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   r.UpdatedAt.Format(time.RFC3339),
	}
}
