package payroll

import (
	"context"
	"testing"

	"github.com/RobertoAguirre/amn-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRuleRepository struct {
	rules   []payroll.Rule
	created []payroll.Rule
}

func (f *fakeRuleRepository) Create(_ context.Context, rule payroll.Rule) (payroll.Rule, error) {
	f.created = append(f.created, rule)
	f.rules = append(f.rules, rule)
	return rule, nil
}

func (f *fakeRuleRepository) GetByID(_ context.Context, id string) (payroll.Rule, error) {
	for _, r := range f.rules {
		if r.ID == id {
			return r, nil
		}
	}
	return payroll.Rule{}, payroll.ErrRuleNotFound
}

func (f *fakeRuleRepository) List(_ context.Context) ([]payroll.Rule, error) {
	return f.rules, nil
}

func (f *fakeRuleRepository) ListActive(_ context.Context) ([]payroll.Rule, error) {
	var active []payroll.Rule
	for _, r := range f.rules {
		if r.Active {
			active = append(active, r)
		}
	}
	return active, nil
}

func (f *fakeRuleRepository) Update(_ context.Context, rule payroll.Rule) error {
	for i, r := range f.rules {
		if r.ID == rule.ID {
			f.rules[i] = rule
			return nil
		}
	}
	return payroll.ErrRuleNotFound
}

func (f *fakeRuleRepository) Delete(_ context.Context, id string) error {
	for i, r := range f.rules {
		if r.ID == id {
			f.rules = append(f.rules[:i], f.rules[i+1:]...)
			return nil
		}
	}
	return payroll.ErrRuleNotFound
}

func rule(id string, scope payroll.Scope, siteID, employeeID *string, active bool) payroll.Rule {
	return payroll.Rule{
		ID:         id,
		Name:       id,
		Type:       payroll.RuleTypeDeduction,
		Scope:      scope,
		SiteID:     siteID,
		EmployeeID: employeeID,
		Value:      payroll.Value{Kind: payroll.ValueKindFixed, Amount: decimal.NewFromInt(100)},
		Active:     active,
	}
}

func ptr(s string) *string { return &s }

func TestCreateRule(t *testing.T) {
	repo := &fakeRuleRepository{}
	svc := NewRuleService(repo)

	resp, err := svc.CreateRule(context.Background(), payroll.CreateRuleRequest{
		Name:      "Descuento por retardo",
		Type:      "deduction",
		Scope:     "all",
		Condition: payroll.ConditionRequest{Kind: "lateness"},
		Value:     payroll.ValueRequest{Kind: "per_minute", Amount: "2.50"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "2.5", resp.Value.Amount)
	assert.True(t, resp.Active)
	require.Len(t, repo.created, 1)
	assert.True(t, repo.created[0].Value.Amount.Equal(decimal.RequireFromString("2.50")))
}

func TestCreateRule_InvalidAmount(t *testing.T) {
	svc := NewRuleService(&fakeRuleRepository{})

	_, err := svc.CreateRule(context.Background(), payroll.CreateRuleRequest{
		Name:      "Bono",
		Type:      "bonus",
		Scope:     "all",
		Condition: payroll.ConditionRequest{Kind: "punctuality"},
		Value:     payroll.ValueRequest{Kind: "fixed", Amount: "-10"},
	})
	require.Error(t, err)
}

func TestApplicableRules_Scoping(t *testing.T) {
	repo := &fakeRuleRepository{rules: []payroll.Rule{
		rule("r-all", payroll.ScopeAll, nil, nil, true),
		rule("r-site-a", payroll.ScopeSite, ptr("site-a"), nil, true),
		rule("r-site-b", payroll.ScopeSite, ptr("site-b"), nil, true),
		rule("r-emp-1", payroll.ScopeEmployee, nil, ptr("emp-1"), true),
		rule("r-emp-2", payroll.ScopeEmployee, nil, ptr("emp-2"), true),
		rule("r-inactive", payroll.ScopeAll, nil, nil, false),
	}}
	svc := NewRuleService(repo)

	got, err := svc.ApplicableRules(context.Background(), "emp-1", "site-a")
	require.NoError(t, err)

	ids := make([]string, len(got))
	for i, r := range got {
		ids[i] = r.ID
	}
	assert.ElementsMatch(t, []string{"r-all", "r-site-a", "r-emp-1"}, ids)
}

func TestApplicableRules_NoMatches(t *testing.T) {
	repo := &fakeRuleRepository{rules: []payroll.Rule{
		rule("r-site-b", payroll.ScopeSite, ptr("site-b"), nil, true),
	}}
	svc := NewRuleService(repo)

	got, err := svc.ApplicableRules(context.Background(), "emp-9", "site-a")
	require.NoError(t, err)
	assert.Empty(t, got)
}
