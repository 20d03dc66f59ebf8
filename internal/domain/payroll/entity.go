package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type RuleType string

const (
	RuleTypeDeduction RuleType = "deduction"
	RuleTypeBonus     RuleType = "bonus"
)

var RuleTypeValues = []string{
	string(RuleTypeDeduction),
	string(RuleTypeBonus),
}

type Scope string

const (
	ScopeAll      Scope = "all"
	ScopeSite     Scope = "site"
	ScopeEmployee Scope = "employee"
)

var ScopeValues = []string{
	string(ScopeAll),
	string(ScopeSite),
	string(ScopeEmployee),
}

type ConditionKind string

const (
	ConditionLateness       ConditionKind = "lateness"
	ConditionAbsence        ConditionKind = "absence"
	ConditionEarlyDeparture ConditionKind = "early_departure"
	ConditionOvertime       ConditionKind = "overtime"
	ConditionPunctuality    ConditionKind = "punctuality"
)

var ConditionKindValues = []string{
	string(ConditionLateness),
	string(ConditionAbsence),
	string(ConditionEarlyDeparture),
	string(ConditionOvertime),
	string(ConditionPunctuality),
}

type ValueKind string

const (
	ValueKindPercentage ValueKind = "percentage"
	ValueKindFixed      ValueKind = "fixed"
	ValueKindPerMinute  ValueKind = "per_minute"
	ValueKindPerHour    ValueKind = "per_hour"
)

var ValueKindValues = []string{
	string(ValueKindPercentage),
	string(ValueKindFixed),
	string(ValueKindPerMinute),
	string(ValueKindPerHour),
}

// Condition is the trigger a rule fires on. The report evaluator computes
// the underlying counters (lateness/absence/overtime); a downstream payroll
// calculator applies the monetary value.
type Condition struct {
	Kind            ConditionKind
	MinMinutes      int
	ConsecutiveDays int
	MinHours        float64
}

// Value is the monetary effect of a rule. Amounts are decimals, never floats.
type Value struct {
	Kind   ValueKind
	Amount decimal.Decimal
}

// Rule is a named payroll adjustment definition.
type Rule struct {
	ID          string
	Name        string
	Type        RuleType
	Scope       Scope
	SiteID      *string
	EmployeeID  *string
	Condition   Condition
	Value       Value
	Description *string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AppliesTo reports whether the rule's scope covers the employee/site pair.
func (r *Rule) AppliesTo(employeeID, siteID string) bool {
	switch r.Scope {
	case ScopeAll:
		return true
	case ScopeSite:
		return r.SiteID != nil && *r.SiteID == siteID
	case ScopeEmployee:
		return r.EmployeeID != nil && *r.EmployeeID == employeeID
	default:
		return false
	}
}
