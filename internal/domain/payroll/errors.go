package payroll

import "errors"

// Payroll domain errors
var (
	ErrRuleNotFound = errors.New("payroll rule not found")
)
