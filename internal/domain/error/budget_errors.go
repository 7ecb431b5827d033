// Package error defines domain-specific errors for the Finance Ledger application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found or not owned by the user.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrInvalidPlannedAmount is returned when the planned amount is not positive.
	ErrInvalidPlannedAmount = errors.New("planned amount must be greater than zero")

	// ErrInvalidBudgetPeriod is returned when the period is not weekly, monthly or yearly.
	ErrInvalidBudgetPeriod = errors.New("invalid budget period")

	// ErrMissingBudgetCategory is returned when the budget category is empty.
	ErrMissingBudgetCategory = errors.New("budget category is required")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BDG-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPlannedAmount  BudgetErrorCode = "BDG-010001"
	ErrCodeInvalidBudgetPeriod   BudgetErrorCode = "BDG-010002"
	ErrCodeMissingBudgetCategory BudgetErrorCode = "BDG-010003"
	ErrCodeMissingBudgetFields   BudgetErrorCode = "BDG-010004"

	// Lookup errors (02XXXX)
	ErrCodeBudgetNotFound BudgetErrorCode = "BDG-020001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
