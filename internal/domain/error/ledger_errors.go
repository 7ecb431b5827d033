// Package error defines domain-specific errors for the Finance Ledger application.
package error

import "errors"

// Ledger domain errors.
var (
	// ErrEntryNotFound is returned when a ledger entry is not found or not owned by the user.
	ErrEntryNotFound = errors.New("ledger entry not found")

	// ErrInvalidEntryKind is returned when the entry kind is not income or expense.
	ErrInvalidEntryKind = errors.New("invalid entry kind")

	// ErrInvalidEntryAmount is returned when the entry amount is not positive.
	ErrInvalidEntryAmount = errors.New("invalid entry amount")

	// ErrInvalidEntryDate is returned when the entry date is missing or malformed.
	ErrInvalidEntryDate = errors.New("invalid entry date")

	// ErrMissingEntryLabel is returned when the source/description label is empty.
	ErrMissingEntryLabel = errors.New("entry label is required")

	// ErrLabelTooLong is returned when the entry label exceeds the maximum length.
	ErrLabelTooLong = errors.New("entry label too long")
)

// LedgerErrorCode defines error codes for ledger errors.
// Format: LDG-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidEntryKind   LedgerErrorCode = "LDG-010001"
	ErrCodeInvalidEntryAmount LedgerErrorCode = "LDG-010002"
	ErrCodeInvalidEntryDate   LedgerErrorCode = "LDG-010003"
	ErrCodeMissingEntryLabel  LedgerErrorCode = "LDG-010004"
	ErrCodeLabelTooLong       LedgerErrorCode = "LDG-010005"
	ErrCodeMissingEntryFields LedgerErrorCode = "LDG-010006"

	// Lookup errors (02XXXX)
	ErrCodeEntryNotFound LedgerErrorCode = "LDG-020001"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
