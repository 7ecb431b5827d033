// Package error defines domain-specific errors for the Finance Ledger application.
package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidReportType is returned when the report type is not recognized.
	ErrInvalidReportType = errors.New("invalid report type")

	// ErrInvalidReportRange is returned when the report date range is malformed.
	ErrInvalidReportRange = errors.New("invalid report date range")

	// ErrUnsupportedExportFormat is returned when no renderer exists for the requested format.
	ErrUnsupportedExportFormat = errors.New("unsupported export format")

	// ErrRenderFailed is returned when export construction fails; no partial output is produced.
	ErrRenderFailed = errors.New("report rendering failed")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidReportType   ReportErrorCode = "RPT-010001"
	ErrCodeInvalidReportRange  ReportErrorCode = "RPT-010002"
	ErrCodeMissingReportFields ReportErrorCode = "RPT-010003"

	// Rendering errors (02XXXX)
	ErrCodeUnsupportedExportFormat ReportErrorCode = "RPT-020001"
	ErrCodeRenderFailed            ReportErrorCode = "RPT-020002"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
