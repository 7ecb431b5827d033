// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"github.com/finance-ledger/backend/internal/domain/entity"
)

// ReportRenderer renders an assembled report dataset into a downloadable
// byte stream. Both export formats consume the same dataset shape so the
// assembly stays the single source of truth.
type ReportRenderer interface {
	// Render produces the full document; on error no partial output is returned.
	Render(data *entity.ReportData) ([]byte, error)

	// ContentType returns the MIME type for the download response.
	ContentType() string

	// FileName returns the suggested attachment file name.
	FileName() string
}
