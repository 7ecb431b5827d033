package report

import (
	"context"

	"github.com/finance-ledger/backend/internal/application/adapter"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
)

// ExportReportInput represents the input for a report export.
type ExportReportInput struct {
	AssembleReportInput
	Format string
}

// ExportReportOutput carries the rendered document and its download metadata.
type ExportReportOutput struct {
	Content     []byte
	ContentType string
	FileName    string
}

// ExportReportUseCase assembles a report dataset and renders it through the
// renderer registered for the requested format.
type ExportReportUseCase struct {
	assemble  *AssembleReportUseCase
	renderers map[string]adapter.ReportRenderer
}

// NewExportReportUseCase creates a new ExportReportUseCase instance. The
// renderers map is keyed by format name, e.g. "xlsx" and "pdf".
func NewExportReportUseCase(assemble *AssembleReportUseCase, renderers map[string]adapter.ReportRenderer) *ExportReportUseCase {
	return &ExportReportUseCase{
		assemble:  assemble,
		renderers: renderers,
	}
}

// Execute renders the assembled dataset in the requested format.
func (uc *ExportReportUseCase) Execute(ctx context.Context, input ExportReportInput) (*ExportReportOutput, error) {
	renderer, ok := uc.renderers[input.Format]
	if !ok {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeUnsupportedExportFormat,
			"export format must be 'xlsx' or 'pdf'",
			domainerror.ErrUnsupportedExportFormat,
		)
	}

	assembled, err := uc.assemble.Execute(ctx, input.AssembleReportInput)
	if err != nil {
		return nil, err
	}

	content, err := renderer.Render(assembled.Data)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeRenderFailed,
			"failed to render report document",
			err,
		)
	}

	return &ExportReportOutput{
		Content:     content,
		ContentType: renderer.ContentType(),
		FileName:    renderer.FileName(),
	}, nil
}
