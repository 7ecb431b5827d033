package export

import (
	"bytes"
	"testing"

	"github.com/finance-ledger/backend/internal/domain/entity"
)

func TestPDFRenderer_Render(t *testing.T) {
	renderer := NewPDFRenderer("RWF")

	content, err := renderer.Render(sampleData())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(content) == 0 {
		t.Fatal("expected non-empty document")
	}
	if !bytes.HasPrefix(content, []byte("%PDF")) {
		t.Errorf("expected a PDF header, got %q", content[:8])
	}
}

func TestPDFRenderer_RenderEmptyDataset(t *testing.T) {
	renderer := NewPDFRenderer("RWF")

	content, err := renderer.Render(&entity.ReportData{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(content, []byte("%PDF")) {
		t.Error("expected a valid PDF even with no sections")
	}
}

func TestPDFRenderer_Metadata(t *testing.T) {
	renderer := NewPDFRenderer("RWF")

	if renderer.ContentType() != "application/pdf" {
		t.Errorf("unexpected content type %s", renderer.ContentType())
	}
	if renderer.FileName() != "financial-report.pdf" {
		t.Errorf("unexpected file name %s", renderer.FileName())
	}
}
