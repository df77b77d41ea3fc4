package pdf

import (
	"fmt"

	"resume-search/internal/domain"
)

// Backend names accepted by NewOpener.
const (
	BackendFitz  = "fitz"
	BackendGoPDF = "gopdf"
)

// NewOpener returns the opener for backend.
func NewOpener(backend string) (domain.PDFOpener, error) {
	switch backend {
	case BackendFitz, "":
		return NewFitzOpener(), nil
	case BackendGoPDF:
		return NewGoPDFOpener(), nil
	default:
		return nil, fmt.Errorf("unknown PDF backend %q (want %q or %q)", backend, BackendFitz, BackendGoPDF)
	}
}
