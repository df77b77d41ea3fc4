package service

import (
	"strings"

	"resume-search/internal/domain"
)

// Extractor implements domain.TextExtractor over an injectable PDF opener.
type Extractor struct {
	opener domain.PDFOpener
	logger domain.Logger
}

// NewExtractor creates an extractor using opener for page access.
func NewExtractor(opener domain.PDFOpener, logger domain.Logger) *Extractor {
	return &Extractor{
		opener: opener,
		logger: logger,
	}
}

// ExtractText returns the text of every page of the PDF at path, in page
// order, concatenated with no separator and trimmed. Any open or page
// failure is reported as a *domain.DocumentReadError.
func (e *Extractor) ExtractText(path string) (string, error) {
	doc, err := e.opener.Open(path)
	if err != nil {
		return "", &domain.DocumentReadError{Path: path, Err: err}
	}
	defer doc.Close()

	numPages := doc.NumPage()
	var sb strings.Builder
	for page := 0; page < numPages; page++ {
		text, err := doc.PageText(page)
		if err != nil {
			return "", &domain.DocumentReadError{Path: path, Err: err}
		}
		e.logger.Debug("PDF page extracted", "path", path, "page", page+1, "total", numPages, "chars", len(text))
		sb.WriteString(text)
	}

	return strings.TrimSpace(sanitizeText(sb.String())), nil
}
