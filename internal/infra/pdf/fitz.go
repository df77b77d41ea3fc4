// Package pdf adapts third-party PDF libraries to domain.PDFOpener.
package pdf

import (
	"fmt"

	"resume-search/internal/domain"

	"github.com/gen2brain/go-fitz"
)

// FitzOpener opens PDFs with MuPDF through go-fitz.
type FitzOpener struct{}

// NewFitzOpener creates a go-fitz backed opener.
func NewFitzOpener() *FitzOpener {
	return &FitzOpener{}
}

// Open opens the PDF at path.
func (o *FitzOpener) Open(path string) (domain.PDFDocument, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	return &fitzDocument{doc: doc}, nil
}

type fitzDocument struct {
	doc *fitz.Document
}

func (d *fitzDocument) NumPage() int {
	return d.doc.NumPage()
}

func (d *fitzDocument) PageText(page int) (string, error) {
	text, err := d.doc.Text(page)
	if err != nil {
		return "", fmt.Errorf("page %d: %w", page+1, err)
	}
	return text, nil
}

func (d *fitzDocument) Close() error {
	return d.doc.Close()
}
