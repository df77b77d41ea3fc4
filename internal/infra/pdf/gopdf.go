package pdf

import (
	"fmt"
	"os"

	"resume-search/internal/domain"

	"github.com/ledongthuc/pdf"
)

// GoPDFOpener opens PDFs with the pure-Go ledongthuc/pdf reader. It needs no
// MuPDF shared library but handles fewer font encodings.
type GoPDFOpener struct{}

// NewGoPDFOpener creates a ledongthuc/pdf backed opener.
func NewGoPDFOpener() *GoPDFOpener {
	return &GoPDFOpener{}
}

// Open opens the PDF at path. The parser panics on some malformed input, so
// panics are turned into errors. pdf.Open only reads the xref table; the
// catalog and page tree are walked here to count pages, so a broken catalog
// fails in Open rather than later.
func (o *GoPDFOpener) Open(path string) (doc domain.PDFDocument, err error) {
	var f *os.File
	defer func() {
		if r := recover(); r != nil {
			if f != nil {
				f.Close()
			}
			doc, err = nil, fmt.Errorf("failed to open PDF: %v", r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		if f != nil {
			f.Close()
		}
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	numPage := reader.NumPage()
	return &goPDFDocument{file: f, reader: reader, numPage: numPage}, nil
}

type goPDFDocument struct {
	file    *os.File
	reader  *pdf.Reader
	numPage int
}

func (d *goPDFDocument) NumPage() int {
	return d.numPage
}

// PageText takes a 0-based index; the library numbers pages from 1.
func (d *goPDFDocument) PageText(page int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("page %d: %v", page+1, r)
		}
	}()

	p := d.reader.Page(page + 1)
	if p.V.IsNull() {
		return "", nil
	}
	text, err = p.GetPlainText(make(map[string]*pdf.Font))
	if err != nil {
		return "", fmt.Errorf("page %d: %w", page+1, err)
	}
	return text, nil
}

func (d *goPDFDocument) Close() error {
	return d.file.Close()
}
