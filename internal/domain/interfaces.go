package domain

import (
	"io"
	"os"
)

// PDFDocument is an opened PDF. Page indexes are 0-based.
type PDFDocument interface {
	NumPage() int
	PageText(page int) (string, error)
	Close() error
}

// PDFOpener opens a PDF file from disk.
type PDFOpener interface {
	Open(path string) (PDFDocument, error)
}

// TextExtractor converts a PDF file into its plain text.
type TextExtractor interface {
	ExtractText(path string) (string, error)
}

// NameExtractor derives a display name from extracted text.
type NameExtractor interface {
	ExtractName(text string) string
}

// IndexRepository persists the index as the cache artifact.
type IndexRepository interface {
	Exists() (bool, error)
	Load() (*Index, error)
	Save(index *Index) error
	Path() string
}

// PDFSource lists and opens the PDF files of the configured directory.
type PDFSource interface {
	EnsureExists() error
	// IsEmpty reports whether the directory is missing or has no entries.
	IsEmpty() (bool, error)
	ListPDFs() ([]string, error)
	Path(filename string) (string, error)
	Exists(filename string) bool
	Open(filename string) (*os.File, os.FileInfo, error)
}

// IndexService builds and loads the index.
type IndexService interface {
	Build() (*Index, error)
	Load() (*Index, error)
}

// SearchService filters an index and renders results.
type SearchService interface {
	Search(keyword string) (*Index, []SearchResult, error)
	Export(w io.Writer, keyword string) (int, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetPDFDir() string
	GetCacheFile() string
	GetLogLevel() string
	GetPDFBackend() string
	GetSkipUnreadable() bool
	GetBuildWorkers() int
	GetPreviewChars() int
	GetRebuildsPerMinute() int
	GetAllowedOrigins() []string
}
