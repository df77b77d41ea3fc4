package repository

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"resume-search/internal/domain"
)

// PDFExtension is matched case-sensitively, so "CV.PDF" is not indexed.
const PDFExtension = ".pdf"

// PDFDirectory implements domain.PDFSource over a flat directory.
type PDFDirectory struct {
	dir    string
	logger domain.Logger
}

// NewPDFDirectory creates a source rooted at dir.
func NewPDFDirectory(dir string, logger domain.Logger) *PDFDirectory {
	return &PDFDirectory{
		dir:    dir,
		logger: logger,
	}
}

// Dir returns the directory path.
func (d *PDFDirectory) Dir() string {
	return d.dir
}

// EnsureExists creates the directory if it is missing.
func (d *PDFDirectory) EnsureExists() error {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("create pdf dir: %w", err)
	}
	return nil
}

// IsEmpty reports true when the directory is missing or has no entries at all.
// Any entry counts, not only PDFs.
func (d *PDFDirectory) IsEmpty() (bool, error) {
	f, err := os.Open(d.dir)
	if errors.Is(err, os.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("open pdf dir: %w", err)
	}
	defer f.Close()

	names, err := f.Readdirnames(1)
	if len(names) > 0 {
		return false, nil
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read pdf dir: %w", err)
	}
	return true, nil
}

// ListPDFs returns the names of non-directory entries ending in ".pdf", in directory
// listing order.
func (d *PDFDirectory) ListPDFs() ([]string, error) {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		return nil, fmt.Errorf("list pdf dir: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), PDFExtension) {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// Path resolves filename inside the directory. Only bare "*.pdf" names are
// accepted.
func (d *PDFDirectory) Path(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || strings.ContainsAny(filename, `/\`) {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidFilename, filename)
	}
	if !strings.HasSuffix(filename, PDFExtension) {
		return "", fmt.Errorf("%w: %q is not a %s file", domain.ErrInvalidFilename, filename, PDFExtension)
	}
	return filepath.Join(d.dir, filename), nil
}

// Exists reports whether filename is a regular file in the directory.
func (d *PDFDirectory) Exists(filename string) bool {
	path, err := d.Path(filename)
	if err != nil {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Open opens filename for download.
func (d *PDFDirectory) Open(filename string) (*os.File, os.FileInfo, error) {
	path, err := d.Path(filename)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrFileNotFound, filename)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", filename, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("stat %s: %w", filename, err)
	}
	if !info.Mode().IsRegular() {
		f.Close()
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrFileNotFound, filename)
	}
	return f, info, nil
}
