package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"resume-search/internal/domain"
)

// CSVIndexRepository implements domain.IndexRepository as a CSV file with a
// header row and the columns filename,name,full_text.
type CSVIndexRepository struct {
	path   string
	logger domain.Logger
}

// NewCSVIndexRepository creates a repository backed by the file at path.
func NewCSVIndexRepository(path string, logger domain.Logger) *CSVIndexRepository {
	return &CSVIndexRepository{
		path:   path,
		logger: logger,
	}
}

// Path returns the cache artifact location.
func (r *CSVIndexRepository) Path() string {
	return r.path
}

// Exists reports whether the cache artifact is present.
func (r *CSVIndexRepository) Exists() (bool, error) {
	_, err := os.Stat(r.path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat cache file: %w", err)
}

// Load reads the cache artifact verbatim. The PDF directory is not consulted.
func (r *CSVIndexRepository) Load() (*domain.Index, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open cache file: %w", err)
	}
	defer f.Close()

	index, err := ReadIndex(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.path, err)
	}

	r.logger.Debug("Cache loaded", "path", r.path, "records", index.Len())
	return index, nil
}

// Save overwrites the cache artifact. The file is written next to its final
// location and renamed into place so readers never see a partial table.
func (r *CSVIndexRepository) Save(index *domain.Index) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp cache file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := WriteIndex(tmp, index); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp cache file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("replace cache file: %w", err)
	}

	r.logger.Info("Cache written", "path", r.path, "records", index.Len())
	return nil
}

// csv.Reader folds a quoted "\r\n" into "\n", so carriage returns are
// stored as the two characters `\r` and backslashes are doubled.
var (
	fieldEscaper   = strings.NewReplacer(`\`, `\\`, "\r", `\r`)
	fieldUnescaper = strings.NewReplacer(`\\`, `\`, `\r`, "\r")
)

func escapeField(s string) string {
	if !strings.ContainsAny(s, "\\\r") {
		return s
	}
	return fieldEscaper.Replace(s)
}

func unescapeField(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	return fieldUnescaper.Replace(s)
}

// WriteIndex serializes index as CSV with a header row. Field values are
// escaped so ReadIndex returns them byte for byte.
func WriteIndex(w io.Writer, index *domain.Index) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(domain.Columns); err != nil {
		return fmt.Errorf("write cache header: %w", err)
	}
	if index != nil {
		for _, rec := range index.Records {
			if err := cw.Write([]string{
				escapeField(rec.Filename),
				escapeField(rec.Name),
				escapeField(rec.FullText),
			}); err != nil {
				return fmt.Errorf("write cache row %q: %w", rec.Filename, err)
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush cache: %w", err)
	}
	return nil
}

// ReadIndex parses a CSV table written by WriteIndex. Columns are located by
// header name; a missing column reads as empty strings.
func ReadIndex(rd io.Reader) (*domain.Index, error) {
	cr := csv.NewReader(rd)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: missing header row", domain.ErrCacheCorrupt)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCacheCorrupt, err)
	}

	pos := map[string]int{}
	for i, col := range header {
		pos[col] = i
	}
	if _, ok := pos[domain.ColumnFilename]; !ok {
		return nil, fmt.Errorf("%w: header has no %q column", domain.ErrCacheCorrupt, domain.ColumnFilename)
	}

	field := func(row []string, col string) string {
		i, ok := pos[col]
		if !ok || i >= len(row) {
			return ""
		}
		return unescapeField(row[i])
	}

	index := domain.NewIndex()
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrCacheCorrupt, err)
		}
		index.Records = append(index.Records, domain.Record{
			Filename: field(row, domain.ColumnFilename),
			Name:     field(row, domain.ColumnName),
			FullText: field(row, domain.ColumnFullText),
		})
	}
	return index, nil
}
