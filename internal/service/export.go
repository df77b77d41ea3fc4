package service

import (
	"fmt"
	"io"

	"resume-search/internal/domain"

	"github.com/xuri/excelize/v2"
)

// ExportSheet is the worksheet holding exported records.
const ExportSheet = "Resumes"

// Exporter renders an index as an XLSX workbook with the cache columns.
type Exporter struct{}

// NewExporter creates an exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Write renders index into w. Cells longer than Excel's 32767 character limit
// are truncated by excelize.
func (e *Exporter) Write(w io.Writer, index *domain.Index) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExportSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	header := make([]interface{}, len(domain.Columns))
	for i, col := range domain.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(ExportSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, rec := range index.Records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		row := []interface{}{rec.Filename, rec.Name, rec.FullText}
		if err := f.SetSheetRow(ExportSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", rec.Filename, err)
		}
	}

	if err := f.SetColWidth(ExportSheet, "A", "B", 28); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
