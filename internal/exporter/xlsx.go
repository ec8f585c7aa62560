package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"foamcli/internal/config"
	"foamcli/pkg/contracts/domain"
)

// XLSXWriter exports the dataset table as an Excel workbook.
type XLSXWriter struct {
	paths *config.Paths
}

// NewXLSXWriter creates a new Excel writer instance
func NewXLSXWriter(paths *config.Paths) *XLSXWriter {
	return &XLSXWriter{paths: paths}
}

// WriteTable writes the table to <baseName>.xlsx under the exports
// directory and returns the full path. The header row is bold; value
// columns keep their numeric type so spreadsheets can compute on them.
func (w *XLSXWriter) WriteTable(table domain.Table, baseName string) (string, error) {
	fullPath := w.paths.GetExportPath(baseName + config.ExportExtension)

	slog.Info("Writing Excel export",
		slog.String("path", fullPath),
		slog.Int("rows", len(table.Rows)))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := config.ExportSheetName
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return "", fmt.Errorf("failed to name sheet: %w", err)
	}

	for col, name := range table.Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return "", fmt.Errorf("failed to compute header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return "", fmt.Errorf("failed to write header %q: %w", name, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil && len(table.Columns) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(table.Columns), 1)
		_ = f.SetCellStyle(sheet, "A1", last, headerStyle)
	}

	for i, row := range table.Rows {
		if len(row) != len(table.Columns) {
			return "", fmt.Errorf("row %d has %d cells, expected %d", i, len(row), len(table.Columns))
		}
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return "", fmt.Errorf("failed to compute cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return "", fmt.Errorf("failed to write row %d: %w", i, err)
			}
		}
	}

	if err := f.SaveAs(fullPath); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}

	return fullPath, nil
}
