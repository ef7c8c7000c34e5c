package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"docextractor/internal/domain"
)

const sheetName = "Documentos"

// WriteXLSX writes a single-sheet workbook with the header row and one row per document.
func WriteXLSX(out io.Writer, docs []domain.DocumentData) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	// Rename the default sheet instead of adding a second one.
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	if err := writeRow(f, 1, Headers()); err != nil {
		return err
	}
	for i := range docs {
		if err := writeRow(f, i+2, documentToRow(&docs[i])); err != nil {
			return err
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(columns))
	_ = f.SetColWidth(sheetName, "A", lastCol, 22)
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		_ = f.SetRowStyle(sheetName, 1, 1, style)
	}

	if _, err := f.WriteTo(out); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, row int, values []string) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetCellStr(sheetName, cell, v); err != nil {
			return fmt.Errorf("setting %s: %w", cell, err)
		}
	}
	return nil
}
