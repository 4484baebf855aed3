// Package export writes converted rows to spreadsheet workbooks.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"stagecsv/internal/models"
)

// SheetName is the name of the single results sheet.
const SheetName = "Results"

// WriteXLSX writes the header and rows to a new workbook at path.
// Every cell is stored as text so values keep their report formatting.
func WriteXLSX(path string, rows []models.OutputRow) error {
	xlsx := excelize.NewFile()
	defer xlsx.Close()

	_ = xlsx.SetAppProps(&excelize.AppProperties{
		Application: "stagecsv",
	})

	sheet := xlsx.GetSheetName(xlsx.GetActiveSheetIndex())
	if err := xlsx.SetSheetName(sheet, SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := models.Header
	if err := xlsx.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		record := row.Record()
		if err := xlsx.SetSheetRow(SheetName, cell, &record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	bold, err := xlsx.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	_ = xlsx.SetRowStyle(SheetName, 1, 1, bold)
	_ = xlsx.SetColWidth(SheetName, "A", "A", 18)
	_ = xlsx.SetColWidth(SheetName, "B", "B", 30)
	_ = xlsx.SetColWidth(SheetName, "C", "I", 14)

	// Keep the header visible while scrolling
	if err := xlsx.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := xlsx.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}
