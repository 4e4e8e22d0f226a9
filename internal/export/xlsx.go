// Package export renders enriched artifacts into download formats beyond the
// raw CSV bytes.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Enriched Data"

// WriteXLSX renders parsed CSV records as a single-sheet workbook. The first
// record becomes a bold header row. Ragged records are written as-is;
// excelize leaves missing trailing cells empty.
func WriteXLSX(w io.Writer, records [][]string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}

	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("computing cell for row %d: %w", i+1, err)
		}
		row := make([]interface{}, len(record))
		for j, v := range record {
			row[j] = v
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	if len(records) > 0 {
		style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return fmt.Errorf("creating header style: %w", err)
		}
		last, err := excelize.CoordinatesToCellName(len(records[0]), 1)
		if err != nil {
			return fmt.Errorf("computing header range: %w", err)
		}
		if err := f.SetCellStyle(sheetName, "A1", last, style); err != nil {
			return fmt.Errorf("styling header: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// XLSXFilename converts a CSV download name into its workbook counterpart.
func XLSXFilename(csvName string) string {
	if strings.HasSuffix(strings.ToLower(csvName), ".csv") {
		return csvName[:len(csvName)-4] + ".xlsx"
	}
	return csvName + ".xlsx"
}
