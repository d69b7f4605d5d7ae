package excel

import (
	"unicode/utf8"

	"dummydatagen/internal/logger"

	"github.com/xuri/excelize/v2"
)

// NormalizeColumnWidths sizes every column of sheet to its longest displayed
// value plus padding and returns the widths keyed by column letter.
// Cells that cannot be read are skipped; it never fails.
func NormalizeColumnWidths(e *Editor, sheet string, padding int) map[string]float64 {
	rows, cols, err := e.Dimensions(sheet)
	if err != nil {
		logger.Warn("Skipping column width adjustment", "sheet", sheet, "error", err)
		return nil
	}

	widths := make(map[string]float64, cols)
	for col := 1; col <= cols; col++ {
		column, err := excelize.ColumnNumberToName(col)
		if err != nil {
			logger.Debug("Skipping column in width scan", "column", col, "error", err)
			continue
		}

		maxLength := 0
		for row := 1; row <= rows; row++ {
			if n, ok := cellLength(e, sheet, col, row); ok && n > maxLength {
				maxLength = n
			}
		}

		width := float64(maxLength + padding)
		if err := e.SetColumnWidth(sheet, column, width); err != nil {
			logger.Debug("Failed to set column width", "column", column, "width", width, "error", err)
			continue
		}
		widths[column] = width
	}

	logger.Debug("Adjusted column widths", "sheet", sheet, "columns", len(widths))
	return widths
}

// cellLength returns the character count of a cell's displayed text.
// Read failures are logged and reported as not ok.
func cellLength(e *Editor, sheet string, col, row int) (int, bool) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		logger.Debug("Skipping cell in width scan", "column", col, "row", row, "error", err)
		return 0, false
	}
	value, err := e.GetCellValue(sheet, cell)
	if err != nil {
		logger.Debug("Skipping cell in width scan", "cell", cell, "error", err)
		return 0, false
	}
	if value == "" {
		return 0, false
	}
	return utf8.RuneCountInString(value), true
}
