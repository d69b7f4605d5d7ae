package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// Editor owns one in-memory workbook from creation to Close
type Editor struct {
	file     *excelize.File
	filepath string

	// next row number for AppendRow, 1-based
	nextRow       map[string]int
	currencyStyle int
}

// OpenFile opens an existing Excel file
func OpenFile(filepath string) (*Editor, error) {
	file, err := excelize.OpenFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return &Editor{
		file:     file,
		filepath: filepath,
		nextRow:  make(map[string]int),
	}, nil
}

// CreateNewFile creates a new workbook in memory whose only sheet is named sheet
func CreateNewFile(sheet string) (*Editor, error) {
	file := excelize.NewFile()
	if sheet != defaultSheet {
		if err := file.SetSheetName(defaultSheet, sheet); err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to rename sheet to %q: %w", sheet, err)
		}
	}
	return &Editor{
		file:    file,
		nextRow: make(map[string]int),
	}, nil
}

// AppendRow writes values into the first unused row of sheet.
// nil and empty strings leave the cell blank; float64 values get the currency format.
func (e *Editor) AppendRow(sheet string, values []any) error {
	row := e.nextRow[sheet]
	if row == 0 {
		rows, err := e.file.GetRows(sheet)
		if err != nil {
			return fmt.Errorf("failed to get rows: %w", err)
		}
		row = len(rows) + 1
	}

	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		switch v := value.(type) {
		case nil:
			continue
		case string:
			if v == "" {
				continue
			}
			err = e.file.SetCellStr(sheet, cell, v)
		case float64:
			err = e.setCurrency(sheet, cell, v)
		default:
			err = e.file.SetCellValue(sheet, cell, v)
		}
		if err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cell, err)
		}
	}

	e.nextRow[sheet] = row + 1
	return nil
}

// setCurrency stores a number and applies 2 decimal places formatting
func (e *Editor) setCurrency(sheet, cell string, value float64) error {
	if err := e.file.SetCellFloat(sheet, cell, value, -1, 64); err != nil {
		return err
	}

	if e.currencyStyle == 0 {
		style, err := e.file.NewStyle(&excelize.Style{
			NumFmt: 2, // Built-in format for 2 decimal places (0.00)
		})
		if err != nil {
			return fmt.Errorf("failed to create currency style: %w", err)
		}
		e.currencyStyle = style
	}

	if err := e.file.SetCellStyle(sheet, cell, cell, e.currencyStyle); err != nil {
		return fmt.Errorf("failed to apply currency style: %w", err)
	}
	return nil
}

// GetCellValue returns the displayed value in a specific cell
func (e *Editor) GetCellValue(sheet, cell string) (string, error) {
	return e.file.GetCellValue(sheet, cell)
}

func (e *Editor) GetCellDataType(sheet, cell string) (excelize.CellType, error) {
	return e.file.GetCellType(sheet, cell)
}

// GetColumnHeaders returns all column headers (first row)
func (e *Editor) GetColumnHeaders(sheet string) ([]string, error) {
	rows, err := e.file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get first row: %w", err)
	}
	if len(rows) == 0 {
		return []string{}, nil
	}
	return rows[0], nil
}

// ReadColumnValues reads all values from a specific column
func (e *Editor) ReadColumnValues(sheet, column string) ([]string, error) {
	rows, err := e.file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	colNum, err := excelize.ColumnNameToNumber(column)
	if err != nil {
		return nil, err
	}
	colIndex := colNum - 1

	var columnValues []string
	for _, row := range rows {
		if colIndex < len(row) {
			columnValues = append(columnValues, row[colIndex])
		} else {
			columnValues = append(columnValues, "")
		}
	}
	return columnValues, nil
}

// GetAllRows returns all rows from a sheet
func (e *Editor) GetAllRows(sheet string) ([][]string, error) {
	return e.file.GetRows(sheet)
}

// Dimensions returns the row count and the widest row's column count
func (e *Editor) Dimensions(sheet string) (rows, cols int, err error) {
	all, err := e.file.GetRows(sheet)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get rows: %w", err)
	}
	for _, row := range all {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return len(all), cols, nil
}

// SetColumnWidth sets the display width of a single column
func (e *Editor) SetColumnWidth(sheet, column string, width float64) error {
	return e.file.SetColWidth(sheet, column, column, width)
}

// GetColumnWidth returns the display width of a column
func (e *Editor) GetColumnWidth(sheet, column string) (float64, error) {
	return e.file.GetColWidth(sheet, column)
}

// GetSheetNames returns all sheet names in the workbook
func (e *Editor) GetSheetNames() []string {
	return e.file.GetSheetList()
}

// Save saves the Excel file to the original filepath
func (e *Editor) Save() error {
	if e.filepath == "" {
		return fmt.Errorf("no filepath specified, use SaveAs instead")
	}
	return e.file.SaveAs(e.filepath)
}

// SaveAs saves the Excel file with a new name, replacing any existing file
func (e *Editor) SaveAs(filepath string) error {
	e.filepath = filepath
	return e.file.SaveAs(filepath)
}

// Close closes the Excel file
func (e *Editor) Close() error {
	return e.file.Close()
}
