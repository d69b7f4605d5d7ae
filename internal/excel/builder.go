package excel

import (
	"fmt"

	"dummydatagen/internal/fixture"
)

// BuildTable writes header into row 1 and each record below it in order.
// Records are written as given: no type, count or uniqueness checks.
func BuildTable(e *Editor, sheet string, header []string, records []fixture.Record) error {
	headerRow := make([]any, len(header))
	for i, name := range header {
		headerRow[i] = name
	}
	if err := e.AppendRow(sheet, headerRow); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, record := range records {
		if err := e.AppendRow(sheet, record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i+1, err)
		}
	}
	return nil
}
