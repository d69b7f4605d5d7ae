// Package fixture holds the hardcoded employee dataset written by the generator.
package fixture

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"
)

//go:embed employees.toml
var employeesTOML string

// Record is one data row aligned positionally to Dataset.Columns.
// A value is a string, a float64 or nil for an absent field.
type Record []any

// Dataset is the ordered header plus the ordered records
type Dataset struct {
	Columns []string
	Records []Record
}

type document struct {
	Columns   []string         `toml:"columns"`
	Employees []map[string]any `toml:"employee"`
}

// Load decodes the embedded employee dataset
func Load() (*Dataset, error) {
	return Parse(employeesTOML)
}

// Parse decodes a dataset document. Each [[employee]] table is laid out in
// column order; keys absent from a table become nil fields.
func Parse(doc string) (*Dataset, error) {
	var d document
	if _, err := toml.Decode(doc, &d); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}
	if len(d.Columns) == 0 {
		return nil, fmt.Errorf("dataset declares no columns")
	}

	known := make(map[string]bool, len(d.Columns))
	for _, col := range d.Columns {
		known[col] = true
	}

	records := make([]Record, 0, len(d.Employees))
	for i, emp := range d.Employees {
		for key := range emp {
			if !known[key] {
				return nil, fmt.Errorf("employee %d: unknown column %q", i+1, key)
			}
		}
		record := make(Record, len(d.Columns))
		for j, col := range d.Columns {
			record[j] = emp[col]
		}
		records = append(records, record)
	}

	return &Dataset{
		Columns: d.Columns,
		Records: records,
	}, nil
}

// Index returns the position of a column, or -1
func (d *Dataset) Index(column string) int {
	for i, col := range d.Columns {
		if col == column {
			return i
		}
	}
	return -1
}
