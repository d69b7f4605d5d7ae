package excel

import (
	"testing"

	"dummydatagen/internal/fixture"
)

func TestBuildTable(t *testing.T) {
	ds, err := fixture.Load()
	if err != nil {
		t.Fatalf("fixture.Load failed: %v", err)
	}

	e, err := CreateNewFile("Employees")
	if err != nil {
		t.Fatalf("CreateNewFile failed: %v", err)
	}
	defer e.Close()

	if err := BuildTable(e, "Employees", ds.Columns, ds.Records); err != nil {
		t.Fatalf("BuildTable failed: %v", err)
	}

	rows, cols, err := e.Dimensions("Employees")
	if err != nil {
		t.Fatalf("Dimensions failed: %v", err)
	}
	if rows != 9 || cols != 14 {
		t.Errorf("Expected 9x14, got %dx%d", rows, cols)
	}

	headers, err := e.GetColumnHeaders("Employees")
	if err != nil {
		t.Fatalf("GetColumnHeaders failed: %v", err)
	}
	for i, col := range ds.Columns {
		if headers[i] != col {
			t.Errorf("Header %d: expected %q, got %q", i, col, headers[i])
		}
	}

	all, err := e.GetAllRows("Employees")
	if err != nil {
		t.Fatalf("GetAllRows failed: %v", err)
	}
	// records keep their input order
	first := ds.Index("FirstName")
	for i, rec := range ds.Records {
		if all[i+1][first] != rec[first] {
			t.Errorf("Row %d: expected %v, got %q", i+2, rec[first], all[i+1][first])
		}
	}
}

func TestBuildTableBlankFields(t *testing.T) {
	e, err := CreateNewFile("Employees")
	if err != nil {
		t.Fatalf("CreateNewFile failed: %v", err)
	}
	defer e.Close()

	header := []string{"FirstName", "PhoneNumber", "BasicSalary"}
	records := []fixture.Record{
		{"Fiona", "", 52500.0},
		{"George", "555-123-9876", nil},
	}
	if err := BuildTable(e, "Employees", header, records); err != nil {
		t.Fatalf("BuildTable failed: %v", err)
	}

	for _, cell := range []string{"B2", "C3"} {
		value, err := e.GetCellValue("Employees", cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s) failed: %v", cell, err)
		}
		if value != "" {
			t.Errorf("Cell %s: expected empty cell, got %q", cell, value)
		}
	}
}

func TestBuildTableKeepsDuplicates(t *testing.T) {
	e, err := CreateNewFile("Employees")
	if err != nil {
		t.Fatalf("CreateNewFile failed: %v", err)
	}
	defer e.Close()

	records := []fixture.Record{
		{"alice.smith@example.com"},
		{"alice.smith@example.com"},
	}
	if err := BuildTable(e, "Employees", []string{"Email"}, records); err != nil {
		t.Fatalf("BuildTable failed: %v", err)
	}

	values, err := e.ReadColumnValues("Employees", "A")
	if err != nil {
		t.Fatalf("ReadColumnValues failed: %v", err)
	}
	if len(values) != 3 {
		t.Errorf("Expected header plus 2 rows, got %v", values)
	}
}
