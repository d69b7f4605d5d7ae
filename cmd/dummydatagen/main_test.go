package main

import (
	"bytes"
	"testing"
)

func TestRootCmdRejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"unexpected"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.Execute(); err == nil {
		t.Error("Expected error for positional argument, got nil")
	}
}

func TestRootCmdHelp(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--help"})
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !bytes.Contains(out.Bytes(), []byte("dummy_employee_data.xlsx")) {
		t.Errorf("Expected help to mention the output file, got %q", out.String())
	}
}
