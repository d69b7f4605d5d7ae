// Package report prints the generator's single outcome line.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

// Success reports the written file and the directory it landed in
func Success(w io.Writer, filename, dir string) {
	msg := fmt.Sprintf("Successfully created Excel file: '%s' in directory '%s'", filename, dir)
	fmt.Fprintln(w, successStyle.Render(msg))
}

// Failure reports a save error with its underlying text
func Failure(w io.Writer, err error) {
	msg := fmt.Sprintf("Error saving Excel file: %v", err)
	fmt.Fprintln(w, errorStyle.Render(msg))
}
