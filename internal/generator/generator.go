// Package generator writes the employee fixture workbook.
package generator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"dummydatagen/internal/config"
	"dummydatagen/internal/excel"
	"dummydatagen/internal/fixture"
	"dummydatagen/internal/logger"
	"dummydatagen/internal/report"
)

// Run builds the fixture workbook, sizes its columns and saves it, then
// prints one outcome line to out. The returned error is the save failure,
// already reported on out.
func Run(cfg config.Config, out io.Writer) error {
	path, dir, err := resolveOutput(cfg.Output)
	if err != nil {
		report.Failure(out, err)
		return err
	}

	err = generate(cfg, path)
	if err != nil {
		logger.Error("Failed to generate fixture", "file", path, "error", err)
		report.Failure(out, err)
		return err
	}

	logger.Info("Generated fixture", "file", path)
	report.Success(out, cfg.Output.File, dir)
	return nil
}

func generate(cfg config.Config, path string) error {
	ds, err := fixture.Load()
	if err != nil {
		return err
	}

	editor, err := excel.CreateNewFile(cfg.Output.Sheet)
	if err != nil {
		return err
	}
	defer func() {
		if err := editor.Close(); err != nil {
			logger.Warn("Failed to close workbook", "error", err)
		}
	}()

	if err := excel.BuildTable(editor, cfg.Output.Sheet, ds.Columns, ds.Records); err != nil {
		return fmt.Errorf("failed to build table: %w", err)
	}
	logger.Info("Built table", "sheet", cfg.Output.Sheet, "records", len(ds.Records), "columns", len(ds.Columns))

	excel.NormalizeColumnWidths(editor, cfg.Output.Sheet, cfg.Layout.ColumnPadding)

	if err := editor.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// resolveOutput returns the target file path and its absolute directory
func resolveOutput(out config.OutputConfig) (string, string, error) {
	dir := out.Directory
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", "", fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", "", fmt.Errorf("failed to resolve directory %s: %w", dir, err)
	}
	return filepath.Join(abs, out.File), abs, nil
}
