package main

import (
	"os"

	"dummydatagen/internal/config"
	"dummydatagen/internal/generator"
	"dummydatagen/internal/logger"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dummydatagen",
		Short: "Generate dummy_employee_data.xlsx with sample employee records",
		Long: `dummydatagen writes a fixed set of sample employee records to
dummy_employee_data.xlsx in the current directory, for use as upload test data.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger.Info("Starting fixture generation")

	// A save failure is reported on stdout and still exits 0
	if err := generator.Run(config.Default(), cmd.OutOrStdout()); err != nil {
		logger.Warn("Fixture generation finished with errors", "error", err)
	}
	return nil
}
