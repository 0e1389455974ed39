package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command; subcommands register themselves in init.
var rootCmd = &cobra.Command{
	Use:   "pg-atlas",
	Short: "Normalize crowd-sourced PG/hostel listings into a ranked, mapped dataset",
	Long: `pg-atlas ingests the messy CSV export of a crowd-sourced PG/hostel sheet
and turns it into a clean dataset: costs resolved from free-form ranges,
ratings imputed, comments tagged, every listing scored and placed near its
area hub. Outputs a dataset CSV, map points JSON, and a terminal report.`,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
