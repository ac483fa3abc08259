package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exit = os.Exit

var (
	cfgFile  string
	benchDir string
)

// rootCmd renders the report when called without any subcommand or flags,
// so a bare `benchreport` after a harness run is the whole workflow.
var rootCmd = &cobra.Command{
	Use:   "benchreport",
	Short: "Render weighted performance reports from benchmark result files",
	Long: `benchreport reads the JSON result files produced by the benchmark
harness and renders a human-readable performance report: per-trace summary
tables with estimated percentiles and a weighted composite score, and a
trend comparison across runs when more than one result file is present.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runReport,
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.Flags().StringVar(&benchDir, "dir", "", "directory containing benchmark result files (overrides config)")
}
