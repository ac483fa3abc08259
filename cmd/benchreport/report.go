package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"benchreport/internal/benchmark"
	"benchreport/internal/config"
	"benchreport/internal/report"
)

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("dir") {
		cfg.Dir = benchDir
	}

	out := cmd.OutOrStdout()
	errw := cmd.ErrOrStderr()

	r := report.NewRenderer(out, cfg.Weights, cfg.StableBand)
	r.Header()

	src := benchmark.Source{Dir: cfg.Dir}
	files, err := src.Files()
	if err != nil {
		if os.IsNotExist(err) {
			// Not an error exit: there is simply nothing to report yet.
			fmt.Fprintf(out, "Error: %s directory not found\n", cfg.Dir)
			fmt.Fprintln(out, "Run the benchmark harness first to produce result files")
			return nil
		}
		return err
	}
	if len(files) == 0 {
		fmt.Fprintf(out, "No JSON files found in %s/\n", cfg.Dir)
		return nil
	}
	r.FileCount(len(files))

	var reports []benchmark.FileReport
	for _, path := range files {
		fmt.Fprintf(errw, "Processing: %s\n", filepath.Base(path))
		f, err := src.Load(path)
		if err != nil {
			fmt.Fprintf(errw, "Error reading %s: %v\n", path, err)
			continue
		}
		fr := benchmark.NewFileReport(filepath.Base(path), *f, cfg.Weights)
		r.File(fr)
		reports = append(reports, fr)
	}

	if len(reports) > 1 {
		first, last := reports[0], reports[len(reports)-1]
		r.Trends(first, last)
		r.Insights(last)
	}

	return nil
}
