package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"benchreport/internal/benchmark"
)

// Renderer writes the human-readable report. Diagnostics never go through
// here; the renderer only produces report text for a single writer.
type Renderer struct {
	out        io.Writer
	weights    benchmark.Weights
	stableBand float64
}

func NewRenderer(out io.Writer, weights benchmark.Weights, stableBand float64) *Renderer {
	return &Renderer{out: out, weights: weights, stableBand: stableBand}
}

// Header prints the report title and explains the weighting scheme.
func (r *Renderer) Header() {
	fmt.Fprintln(r.out, sectionStyle.Render("=== Benchmark Performance Report ==="))
	fmt.Fprintln(r.out, "Weighted Scoring System:")
	fmt.Fprintf(r.out, "• Median (P50): %.0f%% - Typical performance\n", r.weights.Median*100)
	fmt.Fprintf(r.out, "• P90: %.0f%% - Consistency\n", r.weights.P90*100)
	fmt.Fprintf(r.out, "• Mean: %.0f%% - Average\n", r.weights.Mean*100)
	fmt.Fprintf(r.out, "• P99: %.0f%% - Worst case\n", r.weights.P99*100)
	fmt.Fprintf(r.out, "• Consistency: %.0f%% - Lower variance\n", r.weights.Consistency*100)
	fmt.Fprintln(r.out)
}

// FileCount prints how many result files were found.
func (r *Renderer) FileCount(n int) {
	fmt.Fprintf(r.out, "Found %d benchmark file(s)\n\n", n)
}

// File prints the metadata block, summary table, overall score, and
// per-trace detail blocks for one benchmark file.
func (r *Renderer) File(fr benchmark.FileReport) {
	fmt.Fprintf(r.out, "Benchmark: %s\n", fr.Name)
	fmt.Fprintf(r.out, "  Date: %s\n", formatDateTime(fr.File.Timestamp))
	fmt.Fprintf(r.out, "  Git Commit: %s\n", orUnknown(fr.File.GitCommit))
	fmt.Fprintf(r.out, "  Parameters: %s\n", orUnknown(fr.File.Params))
	fmt.Fprintln(r.out)

	fmt.Fprintln(r.out, "  Performance Summary:")
	w := tabwriter.NewWriter(r.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "  TRACE\tMEDIAN\tP90\tMEAN\tP99\tCONSIST\tSCORE")
	for _, name := range fr.TraceNames {
		m, ok := fr.Metrics[name]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %s\t%.2f\t%.2f\t%.2f\t%.2f\t%.3f\t%.2f\n",
			name, m.MedianMs, m.P90Ms, m.MeanMs, m.P99Ms, m.Consistency, m.WeightedScore)
	}
	w.Flush()
	fmt.Fprintf(r.out, "  Overall Score (Geometric Mean): %8.2f ms\n\n", fr.OverallScore)

	for _, name := range fr.TraceNames {
		if m, ok := fr.Metrics[name]; ok {
			r.traceDetail(name, m)
		}
	}
	fmt.Fprintln(r.out)
}

func (r *Renderer) traceDetail(name string, m benchmark.TraceMetrics) {
	fmt.Fprintf(r.out, "\n--- %s Trace Detailed Metrics ---\n", strings.ToUpper(name))
	fmt.Fprintf(r.out, "Iterations: %d\n", m.Iterations)
	fmt.Fprintf(r.out, "Min:        %8.2f ms\n", m.MinMs)
	fmt.Fprintf(r.out, "Median:     %8.2f ms  (Weight: %.0f%%)\n", m.MedianMs, r.weights.Median*100)
	fmt.Fprintf(r.out, "Mean:       %8.2f ms  (Weight: %.0f%%)\n", m.MeanMs, r.weights.Mean*100)
	fmt.Fprintf(r.out, "P90:        %8.2f ms  (Weight: %.0f%%)\n", m.P90Ms, r.weights.P90*100)
	fmt.Fprintf(r.out, "P99:        %8.2f ms  (Weight: %.0f%%)\n", m.P99Ms, r.weights.P99*100)
	fmt.Fprintf(r.out, "Max:        %8.2f ms\n", m.MaxMs)
	fmt.Fprintf(r.out, "StdDev:     %8.2f ms\n", m.StddevMs)
	fmt.Fprintf(r.out, "Consistency: %7.3f    (Weight: %.0f%%)\n", m.Consistency, r.weights.Consistency*100)
	fmt.Fprintf(r.out, "Weighted Score: %6.2f ms\n", m.WeightedScore)
}

// Trends prints the comparison between the first and last file of the run.
func (r *Renderer) Trends(first, last benchmark.FileReport) {
	fmt.Fprintln(r.out, sectionStyle.Render("=== Performance Trends ==="))
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "Comparison between %s and %s:\n\n",
		formatDate(first.File.Timestamp), formatDate(last.File.Timestamp))

	overall := benchmark.OverallChange(first, last)
	fmt.Fprintln(r.out, "Overall Performance Comparison:")
	fmt.Fprintf(r.out, "  First:  %8.2f ms\n", overall.First)
	fmt.Fprintf(r.out, "  Latest: %8.2f ms\n", overall.Last)
	if overall.HasChange {
		fmt.Fprintf(r.out, "  Change: %+.1f%% (%s)\n", overall.ChangePct, styleDirection(overall.Direction))
	}
	fmt.Fprintln(r.out)

	fmt.Fprintln(r.out, "Individual Trace Comparison (Weighted Scores):")
	w := tabwriter.NewWriter(r.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "TRACE\tFIRST\tLATEST\tCHANGE%\tSTATUS")
	for _, e := range benchmark.Trend(first, last, r.stableBand) {
		change := "N/A"
		if e.HasChange {
			change = fmt.Sprintf("%+.1f%%", e.ChangePct)
		}
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%s\t%s\n",
			e.Name, e.FirstScore, e.LastScore, change, styleStatus(e.Status))
	}
	w.Flush()
	fmt.Fprintln(r.out)
}

// Insights prints, for the latest file, which weighted component dominates
// each trace's score.
func (r *Renderer) Insights(last benchmark.FileReport) {
	fmt.Fprintln(r.out, sectionStyle.Render("=== Optimization Insights ==="))
	fmt.Fprintln(r.out, "Individual metric breakdown for latest benchmark:")
	fmt.Fprintln(r.out)

	for _, name := range last.TraceNames {
		m, ok := last.Metrics[name]
		if !ok {
			continue
		}
		fmt.Fprintf(r.out, "%s - Areas for optimization:\n", strings.ToUpper(name))
		for _, c := range r.weights.Contributions(m) {
			fmt.Fprintf(r.out, "  • %-15s: %6.2f ms (%2.0f%% weight)\n", c.Label, c.Amount, c.Weight*100)
		}
		fmt.Fprintf(r.out, "  Total Score: %6.2f ms\n\n", m.WeightedScore)
	}
}

func formatDateTime(e benchmark.Epoch) string {
	if t, ok := e.Time(); ok {
		return t.Format("2006-01-02 15:04:05")
	}
	return "unknown"
}

func formatDate(e benchmark.Epoch) string {
	if t, ok := e.Time(); ok {
		return t.Format("2006-01-02")
	}
	return "unknown"
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
