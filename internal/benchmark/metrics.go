package benchmark

import "sort"

// TraceMetrics is the derived, millisecond view of one trace, rebuilt fresh
// for every report run.
type TraceMetrics struct {
	MinMs         float64
	MaxMs         float64
	MedianMs      float64
	MeanMs        float64
	StddevMs      float64
	P90Ms         float64
	P99Ms         float64
	Consistency   float64
	WeightedScore float64
	Iterations    int64
}

// Trace returns the first result named name. Trace names are not guaranteed
// unique within a file; the first match wins, matching the harness's own
// tooling.
func (f *File) Trace(name string) (TraceResult, bool) {
	for _, r := range f.Results {
		if r.TraceName == name {
			return r, true
		}
	}
	return TraceResult{}, false
}

// TraceNames returns the sorted unique non-empty trace names in the file.
func (f *File) TraceNames() []string {
	seen := make(map[string]struct{}, len(f.Results))
	var names []string
	for _, r := range f.Results {
		if r.TraceName == "" {
			continue
		}
		if _, ok := seen[r.TraceName]; ok {
			continue
		}
		seen[r.TraceName] = struct{}{}
		names = append(names, r.TraceName)
	}
	sort.Strings(names)
	return names
}

// Metrics computes the derived view of a raw result under the given weights.
func (r TraceResult) Metrics(w Weights) TraceMetrics {
	p90Ns, p99Ns := EstimatePercentiles(
		r.MinNs.Value, r.MaxNs.Value, r.MedianNs.Value, r.MeanNs.Value, r.StddevNs.Value)

	m := TraceMetrics{
		MinMs:       r.MinNs.Ms(),
		MaxMs:       r.MaxNs.Ms(),
		MedianMs:    r.MedianNs.Ms(),
		MeanMs:      r.MeanNs.Ms(),
		StddevMs:    r.StddevNs.Ms(),
		P90Ms:       p90Ns / 1_000_000,
		P99Ms:       p99Ns / 1_000_000,
		Consistency: Consistency(r.MeanNs.Value, r.StddevNs.Value),
		Iterations:  r.Iterations,
	}
	m.WeightedScore = w.Score(m)
	return m
}

// FileReport is the fully derived view of one benchmark file.
type FileReport struct {
	Name         string
	File         File
	TraceNames   []string
	Metrics      map[string]TraceMetrics
	OverallScore float64
}

// NewFileReport derives metrics for every trace in the file and the
// geometric-mean overall score.
func NewFileReport(name string, f File, w Weights) FileReport {
	names := f.TraceNames()
	metrics := make(map[string]TraceMetrics, len(names))
	scores := make([]float64, 0, len(names))
	for _, n := range names {
		r, ok := f.Trace(n)
		if !ok {
			continue
		}
		m := r.Metrics(w)
		metrics[n] = m
		scores = append(scores, m.WeightedScore)
	}
	return FileReport{
		Name:         name,
		File:         f,
		TraceNames:   names,
		Metrics:      metrics,
		OverallScore: GeometricMean(scores),
	}
}
