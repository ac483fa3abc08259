package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ns(v float64) Nanos {
	return Nanos{Value: v, Valid: true}
}

func TestTraceFirstMatchWins(t *testing.T) {
	f := File{Results: []TraceResult{
		{TraceName: "decode", MedianNs: ns(200000)},
		{TraceName: "decode", MedianNs: ns(999999)},
		{TraceName: "verify", MedianNs: ns(300000)},
	}}

	r, ok := f.Trace("decode")
	require.True(t, ok)
	assert.Equal(t, 200000.0, r.MedianNs.Value)

	_, ok = f.Trace("missing")
	assert.False(t, ok)
}

func TestTraceNames(t *testing.T) {
	f := File{Results: []TraceResult{
		{TraceName: "verify"},
		{TraceName: "decode"},
		{TraceName: ""},
		{TraceName: "decode"},
		{TraceName: "apply"},
	}}
	assert.Equal(t, []string{"apply", "decode", "verify"}, f.TraceNames())

	empty := File{}
	assert.Empty(t, empty.TraceNames())
}

func TestTraceResultMetrics(t *testing.T) {
	r := TraceResult{
		TraceName:  "decode",
		MinNs:      ns(100000),
		MaxNs:      ns(500000),
		MedianNs:   ns(200000),
		MeanNs:     ns(250000),
		StddevNs:   ns(50000),
		Iterations: 1000,
	}

	m := r.Metrics(DefaultWeights())

	assert.InDelta(t, 0.1, m.MinMs, 1e-12)
	assert.InDelta(t, 0.5, m.MaxMs, 1e-12)
	assert.InDelta(t, 0.2, m.MedianMs, 1e-12)
	assert.InDelta(t, 0.25, m.MeanMs, 1e-12)
	assert.InDelta(t, 0.05, m.StddevMs, 1e-12)
	assert.InDelta(t, 0.3141, m.P90Ms, 1e-9)
	assert.InDelta(t, 0.3663, m.P99Ms, 1e-9)
	assert.InDelta(t, 0.8, m.Consistency, 1e-12)
	assert.Equal(t, int64(1000), m.Iterations)

	// Weighted score lands strictly between the median and the max.
	assert.Greater(t, m.WeightedScore, m.MedianMs)
	assert.Less(t, m.WeightedScore, m.MaxMs)
}

func TestNewFileReport(t *testing.T) {
	f := File{
		GitCommit: "abc123",
		Results: []TraceResult{
			{TraceName: "verify", MinNs: ns(1000), MaxNs: ns(5000), MedianNs: ns(2000), MeanNs: ns(2500), StddevNs: ns(500), Iterations: 10},
			{TraceName: "decode", MinNs: ns(100000), MaxNs: ns(500000), MedianNs: ns(200000), MeanNs: ns(250000), StddevNs: ns(50000), Iterations: 1000},
		},
	}

	fr := NewFileReport("run1.json", f, DefaultWeights())

	assert.Equal(t, "run1.json", fr.Name)
	assert.Equal(t, []string{"decode", "verify"}, fr.TraceNames)
	require.Len(t, fr.Metrics, 2)

	expected := GeometricMean([]float64{
		fr.Metrics["decode"].WeightedScore,
		fr.Metrics["verify"].WeightedScore,
	})
	assert.InDelta(t, expected, fr.OverallScore, 1e-12)
	assert.Greater(t, fr.OverallScore, 0.0)
}

func TestNewFileReportEmpty(t *testing.T) {
	fr := NewFileReport("empty.json", File{}, DefaultWeights())
	assert.Empty(t, fr.TraceNames)
	assert.Equal(t, 0.0, fr.OverallScore)
}
