package benchmark

import "sort"

// Trend status labels.
const (
	StatusImproved      = "IMPROVED"
	StatusRegressed     = "REGRESSED"
	StatusStable        = "STABLE"
	StatusNotComparable = "N/A"
)

// OverallTrend compares the overall scores of the first and last run.
type OverallTrend struct {
	First     float64
	Last      float64
	ChangePct float64
	// HasChange is false when the first score is non-positive and no
	// percentage can be computed.
	HasChange bool
	// Direction is "improvement" when the score decreased, else "regression".
	Direction string
}

// TrendEntry compares one trace's weighted score between the first and last
// run.
type TrendEntry struct {
	Name       string
	FirstScore float64
	LastScore  float64
	ChangePct  float64
	HasChange  bool
	Status     string
}

// OverallChange computes the overall-score comparison between two runs.
func OverallChange(first, last FileReport) OverallTrend {
	t := OverallTrend{First: first.OverallScore, Last: last.OverallScore}
	if t.First <= 0 {
		return t
	}
	t.ChangePct = (t.Last - t.First) / t.First * 100
	t.HasChange = true
	if t.ChangePct < 0 {
		t.Direction = "improvement"
	} else {
		t.Direction = "regression"
	}
	return t
}

// Trend compares the traces common to both runs, sorted by name. stableBand
// is the percentage band (default 5) within which a change counts as STABLE.
func Trend(first, last FileReport, stableBand float64) []TrendEntry {
	var common []string
	for name := range first.Metrics {
		if _, ok := last.Metrics[name]; ok {
			common = append(common, name)
		}
	}
	sort.Strings(common)

	entries := make([]TrendEntry, 0, len(common))
	for _, name := range common {
		e := TrendEntry{
			Name:       name,
			FirstScore: first.Metrics[name].WeightedScore,
			LastScore:  last.Metrics[name].WeightedScore,
		}
		if e.FirstScore > 0 {
			e.ChangePct = (e.LastScore - e.FirstScore) / e.FirstScore * 100
			e.HasChange = true
			switch {
			case e.ChangePct < -stableBand:
				e.Status = StatusImproved
			case e.ChangePct > stableBand:
				e.Status = StatusRegressed
			default:
				e.Status = StatusStable
			}
		} else {
			e.Status = StatusNotComparable
		}
		entries = append(entries, e)
	}
	return entries
}

// Contribution is one weighted component of a trace's score.
type Contribution struct {
	Label  string
	Amount float64
	Weight float64
}

// Contributions ranks the weighted components of a trace's score, largest
// first, to show where optimization effort would pay off.
func (w Weights) Contributions(m TraceMetrics) []Contribution {
	contribs := []Contribution{
		{Label: "Median (P50)", Amount: w.Median * m.MedianMs, Weight: w.Median},
		{Label: "P90", Amount: w.P90 * m.P90Ms, Weight: w.P90},
		{Label: "Mean", Amount: w.Mean * m.MeanMs, Weight: w.Mean},
		{Label: "P99", Amount: w.P99 * m.P99Ms, Weight: w.P99},
		{Label: "Inconsistency", Amount: w.Consistency * (1.0 - m.Consistency) * m.MeanMs, Weight: w.Consistency},
	}
	sort.SliceStable(contribs, func(i, j int) bool {
		return contribs[i].Amount > contribs[j].Amount
	})
	return contribs
}
