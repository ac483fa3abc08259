package benchmark

import (
	"encoding/json"
	"time"

	"github.com/spf13/cast"
)

// File is one benchmark result document as written by the harness.
// Every field is optional on the wire; absent fields decode to their
// zero values.
type File struct {
	Timestamp Epoch         `json:"timestamp"`
	GitCommit string        `json:"git_commit"`
	Params    string        `json:"params"`
	Results   []TraceResult `json:"results"`
}

// TraceResult is the raw measurement for one named trace.
type TraceResult struct {
	TraceName  string `json:"trace_name"`
	MinNs      Nanos  `json:"min_ns"`
	MaxNs      Nanos  `json:"max_ns"`
	MedianNs   Nanos  `json:"median_ns"`
	MeanNs     Nanos  `json:"mean_ns"`
	StddevNs   Nanos  `json:"stddev_ns"`
	Iterations int64  `json:"iterations"`
}

// Nanos is a nanosecond quantity decoded from untrusted JSON. The harness
// occasionally emits strings or nulls where numbers belong, so decoding
// never fails: a value that cannot be coerced decodes as zero with Valid
// unset, which keeps "valid zero" distinguishable from "coercion failure".
type Nanos struct {
	Value float64
	Valid bool
}

func (n *Nanos) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		*n = Nanos{}
		return nil
	}
	if raw == nil {
		*n = Nanos{}
		return nil
	}
	v, err := cast.ToFloat64E(raw)
	if err != nil {
		*n = Nanos{}
		return nil
	}
	*n = Nanos{Value: v, Valid: true}
	return nil
}

// Ms returns the value converted from nanoseconds to milliseconds.
func (n Nanos) Ms() float64 {
	return n.Value / 1_000_000
}

// Epoch is a unix timestamp in seconds with the same tolerant decoding as
// Nanos. A zero or invalid timestamp reports no time.
type Epoch struct {
	Value int64
	Valid bool
}

func (e *Epoch) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		*e = Epoch{}
		return nil
	}
	if raw == nil {
		*e = Epoch{}
		return nil
	}
	v, err := cast.ToInt64E(raw)
	if err != nil {
		*e = Epoch{}
		return nil
	}
	*e = Epoch{Value: v, Valid: true}
	return nil
}

// Time returns the timestamp as a time.Time, or ok=false when the
// timestamp was absent, zero, or unparseable.
func (e Epoch) Time() (time.Time, bool) {
	if !e.Valid || e.Value == 0 {
		return time.Time{}, false
	}
	return time.Unix(e.Value, 0), true
}

// NsToMs converts a nanosecond value of any JSON-ish type to milliseconds.
// Non-numeric input converts to 0.0 rather than failing.
func NsToMs(v any) float64 {
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0.0
	}
	return f / 1_000_000
}
