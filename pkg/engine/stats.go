package engine

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/tangobridge/tangobridge/pkg/wire"
)

// FieldStats summarizes one numeric field over a run.
type FieldStats struct {
	Field  string
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Stats accumulates numeric scalar values per field. Values are reset on
// every RunStart.
type Stats struct {
	mu sync.Mutex

	fields map[string]bool
	values map[string][]float64
}

// NewStats creates a statistics callback. With no fields every numeric
// scalar is tracked.
func NewStats(fields ...string) *Stats {
	s := &Stats{values: make(map[string][]float64)}
	if len(fields) > 0 {
		s.fields = make(map[string]bool, len(fields))
		for _, f := range fields {
			s.fields[f] = true
		}
	}
	return s
}

// Handle is the engine callback.
func (s *Stats) Handle(kind wire.Kind, doc any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch d := doc.(type) {
	case *wire.RunStart:
		s.values = make(map[string][]float64)
	case *wire.Event:
		for key, v := range d.Data {
			if s.fields != nil && !s.fields[key] {
				continue
			}
			if f, ok := toFloat(v); ok {
				s.values[key] = append(s.values[key], f)
			}
		}
	}
}

// Results returns the statistics of every tracked field, sorted by name.
func (s *Stats) Results() []FieldStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]FieldStats, 0, len(s.values))
	for field, xs := range s.values {
		fs := FieldStats{
			Field: field,
			Count: len(xs),
			Mean:  stat.Mean(xs, nil),
			Min:   floats.Min(xs),
			Max:   floats.Max(xs),
		}
		if len(xs) > 1 {
			fs.StdDev = stat.StdDev(xs, nil)
		}
		results = append(results, fs)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Field < results[j].Field })
	return results
}

// Print writes the results as a table.
func (s *Stats) Print(w io.Writer) {
	results := s.Results()
	if len(results) == 0 {
		return
	}
	fmt.Fprintf(w, "%-20s %6s %12s %12s %12s %12s\n", "field", "n", "mean", "stddev", "min", "max")
	for _, r := range results {
		fmt.Fprintf(w, "%-20s %6d %12.4g %12.4g %12.4g %12.4g\n", r.Field, r.Count, r.Mean, r.StdDev, r.Min, r.Max)
	}
}

// toFloat converts numeric scalars to float64.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return 0, false
	}
}
