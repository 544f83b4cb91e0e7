package commands

import (
	"fmt"
	"io"
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/tangobridge/tangobridge/pkg/log"
)

// Stats holds aggregate statistics about a trace file.
type Stats struct {
	TotalEvents int
	Proxies     map[string]bool
	Devices     map[string]int
	Operations  map[log.Operation]*OperationStats
	Errors      int
	TimeRange   struct {
		Start time.Time
		End   time.Time
	}
}

// OperationStats holds reply statistics for one operation.
type OperationStats struct {
	Calls     int
	Errors    int
	Durations []float64 // seconds
	Reasons   map[string]int
}

// MeanDuration returns the mean reply duration.
func (o *OperationStats) MeanDuration() time.Duration {
	if len(o.Durations) == 0 {
		return 0
	}
	return time.Duration(math.Round(stat.Mean(o.Durations, nil) * float64(time.Second)))
}

// collectStats reads the whole file into a Stats.
func collectStats(path string) (*Stats, error) {
	stats := &Stats{
		Proxies:    make(map[string]bool),
		Devices:    make(map[string]int),
		Operations: make(map[log.Operation]*OperationStats),
	}

	err := forEach(path, FilterOptions{}, func(event log.Event) error {
		stats.TotalEvents++
		stats.Proxies[event.ProxyID] = true

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		// Only replies carry outcome and duration.
		if event.Direction != log.DirectionReply {
			return nil
		}
		stats.Devices[event.Device]++

		op, ok := stats.Operations[event.Operation]
		if !ok {
			op = &OperationStats{Reasons: make(map[string]int)}
			stats.Operations[event.Operation] = op
		}
		op.Calls++
		op.Durations = append(op.Durations, event.Duration.Seconds())
		if event.Error != nil {
			op.Errors++
			stats.Errors++
			reason := event.Error.Reason
			if reason == "" {
				reason = "unknown"
			}
			op.Reasons[reason]++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// RunStats analyzes the trace file and prints statistics.
func RunStats(path string, w io.Writer) error {
	stats, err := collectStats(path)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Proxy Call Trace Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Millisecond))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintf(w, "Proxies:      %d\n", len(stats.Proxies))
	fmt.Fprintln(w)

	ops := make([]log.Operation, 0, len(stats.Operations))
	for op := range stats.Operations {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })

	fmt.Fprintln(w, "Calls by Operation:")
	for _, op := range ops {
		s := stats.Operations[op]
		fmt.Fprintf(w, "  %-22s %5d calls %5d errors  mean %s\n",
			op.String()+":", s.Calls, s.Errors, formatDuration(s.MeanDuration()))

		reasons := make([]string, 0, len(s.Reasons))
		for r := range s.Reasons {
			reasons = append(reasons, r)
		}
		sort.Strings(reasons)
		for _, r := range reasons {
			fmt.Fprintf(w, "      %s: %d\n", r, s.Reasons[r])
		}
	}
	fmt.Fprintln(w)

	devices := make([]string, 0, len(stats.Devices))
	for d := range stats.Devices {
		devices = append(devices, d)
	}
	sort.Strings(devices)

	fmt.Fprintln(w, "Calls by Device:")
	for _, d := range devices {
		fmt.Fprintf(w, "  %-22s %d\n", d+":", stats.Devices[d])
	}

	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
