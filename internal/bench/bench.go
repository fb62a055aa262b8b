// Package bench times repeated conversions for the hakkatone bench command.
package bench

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

// RunResult holds the timing of one conversion pass over the input.
type RunResult struct {
	Index     int
	Cold      bool // first run, pays for lazy setup
	Duration  time.Duration
	Syllables int
	Rate      float64 // syllables per second
}

// Stats aggregates run durations.
type Stats struct {
	Min    time.Duration
	Median time.Duration
	Mean   time.Duration
	Max    time.Duration
}

// ComputeStats summarizes durations. An empty slice yields zero Stats.
func ComputeStats(durations []time.Duration) Stats {
	if len(durations) == 0 {
		return Stats{}
	}

	sorted := append([]time.Duration(nil), durations...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sum time.Duration
	for _, d := range sorted {
		sum += d
	}

	n := len(sorted)
	median := sorted[n/2]
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return Stats{
		Min:    sorted[0],
		Median: median,
		Mean:   sum / time.Duration(n),
		Max:    sorted[n-1],
	}
}

// Durations extracts the run durations.
func Durations(runs []RunResult) []time.Duration {
	out := make([]time.Duration, len(runs))
	for i, r := range runs {
		out[i] = r.Duration
	}
	return out
}

// Throughput returns syllables per second, or 0 for a zero duration.
func Throughput(syllables int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(syllables) / d.Seconds()
}

// Run calls convert runs times and times each call. convert reports how many
// syllables it produced.
func Run(ctx context.Context, runs int, convert func() (int, error)) ([]RunResult, error) {
	if runs < 1 {
		return nil, fmt.Errorf("runs must be at least 1, got %d", runs)
	}

	results := make([]RunResult, 0, runs)
	for i := 0; i < runs; i++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		start := time.Now()
		n, err := convert()
		dur := time.Since(start)
		if err != nil {
			return results, fmt.Errorf("run %d failed: %w", i+1, err)
		}

		results = append(results, RunResult{
			Index:     i,
			Cold:      i == 0,
			Duration:  dur,
			Syllables: n,
			Rate:      Throughput(n, dur),
		})
	}
	return results, nil
}

// CheckMeanThreshold returns an error if mean exceeds limit. A zero limit
// disables the gate.
func CheckMeanThreshold(mean, limit time.Duration) error {
	if limit <= 0 {
		return nil
	}
	if mean > limit {
		return fmt.Errorf("mean run time %v exceeds threshold %v", mean, limit)
	}
	return nil
}

func micros(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e3
}

// FormatTable writes a human-readable table of bench results to w.
func FormatTable(runs []RunResult, stats Stats, w io.Writer) {
	sb := &strings.Builder{}

	fmt.Fprintf(sb, "%-5s  %-5s  %12s  %10s  %14s\n", "Run", "Cold", "µs", "Syllables", "Syllables/s")
	fmt.Fprintln(sb, strings.Repeat("-", 54))

	for _, r := range runs {
		cold := ""
		if r.Cold {
			cold = "yes"
		}
		fmt.Fprintf(sb, "%-5d  %-5s  %12.1f  %10d  %14.0f\n",
			r.Index+1, cold, micros(r.Duration), r.Syllables, r.Rate)
	}

	fmt.Fprintln(sb, strings.Repeat("-", 54))
	for _, row := range []struct {
		label string
		d     time.Duration
	}{
		{"min", stats.Min},
		{"median", stats.Median},
		{"mean", stats.Mean},
		{"max", stats.Max},
	} {
		fmt.Fprintf(sb, "%-5s  %-5s  %12.1f  (%s)\n", "", "", micros(row.d), row.label)
	}

	fmt.Fprint(w, sb.String())
}

type jsonReport struct {
	Runs  []jsonRun `json:"runs"`
	Stats jsonStats `json:"stats"`
}

type jsonRun struct {
	Index      int     `json:"index"`
	Cold       bool    `json:"cold"`
	DurationUS float64 `json:"duration_us"`
	Syllables  int     `json:"syllables"`
	Rate       float64 `json:"syllables_per_sec"`
}

type jsonStats struct {
	MinUS    float64 `json:"min_us"`
	MedianUS float64 `json:"median_us"`
	MeanUS   float64 `json:"mean_us"`
	MaxUS    float64 `json:"max_us"`
}

// FormatJSON writes a JSON report of bench results to w.
func FormatJSON(runs []RunResult, stats Stats, w io.Writer) error {
	jr := jsonReport{
		Runs: make([]jsonRun, len(runs)),
		Stats: jsonStats{
			MinUS:    micros(stats.Min),
			MedianUS: micros(stats.Median),
			MeanUS:   micros(stats.Mean),
			MaxUS:    micros(stats.Max),
		},
	}
	for i, r := range runs {
		jr.Runs[i] = jsonRun{
			Index:      r.Index,
			Cold:       r.Cold,
			DurationUS: micros(r.Duration),
			Syllables:  r.Syllables,
			Rate:       r.Rate,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jr)
}
