package experiment

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Verbose controls whether progress and timing statistics are printed.
// Set to false to suppress output.
var Verbose = true

// Output is the writer where progress and timing statistics are printed.
// Defaults to os.Stdout.
var Output io.Writer = os.Stdout

// TimingStats holds timing information for the pipeline phases
type TimingStats struct {
	TotalTime      time.Duration
	GenerationTime time.Duration
	FitTime        time.Duration
	MetricsTime    time.Duration
	RenderTime     time.Duration
}

// PrintTimingStats prints detailed timing statistics.
// Respects the Verbose flag - does nothing if Verbose is false.
func PrintTimingStats(stats *TimingStats, steps int) {
	if !Verbose {
		return
	}
	pct := func(d time.Duration) float64 {
		return float64(d) / float64(stats.TotalTime) * 100
	}
	fmt.Fprintln(Output, "\n=== TIMING STATISTICS ===")
	fmt.Fprintf(Output, "Total experiment time: %v\n", stats.TotalTime)
	fmt.Fprintf(Output, "Average time per distance: %v\n", stats.TotalTime/time.Duration(steps))
	fmt.Fprintf(Output, "Distances processed: %d\n", steps)
	fmt.Fprintln(Output, "\nBreakdown by phase:")
	fmt.Fprintf(Output, "  Data generation: %v (%.1f%%)\n", stats.GenerationTime, pct(stats.GenerationTime))
	fmt.Fprintf(Output, "  Model fitting: %v (%.1f%%)\n", stats.FitTime, pct(stats.FitTime))
	fmt.Fprintf(Output, "  Metric extraction: %v (%.1f%%)\n", stats.MetricsTime, pct(stats.MetricsTime))
	fmt.Fprintf(Output, "  Figure rendering: %v (%.1f%%)\n", stats.RenderTime, pct(stats.RenderTime))
}

// DurationUS converts any time.Duration to micro-seconds as float64
func DurationUS(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1_000.0
}
