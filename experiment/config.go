package experiment

import "fmt"

// Config holds experiment configuration
type Config struct {
	Start      float64 // first shift distance
	End        float64 // last shift distance
	Steps      int     // number of evenly spaced distances
	Samples    int     // samples per cluster
	ClusterStd float64 // cluster standard deviation
	OutDir     string  // directory receiving the two figures
}

// DefaultConfig returns the parameters the original experiment was run
// with.
func DefaultConfig() Config {
	return Config{
		Start:      0.25,
		End:        2.0,
		Steps:      8,
		Samples:    100,
		ClusterStd: 0.5,
		OutDir:     "results",
	}
}

// Validate checks experiment configuration
func (c Config) Validate() error {
	if c.Start < 0 {
		return fmt.Errorf("start distance must be non-negative")
	}
	if c.End < c.Start {
		return fmt.Errorf("end distance must not be smaller than start distance")
	}
	if c.Steps < 1 {
		return fmt.Errorf("step count must be at least 1")
	}
	if c.Samples <= 0 {
		return fmt.Errorf("samples per cluster must be positive")
	}
	if c.ClusterStd <= 0 {
		return fmt.Errorf("cluster std must be positive")
	}
	if c.OutDir == "" {
		return fmt.Errorf("output directory must not be empty")
	}
	return nil
}
