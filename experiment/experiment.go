// Package experiment runs the shift-distance sweep: for each distance it
// generates the clusters, fits a logistic regression, extracts the
// boundary metrics, and finally renders the two result figures.
package experiment

import (
	"fmt"
	"path/filepath"
	"time"

	"gonum.org/v1/gonum/floats"

	"marginlab/boundary"
	"marginlab/dataset"
	"marginlab/logreg"
	"marginlab/report"
)

// marginLevel is the confidence level whose mirrored contours define the
// margin width.
const marginLevel = 0.7

// gridPad extends the evaluation grid this far past the data bounds.
const gridPad = 1.0

// File names of the two figures written into Config.OutDir.
const (
	PanelsFile  = "dataset.png"
	SummaryFile = "parameters_vs_shift_distance.png"
)

// Record holds the metrics derived for one shift distance.
type Record struct {
	Distance       float64
	Beta0          float64
	Beta1          float64
	Beta2          float64
	Slope          float64
	InterceptRatio float64
	LogLoss        float64
	MarginWidth    float64
}

// Run executes the sweep described by cfg and writes the panel and summary
// figures. It returns one record per shift distance, in increasing
// distance order.
func Run(cfg Config) ([]Record, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	distances := make([]float64, cfg.Steps)
	if cfg.Steps == 1 {
		distances[0] = cfg.Start
	} else {
		floats.Span(distances, cfg.Start, cfg.End)
	}

	stats := &TimingStats{}
	totalStart := time.Now()

	records := make([]Record, 0, cfg.Steps)
	panels := make([]report.Panel, 0, cfg.Steps)
	for i, distance := range distances {
		genStart := time.Now()
		X, y, err := dataset.GenerateClusters(distance, cfg.Samples, cfg.ClusterStd)
		if err != nil {
			return nil, fmt.Errorf("distance %.2f: %w", distance, err)
		}
		stats.GenerationTime += time.Since(genStart)

		fitStart := time.Now()
		var model logreg.Model
		if err := model.Fit(X, y); err != nil {
			return nil, fmt.Errorf("distance %.2f: %w", distance, err)
		}
		stats.FitTime += time.Since(fitStart)

		metricStart := time.Now()
		line := boundary.LineFrom(model.Intercept, model.Coef[0], model.Coef[1])
		loss := boundary.LogLoss(model.ProbaBatch(X), y)

		xMin, xMax, yMin, yMax := dataset.Bounds(X, gridPad)
		grid := boundary.NewGrid(xMin, xMax, yMin, yMax, boundary.DefaultResolution, model.PredictProba)
		margin := boundary.MarginWidth(grid, marginLevel)
		stats.MetricsTime += time.Since(metricStart)

		records = append(records, Record{
			Distance:       distance,
			Beta0:          model.Intercept,
			Beta1:          model.Coef[0],
			Beta2:          model.Coef[1],
			Slope:          line.Slope,
			InterceptRatio: line.Intercept,
			LogLoss:        loss,
			MarginWidth:    margin,
		})
		panels = append(panels, report.Panel{
			Distance: distance,
			X:        X,
			Y:        y,
			Beta0:    model.Intercept,
			Beta1:    model.Coef[0],
			Beta2:    model.Coef[1],
			Line:     line,
			Grid:     grid,
			Margin:   margin,
		})

		if Verbose {
			fmt.Fprintf(Output, "Distance %.2f (%d/%d) | loss=%.4f margin=%.3f\n",
				distance, i+1, cfg.Steps, loss, margin)
		}
	}

	renderStart := time.Now()
	if err := report.RenderPanels(filepath.Join(cfg.OutDir, PanelsFile), panels); err != nil {
		return nil, fmt.Errorf("render panels: %w", err)
	}
	if err := report.RenderSummary(filepath.Join(cfg.OutDir, SummaryFile), summarize(records)); err != nil {
		return nil, fmt.Errorf("render summary: %w", err)
	}
	stats.RenderTime = time.Since(renderStart)
	stats.TotalTime = time.Since(totalStart)

	PrintTimingStats(stats, cfg.Steps)
	return records, nil
}

// summarize transposes the records into the parallel metric sequences the
// summary figure plots.
func summarize(records []Record) report.Summary {
	s := report.Summary{}
	for _, r := range records {
		s.Distances = append(s.Distances, r.Distance)
		s.Beta0 = append(s.Beta0, r.Beta0)
		s.Beta1 = append(s.Beta1, r.Beta1)
		s.Beta2 = append(s.Beta2, r.Beta2)
		s.Slope = append(s.Slope, r.Slope)
		s.InterceptRatio = append(s.InterceptRatio, r.InterceptRatio)
		s.LogLoss = append(s.LogLoss, r.LogLoss)
		s.MarginWidth = append(s.MarginWidth, r.MarginWidth)
	}
	return s
}
