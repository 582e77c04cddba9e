// Package report renders the experiment figures: one panel per shift
// distance showing the data, decision boundary, and confidence contours,
// and a summary grid of every derived metric against shift distance.
package report

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/gonum/mat"

	"marginlab/boundary"
)

const (
	panelWidth  = 640
	panelHeight = 480
	panelCols   = 2
)

// contourLevels are the class-1 confidence levels drawn per panel; each is
// mirrored on the class-0 side at 1-level.
var contourLevels = []float64{0.7, 0.8, 0.9}

// contourAlphas fades the outermost band the most.
var contourAlphas = []uint8{70, 120, 170}

var (
	class0Color   = drawing.Color{B: 255, A: 255}
	class1Color   = drawing.Color{R: 255, A: 255}
	boundaryColor = drawing.Color{G: 160, A: 255}
)

// Panel bundles everything one per-distance subplot needs.
type Panel struct {
	Distance float64
	X        *mat.Dense
	Y        []int
	Beta0    float64
	Beta1    float64
	Beta2    float64
	Line     boundary.Line
	Grid     *boundary.Grid
	Margin   float64
}

// RenderPanels draws one chart per panel, composites them into a
// two-column grid, and writes the result as a PNG to path.
func RenderPanels(path string, panels []Panel) error {
	if len(panels) == 0 {
		return fmt.Errorf("no panels to render")
	}
	images := make([]image.Image, 0, len(panels))
	for i, p := range panels {
		img, err := renderPanel(p, i == 0)
		if err != nil {
			return fmt.Errorf("panel %d (distance %.2f): %w", i, p.Distance, err)
		}
		images = append(images, img)
	}
	return writeGrid(path, images, panelCols)
}

func renderPanel(p Panel, legend bool) (image.Image, error) {
	xMin, xMax := p.Grid.XRange()
	yMin, yMax := p.Grid.YRange()

	series := []chart.Series{
		scatterSeries("Class 0", p.X, p.Y, 0, class0Color),
		scatterSeries("Class 1", p.X, p.Y, 1, class1Color),
		boundarySeries(p.Line, xMin, xMax),
	}
	series = append(series, contourSeries(p.Grid)...)
	series = append(series, chart.AnnotationSeries{
		Annotations: []chart.Value2{
			{
				XValue: xMin + 0.1,
				YValue: yMax - 0.5,
				Label: fmt.Sprintf("%.2f + %.2f*x1 + %.2f*x2 = 0  |  x2 = %.2f*x1 + %.2f",
					p.Beta0, p.Beta1, p.Beta2, p.Line.Slope, p.Line.Intercept),
			},
			{
				XValue: xMin + 0.1,
				YValue: yMax - 1.2,
				Label:  fmt.Sprintf("Margin Width: %.2f", p.Margin),
			},
		},
	})

	ch := chart.Chart{
		Title:  fmt.Sprintf("Shift Distance = %.2f", p.Distance),
		Width:  panelWidth,
		Height: panelHeight,
		XAxis: chart.XAxis{
			Name:  "x1",
			Range: &chart.ContinuousRange{Min: xMin, Max: xMax},
		},
		YAxis: chart.YAxis{
			Name:  "x2",
			Range: &chart.ContinuousRange{Min: yMin, Max: yMax},
		},
		Series: series,
	}
	if legend {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}
	return renderToImage(ch)
}

// scatterSeries plots the points of one class as dots.
func scatterSeries(name string, X *mat.Dense, y []int, class int, col drawing.Color) chart.ContinuousSeries {
	var xs, ys []float64
	rows, _ := X.Dims()
	for i := 0; i < rows; i++ {
		if y[i] != class {
			continue
		}
		xs = append(xs, X.At(i, 0))
		ys = append(ys, X.At(i, 1))
	}
	return chart.ContinuousSeries{
		Name:    name,
		XValues: xs,
		YValues: ys,
		Style: chart.Style{
			StrokeWidth: chart.Disabled,
			DotWidth:    4,
			DotColor:    col,
		},
	}
}

// boundarySeries draws the decision boundary as a dashed line across the
// panel's horizontal extent.
func boundarySeries(l boundary.Line, xMin, xMax float64) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		Name:    "Decision Boundary",
		XValues: []float64{xMin, xMax},
		YValues: []float64{l.At(xMin), l.At(xMax)},
		Style: chart.Style{
			StrokeColor:     boundaryColor,
			StrokeDashArray: []float64{5.0, 5.0},
		},
	}
}

// contourSeries traces the iso-probability polylines for each confidence
// level on both class sides.
func contourSeries(g *boundary.Grid) []chart.Series {
	var series []chart.Series
	for li, level := range contourLevels {
		alpha := contourAlphas[li]
		red := drawing.Color{R: 255, A: alpha}
		blue := drawing.Color{B: 255, A: alpha}
		series = append(series, pathSeries(g.Contours(level), red)...)
		series = append(series, pathSeries(g.Contours(1-level), blue)...)
	}
	return series
}

func pathSeries(paths []boundary.Path, col drawing.Color) []chart.Series {
	var series []chart.Series
	for _, path := range paths {
		if len(path) < 2 {
			continue
		}
		xs := make([]float64, len(path))
		ys := make([]float64, len(path))
		for i, pt := range path {
			xs[i] = pt.X
			ys[i] = pt.Y
		}
		series = append(series, chart.ContinuousSeries{
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeColor: col, StrokeWidth: 1.5},
		})
	}
	return series
}

// Summary carries the accumulated metric sequences for the second figure.
// All slices are parallel to Distances.
type Summary struct {
	Distances      []float64
	Beta0          []float64
	Beta1          []float64
	Beta2          []float64
	Slope          []float64
	InterceptRatio []float64
	LogLoss        []float64
	MarginWidth    []float64
}

// RenderSummary draws the seven metric-vs-distance line charts and
// composites them into a three-column grid written as a PNG to path.
func RenderSummary(path string, s Summary) error {
	if len(s.Distances) == 0 {
		return fmt.Errorf("no records to summarize")
	}
	type plot struct {
		title  string
		yName  string
		values []float64
		yRange *chart.ContinuousRange
	}
	plots := []plot{
		{"Shift Distance vs Beta0", "Beta0", s.Beta0, nil},
		{"Shift Distance vs Beta1 (Coefficient for x1)", "Beta1", s.Beta1, nil},
		{"Shift Distance vs Beta2 (Coefficient for x2)", "Beta2", s.Beta2, nil},
		{"Shift Distance vs Beta1 / Beta2 (Slope)", "Beta1 / Beta2", s.Slope, &chart.ContinuousRange{Min: -4, Max: 2}},
		{"Shift Distance vs Beta0 / Beta2 (Intercept Ratio)", "Beta0 / Beta2", s.InterceptRatio, nil},
		{"Shift Distance vs Logistic Loss", "Logistic Loss", s.LogLoss, nil},
		{"Shift Distance vs Margin Width", "Margin Width", s.MarginWidth, nil},
	}

	images := make([]image.Image, 0, len(plots))
	for _, p := range plots {
		xs, ys := padSeries(s.Distances, p.values)
		ch := chart.Chart{
			Title:  p.title,
			Width:  600,
			Height: 400,
			XAxis:  chart.XAxis{Name: "Shift Distance"},
			YAxis:  chart.YAxis{Name: p.yName},
			Series: []chart.Series{
				chart.ContinuousSeries{
					XValues: xs,
					YValues: ys,
					Style:   chart.Style{StrokeColor: class0Color},
				},
			},
		}
		if p.yRange != nil {
			ch.YAxis.Range = p.yRange
		}
		img, err := renderToImage(ch)
		if err != nil {
			return fmt.Errorf("summary chart %q: %w", p.title, err)
		}
		images = append(images, img)
	}
	return writeGrid(path, images, 3)
}

// padSeries duplicates a lone data point with a tiny x offset; go-chart
// rejects series whose x range has zero width.
func padSeries(xs, ys []float64) ([]float64, []float64) {
	if len(xs) != 1 {
		return xs, ys
	}
	return []float64{xs[0], xs[0] + 1e-6}, []float64{ys[0], ys[0]}
}

func renderToImage(ch chart.Chart) (image.Image, error) {
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}
