package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"marginlab/boundary"
	"marginlab/logreg"
)

func testPanel(distance float64) Panel {
	model := logreg.Model{Intercept: -2, Coef: [2]float64{1, 1}}
	X := mat.NewDense(6, 2, []float64{
		0.2, 0.4,
		0.5, 0.1,
		0.3, 0.8,
		1.9, 1.7,
		2.2, 2.1,
		1.6, 2.4,
	})
	y := []int{0, 0, 0, 1, 1, 1}
	grid := boundary.NewGrid(-1, 3.5, -1, 3.5, 60, model.PredictProba)
	return Panel{
		Distance: distance,
		X:        X,
		Y:        y,
		Beta0:    model.Intercept,
		Beta1:    model.Coef[0],
		Beta2:    model.Coef[1],
		Line:     boundary.LineFrom(model.Intercept, model.Coef[0], model.Coef[1]),
		Grid:     grid,
		Margin:   boundary.MarginWidth(grid, 0.7),
	}
}

func requireNonEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestRenderPanels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "dataset.png")
	err := RenderPanels(path, []Panel{testPanel(0.5), testPanel(1.0), testPanel(1.5)})
	require.NoError(t, err)
	requireNonEmptyFile(t, path)
}

func TestRenderPanelsEmpty(t *testing.T) {
	err := RenderPanels(filepath.Join(t.TempDir(), "dataset.png"), nil)
	assert.Error(t, err)
}

func TestRenderSummary(t *testing.T) {
	s := Summary{
		Distances:      []float64{0.5, 1.0, 1.5},
		Beta0:          []float64{-1, -2, -3},
		Beta1:          []float64{1, 2, 3},
		Beta2:          []float64{1, 2, 3},
		Slope:          []float64{-1, -1, -1},
		InterceptRatio: []float64{1, 1, 1},
		LogLoss:        []float64{0.4, 0.2, 0.1},
		MarginWidth:    []float64{0.5, 1.0, 1.4},
	}
	path := filepath.Join(t.TempDir(), "summary.png")
	require.NoError(t, RenderSummary(path, s))
	requireNonEmptyFile(t, path)
}

func TestRenderSummaryEmpty(t *testing.T) {
	assert.Error(t, RenderSummary(filepath.Join(t.TempDir(), "summary.png"), Summary{}))
}
