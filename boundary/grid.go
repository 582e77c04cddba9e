package boundary

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DefaultResolution matches the 200x200 evaluation grid used by the
// experiment plots.
const DefaultResolution = 200

// Grid holds a scalar field sampled on a regular rectangle. Z is stored
// row-major with one row per Y coordinate, so Z.At(j, i) is the value at
// (Xs[i], Ys[j]).
type Grid struct {
	Xs []float64
	Ys []float64
	Z  *mat.Dense
}

// NewGrid samples f on a res-by-res lattice spanning the given bounds.
func NewGrid(xMin, xMax, yMin, yMax float64, res int, f func(x, y float64) float64) *Grid {
	g := &Grid{
		Xs: floats.Span(make([]float64, res), xMin, xMax),
		Ys: floats.Span(make([]float64, res), yMin, yMax),
		Z:  mat.NewDense(res, res, nil),
	}
	for j, y := range g.Ys {
		for i, x := range g.Xs {
			g.Z.Set(j, i, f(x, y))
		}
	}
	return g
}

// XRange returns the grid's horizontal extent.
func (g *Grid) XRange() (min, max float64) {
	return g.Xs[0], g.Xs[len(g.Xs)-1]
}

// YRange returns the grid's vertical extent.
func (g *Grid) YRange() (min, max float64) {
	return g.Ys[0], g.Ys[len(g.Ys)-1]
}
