// Package dataset generates the synthetic two-cluster benchmark data used
// by the shift-distance experiments.
package dataset

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

// seed is re-applied on every call so that each shift distance reuses the
// exact same underlying noise draw. Trends across distances then reflect
// only the deterministic shift, not fresh sampling.
const seed = 0

// covRatio sets the off-diagonal covariance relative to the cluster
// standard deviation, giving the clusters their ellipsoidal tilt.
const covRatio = 0.8

// GenerateClusters samples two correlated 2-D Gaussian clusters of n points
// each, both centered at (1, 1), then translates the class-1 cluster by
// +distance along both axes. The returned matrix holds the class-0 rows
// first, with y as the parallel 0/1 label slice.
func GenerateClusters(distance float64, n int, std float64) (*mat.Dense, []int, error) {
	if distance < 0 {
		return nil, nil, fmt.Errorf("shift distance must be non-negative, got %v", distance)
	}
	if n <= 0 {
		return nil, nil, fmt.Errorf("samples per cluster must be positive, got %d", n)
	}
	if std <= 0 {
		return nil, nil, fmt.Errorf("cluster std must be positive, got %v", std)
	}

	mean := []float64{1, 1}
	cov := mat.NewSymDense(2, []float64{
		std, covRatio * std,
		covRatio * std, std,
	})

	normal, ok := distmv.NewNormal(mean, cov, rand.NewSource(seed))
	if !ok {
		return nil, nil, fmt.Errorf("covariance matrix is not positive definite (std=%v)", std)
	}

	X := mat.NewDense(2*n, 2, nil)
	y := make([]int, 2*n)

	// Class 0 stays at the shared center.
	for i := 0; i < n; i++ {
		normal.Rand(X.RawRowView(i))
	}
	// Class 1 is drawn from the same distribution and shifted apart.
	for i := n; i < 2*n; i++ {
		row := X.RawRowView(i)
		normal.Rand(row)
		row[0] += distance
		row[1] += distance
		y[i] = 1
	}
	return X, y, nil
}

// Bounds returns the min/max of each feature column padded by pad on every
// side, suitable for building an evaluation grid around the data.
func Bounds(X *mat.Dense, pad float64) (xMin, xMax, yMin, yMax float64) {
	rows, _ := X.Dims()
	xMin, xMax = X.At(0, 0), X.At(0, 0)
	yMin, yMax = X.At(0, 1), X.At(0, 1)
	for i := 1; i < rows; i++ {
		x, y := X.At(i, 0), X.At(i, 1)
		if x < xMin {
			xMin = x
		}
		if x > xMax {
			xMax = x
		}
		if y < yMin {
			yMin = y
		}
		if y > yMax {
			yMax = y
		}
	}
	return xMin - pad, xMax + pad, yMin - pad, yMax + pad
}
