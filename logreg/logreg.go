// Package logreg fits a binary logistic-regression classifier on two
// features by maximum likelihood.
package logreg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
)

// ridge is a tiny L2 term on the weights (not the intercept) that keeps the
// objective strictly convex when the clusters become linearly separable.
const ridge = 1e-4

// Model is a fitted logistic-regression classifier. The decision boundary
// is the line Intercept + Coef[0]*x1 + Coef[1]*x2 = 0.
type Model struct {
	Intercept float64
	Coef      [2]float64
}

// Sigmoid is the logistic function 1/(1+e^-z).
func Sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}

// softplus computes log(1+e^z) without overflowing for large |z|.
func softplus(z float64) float64 {
	if z > 0 {
		return z + math.Log1p(math.Exp(-z))
	}
	return math.Log1p(math.Exp(z))
}

// Fit estimates the intercept and coefficients by minimizing the mean
// negative log-likelihood with BFGS. X must have one row per sample and
// exactly two columns, with y the parallel 0/1 labels. Optimizer failures
// are returned as-is.
func (m *Model) Fit(X *mat.Dense, y []int) error {
	rows, cols := X.Dims()
	if cols != 2 {
		return fmt.Errorf("expected 2 feature columns, got %d", cols)
	}
	if rows != len(y) {
		return fmt.Errorf("sample/label length mismatch: %d rows vs %d labels", rows, len(y))
	}
	if rows == 0 {
		return fmt.Errorf("empty sample set")
	}

	problem := optimize.Problem{
		Func: func(theta []float64) float64 {
			return nll(X, y, theta)
		},
		Grad: func(grad, theta []float64) {
			nllGrad(grad, X, y, theta)
		},
	}

	result, err := optimize.Minimize(problem, []float64{0, 0, 0}, nil, &optimize.BFGS{})
	if err != nil {
		return fmt.Errorf("logistic regression fit: %w", err)
	}
	if err := result.Status.Err(); err != nil {
		return fmt.Errorf("logistic regression fit: %w", err)
	}

	m.Intercept = result.X[0]
	m.Coef[0] = result.X[1]
	m.Coef[1] = result.X[2]
	return nil
}

// PredictProba returns the class-1 probability at (x1, x2).
func (m *Model) PredictProba(x1, x2 float64) float64 {
	return Sigmoid(m.Intercept + m.Coef[0]*x1 + m.Coef[1]*x2)
}

// ProbaBatch returns the class-1 probability for every row of X.
func (m *Model) ProbaBatch(X *mat.Dense) []float64 {
	rows, _ := X.Dims()
	probs := make([]float64, rows)
	for i := 0; i < rows; i++ {
		probs[i] = m.PredictProba(X.At(i, 0), X.At(i, 1))
	}
	return probs
}

// nll is the mean negative log-likelihood plus the ridge term,
// parameterized as theta = [intercept, w1, w2].
func nll(X *mat.Dense, y []int, theta []float64) float64 {
	rows, _ := X.Dims()
	sum := 0.0
	for i := 0; i < rows; i++ {
		z := theta[0] + theta[1]*X.At(i, 0) + theta[2]*X.At(i, 1)
		sum += softplus(z) - float64(y[i])*z
	}
	return sum/float64(rows) + 0.5*ridge*(theta[1]*theta[1]+theta[2]*theta[2])
}

func nllGrad(grad []float64, X *mat.Dense, y []int, theta []float64) {
	rows, _ := X.Dims()
	grad[0], grad[1], grad[2] = 0, 0, 0
	for i := 0; i < rows; i++ {
		x1, x2 := X.At(i, 0), X.At(i, 1)
		z := theta[0] + theta[1]*x1 + theta[2]*x2
		r := Sigmoid(z) - float64(y[i])
		grad[0] += r
		grad[1] += r * x1
		grad[2] += r * x2
	}
	m := float64(rows)
	grad[0] /= m
	grad[1] = grad[1]/m + ridge*theta[1]
	grad[2] = grad[2]/m + ridge*theta[2]
}
