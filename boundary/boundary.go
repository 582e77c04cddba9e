// Package boundary derives geometric and probabilistic metrics from a
// fitted linear decision boundary: the boundary line itself, the mean log
// loss, iso-probability contours on a dense grid, and the approximate
// margin width between the two confidence bands.
package boundary

import "math"

// Line is the decision boundary beta0 + beta1*x1 + beta2*x2 = 0 rewritten
// in slope-intercept form x2 = Slope*x1 + Intercept.
type Line struct {
	Slope     float64
	Intercept float64
}

// LineFrom converts boundary coefficients to slope-intercept form. A
// near-zero beta2 produces infinities; callers see those in the output
// rather than an error.
func LineFrom(beta0, beta1, beta2 float64) Line {
	return Line{
		Slope:     -beta1 / beta2,
		Intercept: -beta0 / beta2,
	}
}

// At evaluates the boundary line at x1.
func (l Line) At(x1 float64) float64 {
	return l.Slope*x1 + l.Intercept
}

// epsilon keeps the logarithm finite when a predicted probability
// saturates at 0 or 1.
const epsilon = 1e-15

// LogLoss is the mean negative log-likelihood of the 0/1 labels y under
// the class-1 probabilities probs. Probabilities are clamped to
// [epsilon, 1-epsilon], so the result is always non-negative and finite.
func LogLoss(probs []float64, y []int) float64 {
	sum := 0.0
	for i, p := range probs {
		p = math.Min(math.Max(p, epsilon), 1-epsilon)
		if y[i] == 1 {
			sum -= math.Log(p)
		} else {
			sum -= math.Log(1 - p)
		}
	}
	return sum / float64(len(probs))
}
