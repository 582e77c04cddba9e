package boundary

import (
	"math"
	"testing"
)

func TestContoursVerticalLine(t *testing.T) {
	g := NewGrid(0, 1, 0, 1, 101, func(x, y float64) float64 { return x })

	paths := g.Contours(0.5)
	if len(paths) == 0 {
		t.Fatal("expected at least one contour path")
	}
	pts := Vertices(paths)
	var yMin, yMax float64 = math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		if math.Abs(p.X-0.5) > 1e-9 {
			t.Fatalf("contour vertex x=%v, want 0.5", p.X)
		}
		yMin = math.Min(yMin, p.Y)
		yMax = math.Max(yMax, p.Y)
	}
	// The iso-line should span the grid vertically.
	if yMin > 0.011 || yMax < 0.989 {
		t.Fatalf("contour spans [%v,%v], want about [0,1]", yMin, yMax)
	}
}

func TestContoursCircle(t *testing.T) {
	g := NewGrid(-2, 2, -2, 2, 201, func(x, y float64) float64 { return x*x + y*y })

	pts := Vertices(g.Contours(1))
	if len(pts) == 0 {
		t.Fatal("expected contour vertices on the unit circle")
	}
	for _, p := range pts {
		r := math.Hypot(p.X, p.Y)
		if math.Abs(r-1) > 0.05 {
			t.Fatalf("vertex (%v,%v) at radius %v, want ~1", p.X, p.Y, r)
		}
	}
}

func TestContoursChaining(t *testing.T) {
	// A smooth linear field produces one long polyline, not a pile of
	// two-point fragments.
	g := NewGrid(0, 1, 0, 1, 51, func(x, y float64) float64 { return y })
	paths := g.Contours(0.345)
	if len(paths) != 1 {
		t.Fatalf("expected a single chained path, got %d", len(paths))
	}
	if len(paths[0]) < 50 {
		t.Fatalf("chained path suspiciously short: %d vertices", len(paths[0]))
	}
}

func TestContoursOutsideRange(t *testing.T) {
	g := NewGrid(0, 1, 0, 1, 21, func(x, y float64) float64 { return x })
	if paths := g.Contours(2); len(paths) != 0 {
		t.Fatalf("expected no contours above the field range, got %d", len(paths))
	}
}

func TestMinDistance(t *testing.T) {
	a := []Point{{0, 0}, {1, 0}}
	b := []Point{{4, 0}, {1, 2}}
	if got := MinDistance(a, b); math.Abs(got-2) > 1e-12 {
		t.Fatalf("got %v, want 2", got)
	}
	if got := MinDistance(nil, b); !math.IsInf(got, 1) {
		t.Fatalf("empty set should give +Inf, got %v", got)
	}
}

func TestMarginWidthLinearField(t *testing.T) {
	// For the field f(x,y)=x, the 0.7 and 0.3 iso-lines are vertical lines
	// 0.4 apart.
	g := NewGrid(0, 1, 0, 1, 101, func(x, y float64) float64 { return x })
	got := MarginWidth(g, 0.7)
	if math.Abs(got-0.4) > 1e-6 {
		t.Fatalf("got margin %v, want 0.4", got)
	}
}

func TestMarginWidthDegenerate(t *testing.T) {
	g := NewGrid(0, 1, 0, 1, 21, func(x, y float64) float64 { return 0.5 })
	if got := MarginWidth(g, 0.7); !math.IsInf(got, 1) {
		t.Fatalf("flat field has no contours, want +Inf, got %v", got)
	}
}
