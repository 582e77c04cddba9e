package boundary

import "math"

// Point is a 2-D coordinate in data space.
type Point struct {
	X, Y float64
}

// Path is an ordered polyline of contour vertices.
type Path []Point

type segment struct {
	a, b Point
}

// Contours extracts the iso-lines of the grid's field at the given level
// using marching squares, with crossing points linearly interpolated along
// cell edges. Segments sharing endpoints are chained into polylines.
func (g *Grid) Contours(level float64) []Path {
	var segs []segment
	for j := 0; j < len(g.Ys)-1; j++ {
		for i := 0; i < len(g.Xs)-1; i++ {
			segs = append(segs, g.cellSegments(i, j, level)...)
		}
	}
	return chain(segs)
}

// Vertices flattens contour paths into a single vertex set.
func Vertices(paths []Path) []Point {
	var pts []Point
	for _, p := range paths {
		pts = append(pts, p...)
	}
	return pts
}

// MinDistance returns the smallest pairwise Euclidean distance between the
// two vertex sets, or +Inf when either set is empty.
func MinDistance(a, b []Point) float64 {
	min := math.Inf(1)
	for _, p := range a {
		for _, q := range b {
			dx, dy := p.X-q.X, p.Y-q.Y
			if d := dx*dx + dy*dy; d < min {
				min = d
			}
		}
	}
	return math.Sqrt(min)
}

// MarginWidth approximates the width of the confidence band around the
// decision boundary as the minimum distance between the iso-contours at
// level and 1-level. Degenerate contours yield +Inf.
func MarginWidth(g *Grid, level float64) float64 {
	upper := Vertices(g.Contours(level))
	lower := Vertices(g.Contours(1 - level))
	return MinDistance(upper, lower)
}

// cellSegments emits the contour segments crossing the grid cell whose
// lower-left node is (i, j). Corner bits follow the usual marching-squares
// numbering; the two saddle cases are disambiguated with the cell-center
// average.
func (g *Grid) cellSegments(i, j int, level float64) []segment {
	v00 := g.Z.At(j, i)     // lower left
	v10 := g.Z.At(j, i+1)   // lower right
	v11 := g.Z.At(j+1, i+1) // upper right
	v01 := g.Z.At(j+1, i)   // upper left

	idx := 0
	if v00 >= level {
		idx |= 1
	}
	if v10 >= level {
		idx |= 2
	}
	if v11 >= level {
		idx |= 4
	}
	if v01 >= level {
		idx |= 8
	}
	if idx == 0 || idx == 15 {
		return nil
	}

	x0, x1 := g.Xs[i], g.Xs[i+1]
	y0, y1 := g.Ys[j], g.Ys[j+1]

	// Crossing points are interpolated from the lower-indexed node of each
	// edge, so adjacent cells produce bit-identical endpoints.
	bottom := Point{X: lerp(x0, x1, v00, v10, level), Y: y0}
	top := Point{X: lerp(x0, x1, v01, v11, level), Y: y1}
	left := Point{X: x0, Y: lerp(y0, y1, v00, v01, level)}
	right := Point{X: x1, Y: lerp(y0, y1, v10, v11, level)}

	switch idx {
	case 1, 14:
		return []segment{{left, bottom}}
	case 2, 13:
		return []segment{{bottom, right}}
	case 3, 12:
		return []segment{{left, right}}
	case 4, 11:
		return []segment{{right, top}}
	case 6, 9:
		return []segment{{bottom, top}}
	case 7, 8:
		return []segment{{left, top}}
	case 5:
		if (v00+v10+v11+v01)/4 >= level {
			return []segment{{left, top}, {bottom, right}}
		}
		return []segment{{left, bottom}, {right, top}}
	default: // 10
		if (v00+v10+v11+v01)/4 >= level {
			return []segment{{left, bottom}, {right, top}}
		}
		return []segment{{left, top}, {bottom, right}}
	}
}

// lerp locates the level crossing between two nodes at coordinates c0, c1
// with field values z0, z1.
func lerp(c0, c1, z0, z1, level float64) float64 {
	if z1 == z0 {
		return (c0 + c1) / 2
	}
	t := (level - z0) / (z1 - z0)
	return c0 + t*(c1-c0)
}

// chain joins segments that share endpoints into ordered paths. Endpoint
// matching is exact, which holds because shared edges interpolate the
// crossing identically in both adjacent cells.
func chain(segs []segment) []Path {
	adj := make(map[Point][]int, 2*len(segs))
	for k, s := range segs {
		adj[s.a] = append(adj[s.a], k)
		adj[s.b] = append(adj[s.b], k)
	}

	used := make([]bool, len(segs))
	var paths []Path
	for k := range segs {
		if used[k] {
			continue
		}
		used[k] = true
		path := Path{segs[k].a, segs[k].b}

		// Extend forward from the tail, then backward from the head.
		for {
			next, ok := takeNext(adj, used, segs, path[len(path)-1])
			if !ok {
				break
			}
			path = append(path, next)
		}
		for {
			prev, ok := takeNext(adj, used, segs, path[0])
			if !ok {
				break
			}
			path = append(Path{prev}, path...)
		}
		paths = append(paths, path)
	}
	return paths
}

// takeNext consumes an unused segment incident to p and returns its far
// endpoint.
func takeNext(adj map[Point][]int, used []bool, segs []segment, p Point) (Point, bool) {
	for _, k := range adj[p] {
		if used[k] {
			continue
		}
		used[k] = true
		if segs[k].a == p {
			return segs[k].b, true
		}
		return segs[k].a, true
	}
	return Point{}, false
}
