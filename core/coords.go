package core

import "math"

// Direction vectors in enumeration order: N, NE, E, SE, S, SW, W, NW.
// Neighbor enumeration follows this fixed order so that searches over
// the same grid are deterministic.
var DirVectors = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Distance returns the Euclidean distance between two grid points.
// Doubles as the per-step move cost (1 cardinal, √2 diagonal) and as
// the remaining-cost heuristic, which keeps the heuristic admissible
// and consistent for 8-way movement on a uniform grid.
func Distance(a, b Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// InBounds reports whether p lies within a w×h grid
func InBounds(p Point, w, h int) bool {
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}

// Neighbors returns the valid positions of the 3×3 block around p,
// in DirVectors order
func Neighbors(p Point, w, h int) []Point {
	out := make([]Point, 0, 8)
	for d := 0; d < len(DirVectors); d++ {
		n := Point{X: p.X + DirVectors[d][0], Y: p.Y + DirVectors[d][1]}
		if InBounds(n, w, h) {
			out = append(out, n)
		}
	}
	return out
}
