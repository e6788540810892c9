// Package geom provides the 2D geometry used by the sketch demos: points in
// normalized device coordinates, circle sampling, circle/segment intersection
// and the mapping between terminal cells and NDC.
// Vector arithmetic comes from gg.Point, so the export renderer draws the same
// values without conversion.
package geom

import (
	"math"

	"github.com/gogpu/gg"
)

// Point is a position in normalized device coordinates.
// Both axes nominally range over [-1, 1]; y grows upward.
type Point = gg.Point

// Pt is shorthand for Point{X: x, Y: y}.
var Pt = gg.Pt

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return a.Distance(b)
}

// ApproxEqual reports whether a and b are within tol on both axes.
func ApproxEqual(a, b Point, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}
