package spline

import (
	"fmt"
	"math"
)

// Point is a knot, control point or any other position in the plane. The
// engine never looks at the coordinate system; callers convert to and from
// device space themselves.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Sub computes pt−o.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Hypot(x, y)
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// xs returns the X coordinates of pts.
func xs(pts []Point) []float64 {
	out := make([]float64, len(pts))
	for i, pt := range pts {
		out[i] = pt.X
	}
	return out
}

// ys returns the Y coordinates of pts.
func ys(pts []Point) []float64 {
	out := make([]float64, len(pts))
	for i, pt := range pts {
		out[i] = pt.Y
	}
	return out
}
