package spline

import (
	"iter"
	"slices"
)

// Curve is a piecewise cubic Bézier curve stored as a flat list of points,
// [A₀, C₀, D₀, A₁, C₁, D₁, A₂, …], where the Aᵢ are on-curve anchors and Cᵢ
// and Dᵢ the two control points of the segment from Aᵢ to Aᵢ₊₁. Every run of
// four points starting at an anchor describes one segment, with consecutive
// segments sharing their anchors.
//
// Curves returned by [Fit] for fewer than [MinKnots] knots are the knots
// themselves and contain no complete segment.
type Curve []Point

// NumSegments returns the number of complete cubic segments in the curve.
func (c Curve) NumSegments() int {
	if len(c) < 4 {
		return 0
	}
	return (len(c) - 1) / 3
}

// Segment returns the i-th cubic segment. It returns false if the curve has no
// such segment.
func (c Curve) Segment(i int) (CubicBez, bool) {
	if i < 0 || i >= c.NumSegments() {
		return CubicBez{}, false
	}
	j := 3 * i
	return CubicBez{c[j], c[j+1], c[j+2], c[j+3]}, true
}

// Segments returns an iterator over the curve's complete cubic segments.
// Trailing points that do not form a complete segment are skipped.
func (c Curve) Segments() iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		for i := 0; i+3 < len(c); i += 3 {
			if !yield(CubicBez{c[i], c[i+1], c[i+2], c[i+3]}) {
				return
			}
		}
	}
}

// Anchors returns an iterator over the on-curve points, that is every third
// point starting with the first one.
func (c Curve) Anchors() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for i := 0; i < len(c); i += 3 {
			if !yield(c[i]) {
				return
			}
		}
	}
}

// BezPath converts the curve to a path of drawing commands. Complete runs of
// four points become cubic Béziers. A trailing run of three points becomes a
// quadratic Bézier and a trailing run of two points a line, so that the knots
// passed through by [Fit] for short inputs still render as a line.
//
// An empty curve results in a nil path.
func (c Curve) BezPath() BezPath {
	return BezPath(slices.Collect(c.elements()))
}

// elements yields the drawing commands of the curve, as described by
// [Curve.BezPath].
func (c Curve) elements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if len(c) == 0 {
			return
		}
		if !yield(MoveTo(c[0])) {
			return
		}
		for i := 0; ; i += 3 {
			switch left := len(c) - i; {
			case left >= 4:
				if !yield(CubicTo(c[i+1], c[i+2], c[i+3])) {
					return
				}
			case left == 3:
				yield(QuadTo(c[i+1], c[i+2]))
				return
			case left == 2:
				yield(LineTo(c[i+1]))
				return
			default:
				return
			}
		}
	}
}

// IsInf reports whether any point of the curve has an infinite coordinate.
func (c Curve) IsInf() bool {
	for _, pt := range c {
		if pt.IsInf() {
			return true
		}
	}
	return false
}

// IsNaN reports whether any point of the curve has a NaN coordinate.
func (c Curve) IsNaN() bool {
	for _, pt := range c {
		if pt.IsNaN() {
			return true
		}
	}
	return false
}
