package spline

import "fmt"

// Mode selects whether a spline is open or closed.
type Mode int

const (
	// Open splines start at the first knot and end at the last one. Both
	// ends have zero curvature.
	Open Mode = iota + 1
	// Cyclic splines form a closed loop, connecting the last knot back to
	// the first one. The curve is smooth everywhere, including at the first
	// knot.
	Cyclic
)

func (m Mode) String() string {
	switch m {
	case Open:
		return "Open"
	case Cyclic:
		return "Cyclic"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ControlPair holds the two off-curve control points of one cubic Bézier
// segment of a fitted spline.
type ControlPair struct {
	P1 Point
	P2 Point
}

// MinKnots is the minimum number of knots that [Fit] fits a spline through.
const MinKnots = 3

// Fit computes a smooth curve through all points, made of cubic Bézier
// segments that join with continuous first and second derivatives. See [Curve]
// for the layout of the result.
//
// For open curves, the result has 3·(n−1)+1 points. For cyclic curves it has
// 3·n+1 points, and the final segment ends at points[0].
//
// If there are fewer than [MinKnots] points, no fitting takes place and points
// is returned as is, regardless of mode. Callers usually fall back to drawing
// lines or dots in that case.
//
// Fit does not modify points and allocates a new curve on every call. All
// coordinates must be finite; NaNs and infinities propagate into the result
// and can be detected with [Curve.IsNaN] and [Curve.IsInf].
//
// Given enough points, Fit panics if mode is neither [Open] nor [Cyclic].
func Fit(points []Point, mode Mode) Curve {
	if len(points) < MinKnots {
		return Curve(points)
	}

	ctrls := FitControls(points, mode)
	out := make(Curve, 0, 3*len(ctrls)+1)
	out = append(out, points[0])
	for i, ctrl := range ctrls {
		out = append(out, ctrl.P1, ctrl.P2, points[wrap(i+1, len(points))])
	}
	return out
}

// FitControls computes the control points of the spline that [Fit] would
// return. Element i holds the control points of the segment that starts at
// points[i]. Open splines have len(points)−1 segments, cyclic splines
// len(points).
//
// FitControls returns nil if there are fewer than [MinKnots] points, and
// panics if mode is neither [Open] nor [Cyclic].
func FitControls(points []Point, mode Mode) []ControlPair {
	if len(points) < MinKnots {
		return nil
	}

	kx, ky := xs(points), ys(points)
	var x1, x2, y1, y2 []float64
	switch mode {
	case Open:
		x1, x2 = openControls(kx)
		y1, y2 = openControls(ky)
	case Cyclic:
		weights := chordWeights(points)
		x1, x2 = cyclicControls(kx, weights)
		y1, y2 = cyclicControls(ky, weights)
	default:
		panic(fmt.Sprintf("spline: invalid mode %s", mode))
	}

	out := make([]ControlPair, len(x1))
	for i := range out {
		out[i] = ControlPair{
			P1: Pt(x1[i], y1[i]),
			P2: Pt(x2[i], y2[i]),
		}
	}
	return out
}
