// Package spline fits smooth curves through sequences of 2D points.
//
// Given an ordered list of knots, [Fit] computes a piecewise cubic Bézier curve
// that passes through every knot, with continuous first and second
// derivatives where segments meet. Curves can be open ([Open]), starting at
// the first and ending at the last knot, or closed ([Cyclic]), in which case
// the last knot connects back to the first and the curve is smooth there as
// well.
//
// # Curves
//
// The result of fitting is a [Curve], a flat list of points laid out as
// anchor, control point, control point, anchor, and so on. Each run of four
// points starting at an anchor is one cubic Bézier segment; see
// [Curve.Segments]. Renderers that don't want to deal with that layout can
// use [Curve.BezPath] to get drawing commands, or [Path] to go straight from
// knots and a [LineStyle] to a [BezPath]. Curves and paths can be turned into
// SVG path data with [Curve.SVG] and [BezPath.SVG].
//
// # Algorithm
//
// Each coordinate axis is solved on its own. For open curves, the first
// control point of every segment is the solution of a tridiagonal linear
// system that encodes C¹ and C² continuity at the inner knots and zero
// curvature at both ends. It is solved in linear time with the Thomas
// algorithm. The second control points follow from the first ones.
//
// Closed curves lead to a periodic system: the first and last rows are
// coupled through two corner entries. Its coefficients are weighted by the
// lengths of the chords between knots ([ChordWeight]), which keeps control
// arms short next to short chords. The periodic system is solved with an
// extended Thomas algorithm that tracks the fill-in caused by the corner
// entries, again in linear time.
//
// Fitting is a pure function of its inputs. It holds no state, never modifies
// its arguments, and is safe for concurrent use.
//
// # Literature
//
//   - [Smooth Bézier Spline Through Prescribed Points] by Lubos Brieda
//   - [Circular spline] by Jaco Stuifbergen
//
// [Smooth Bézier Spline Through Prescribed Points]: https://www.particleincell.com/2012/bezier-splines/
// [Circular spline]: http://www.jacos.nl/jacos_html/spline/circular/index.html
package spline
