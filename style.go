package spline

import "fmt"

// LineStyle selects how a sequence of points is connected when drawn.
type LineStyle int

const (
	// Plot draws the points as dots and doesn't connect them.
	Plot LineStyle = iota + 1
	// Line connects consecutive points with straight lines.
	Line
	// Bezier interprets the points as a [Curve], an already computed
	// sequence of anchors and control points.
	Bezier
	// Spline fits a smooth curve through the points with [Fit].
	Spline
)

var lineStyleNames = [...]string{
	Plot:   "plot",
	Line:   "line",
	Bezier: "bezier",
	Spline: "spline",
}

func (s LineStyle) String() string {
	if s >= Plot && s <= Spline {
		return lineStyleNames[s]
	}
	return fmt.Sprintf("LineStyle(%d)", int(s))
}

// ParseLineStyle returns the line style named s, one of "plot", "line",
// "bezier", or "spline".
func ParseLineStyle(s string) (LineStyle, error) {
	for style := Plot; style <= Spline; style++ {
		if lineStyleNames[style] == s {
			return style, nil
		}
	}
	return 0, fmt.Errorf("spline: unknown line style %q", s)
}

// Path returns the drawing commands that connect points in the given style.
// If closed is set, the last point is connected back to the first one, and
// [Spline] fits a [Cyclic] instead of an [Open] spline.
//
// [Plot] and inputs that cannot be connected result in a nil path. [Spline]
// falls back to [Line] for fewer than [MinKnots] points.
//
// Path panics if style is not a valid line style.
func Path(points []Point, style LineStyle, closed bool) BezPath {
	switch style {
	case Plot:
		return nil
	case Line:
		return polyline(points, closed)
	case Bezier:
		if len(points) < 2 {
			return nil
		}
		return Curve(points).BezPath()
	case Spline:
		if len(points) < MinKnots {
			return polyline(points, closed)
		}
		mode := Open
		if closed {
			mode = Cyclic
		}
		p := Fit(points, mode).BezPath()
		if closed {
			p.ClosePath()
		}
		return p
	default:
		panic(fmt.Sprintf("spline: invalid line style %s", style))
	}
}

func polyline(points []Point, closed bool) BezPath {
	if len(points) < 2 {
		return nil
	}
	p := make(BezPath, 0, len(points)+1)
	p.MoveTo(points[0])
	for _, pt := range points[1:] {
		p.LineTo(pt)
	}
	if closed {
		p.ClosePath()
	}
	return p
}
