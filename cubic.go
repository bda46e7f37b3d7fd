package spline

// CubicBez is a single cubic Bézier segment from P0 to P3, with control points
// P1 and P2.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// Eval evaluates the segment at parameter t ∈ [0, 1].
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Deriv returns the first derivative with respect to t at parameter t.
func (c CubicBez) Deriv(t float64) Vec2 {
	mt := 1.0 - t
	d0 := c.P1.Sub(c.P0).Mul(3 * mt * mt)
	d1 := c.P2.Sub(c.P1).Mul(6 * mt * t)
	d2 := c.P3.Sub(c.P2).Mul(3 * t * t)
	return d0.Add(d1).Add(d2)
}

// Deriv2 returns the second derivative with respect to t at parameter t.
func (c CubicBez) Deriv2(t float64) Vec2 {
	// 6(1-t)(P2 - 2P1 + P0) + 6t(P3 - 2P2 + P1)
	a := c.P2.Sub(c.P1).Sub(c.P1.Sub(c.P0))
	b := c.P3.Sub(c.P2).Sub(c.P2.Sub(c.P1))
	return a.Mul(6 * (1 - t)).Add(b.Mul(6 * t))
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}
