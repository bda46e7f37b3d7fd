package spline

// axisSystem is a tridiagonal linear system over the control points of one
// coordinate axis. Row i reads
//
//	a[i]·x[i-1] + b[i]·x[i] + c[i]·x[i+1] = r[i]
//
// For open curves a[0] and c[n-1] are zero. For closed curves the indices wrap
// around, so that a[0] couples the first row to the last unknown and c[n-1]
// couples the last row to the first unknown.
type axisSystem struct {
	a []float64 // sub-diagonal
	b []float64 // main diagonal
	c []float64 // super-diagonal
	r []float64 // right-hand side
}

func newAxisSystem(n int) axisSystem {
	// One allocation for all four vectors.
	buf := make([]float64, 4*n)
	return axisSystem{
		a: buf[0*n : 1*n : 1*n],
		b: buf[1*n : 2*n : 2*n],
		c: buf[2*n : 3*n : 3*n],
		r: buf[3*n : 4*n : 4*n],
	}
}

// clone returns a deep copy of the system. The elimination passes modify
// their coefficients and always run on a clone.
func (sys axisSystem) clone() axisSystem {
	out := newAxisSystem(sys.len())
	copy(out.a, sys.a)
	copy(out.b, sys.b)
	copy(out.c, sys.c)
	copy(out.r, sys.r)
	return out
}

func (sys axisSystem) len() int { return len(sys.b) }

// newOpenSystem builds the system for the first control points of an open
// spline through knots, which holds the coordinates of the knots on a single
// axis. The first and last rows encode a natural boundary (zero second
// derivative at both ends), the inner rows C¹ and C² continuity at the inner
// knots.
//
// knots must hold at least three values.
func newOpenSystem(knots []float64) axisSystem {
	n := len(knots) - 1
	sys := newAxisSystem(n)

	sys.a[0] = 0
	sys.b[0] = 2
	sys.c[0] = 1
	sys.r[0] = knots[0] + 2*knots[1]

	for i := 1; i < n-1; i++ {
		sys.a[i] = 1
		sys.b[i] = 4
		sys.c[i] = 1
		sys.r[i] = 4*knots[i] + 2*knots[i+1]
	}

	sys.a[n-1] = 2
	sys.b[n-1] = 7
	sys.c[n-1] = 0
	sys.r[n-1] = 8*knots[n-1] + knots[n]

	return sys
}

// solve solves the system with the Thomas algorithm and returns the
// unknowns. The corner couplings a[0] and c[n-1] are ignored. sys itself is
// left untouched.
//
// The algorithm is stable for diagonally dominant systems, which includes
// every system built by newOpenSystem.
func (sys axisSystem) solve() []float64 {
	w := sys.clone()
	n := w.len()

	for i := 1; i < n; i++ {
		m := w.a[i] / w.b[i-1]
		w.b[i] -= m * w.c[i-1]
		w.r[i] -= m * w.r[i-1]
	}

	x := make([]float64, n)
	x[n-1] = w.r[n-1] / w.b[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = (w.r[i] - w.c[i]*x[i+1]) / w.b[i]
	}
	return x
}

// openControls computes the control points of the open spline through knots
// along a single axis. The cubic Bézier segment i is given by knots[i],
// cp1[i], cp2[i], knots[i+1]. Both slices have one entry per segment.
//
// knots must hold at least three values.
func openControls(knots []float64) (cp1, cp2 []float64) {
	n := len(knots) - 1
	cp1 = newOpenSystem(knots).solve()
	cp2 = make([]float64, n)
	for i := range n - 1 {
		// C¹ continuity at knots[i+1].
		cp2[i] = 2*knots[i+1] - cp1[i+1]
	}
	// Zero second derivative at the end of the curve.
	cp2[n-1] = 0.5 * (knots[n] + cp1[n-1])
	return cp1, cp2
}
