package spline

// The closed spline follows Lubos Brieda's and Jaco Stuifbergen's treatment of
// circular splines with chord weights:
// http://www.jacos.nl/jacos_html/spline/circular/index.html

// newCyclicSystem builds the periodic system for the first control points of
// a closed spline. knots holds the coordinates of the n knots on one axis and
// weights the n chord weights, weights[i] belonging to the chord from knot i
// to knot i+1 (mod n).
//
// Each row enforces that the first and second derivatives at knot i, scaled by
// the weights of the adjacent chords, agree.
//
// n must be at least 3 and all weights must be positive.
func newCyclicSystem(knots, weights []float64) axisSystem {
	n := len(knots)
	sys := newAxisSystem(n)
	for i := range n {
		wPrev := weights[wrap(i-1, n)]
		w := weights[i]
		frac := w / weights[wrap(i+1, n)]
		sum := wPrev + w

		sys.a[i] = w * w
		sys.b[i] = 2 * wPrev * sum
		sys.c[i] = wPrev * wPrev * frac
		sys.r[i] = sum*sum*knots[i] + wPrev*wPrev*(1+frac)*knots[wrap(i+1, n)]
	}
	return sys
}

// solveCyclic solves the periodic system, including the corner couplings a[0]
// (row 0, column n-1) and c[n-1] (row n-1, column 0). sys itself is left
// untouched.
//
// The elimination is the Thomas algorithm extended by two extra values: lc
// holds the entries of the last column, which fill in below the corner a[0]
// as rows are eliminated, and lr holds the single nonzero entry of the last
// row left of the band, which moves one column to the right with every step.
// n must be at least 3.
func (sys axisSystem) solveCyclic() []float64 {
	w := sys.clone()
	n := w.len()

	lc := make([]float64, n)
	lc[0] = w.a[0]
	lr := w.c[n-1]

	var i int
	for i = 0; i < n-3; i++ {
		// Eliminate row i+1's sub-diagonal entry.
		m := w.a[i+1] / w.b[i]
		w.b[i+1] -= m * w.c[i]
		w.r[i+1] -= m * w.r[i]
		lc[i+1] = -m * lc[i]

		// Eliminate the last row's entry in column i.
		m = lr / w.b[i]
		w.b[n-1] -= m * lc[i]
		lr = -m * w.c[i]
		w.r[n-1] -= m * w.r[i]
	}

	// i == n-3. Row n-2's last-column entry is its super-diagonal, and the
	// last row's running entry lands on its sub-diagonal.
	m := w.a[i+1] / w.b[i]
	w.b[i+1] -= m * w.c[i]
	w.r[i+1] -= m * w.r[i]
	w.c[i+1] -= m * lc[i]

	m = lr / w.b[i]
	w.b[n-1] -= m * lc[i]
	w.a[n-1] -= m * w.c[i]
	w.r[n-1] -= m * w.r[i]

	// i == n-2, an ordinary elimination step.
	i = n - 2
	m = w.a[i+1] / w.b[i]
	w.b[i+1] -= m * w.c[i]
	w.r[i+1] -= m * w.r[i]

	x := make([]float64, n)
	x[n-1] = w.r[n-1] / w.b[n-1]
	// Row n-2's coupling to x[n-1] has been folded into c[n-2].
	lc[n-2] = 0
	for i := n - 2; i >= 0; i-- {
		x[i] = (w.r[i] - w.c[i]*x[i+1] - lc[i]*x[n-1]) / w.b[i]
	}
	return x
}

// cyclicControls computes the control points of the closed spline through
// knots along a single axis. Segment i is given by knots[i], cp1[i], cp2[i],
// knots[i+1], with the last segment ending at knots[0]. Both slices have one
// entry per segment, n in total.
//
// len(weights) must equal len(knots), which must be at least 3.
func cyclicControls(knots, weights []float64) (cp1, cp2 []float64) {
	n := len(knots)
	cp1 = newCyclicSystem(knots, weights).solveCyclic()
	cp2 = make([]float64, n)
	for i := range n {
		next := wrap(i+1, n)
		frac := weights[i] / weights[next]
		cp2[i] = knots[next]*(1+frac) - cp1[next]*frac
	}
	return cp1, cp2
}
