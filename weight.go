package spline

// MinChordWeight is the smallest weight [ChordWeight] reports. The cyclic
// solver divides by ratios of neighbouring weights, so coincident knots must
// not produce a zero weight.
const MinChordWeight = 1e-5

// ChordWeight returns the euclidean distance between p1 and p2, clamped from
// below to [MinChordWeight]. For finite inputs the result is finite and
// strictly positive.
//
// Weights bias the control points of a closed curve towards the shorter of
// two neighbouring chords, so that knots that are close together get short
// control arms.
func ChordWeight(p1, p2 Point) float64 {
	d := p1.Distance(p2)
	if d < MinChordWeight {
		return MinChordWeight
	}
	return d
}

// chordWeights returns the weights of all chords of the closed polygon through
// points. Weight i belongs to the chord from points[i] to points[i+1], and the
// last weight to the chord closing the loop.
func chordWeights(points []Point) []float64 {
	n := len(points)
	w := make([]float64, n)
	for i := range n {
		w[i] = ChordWeight(points[i], points[wrap(i+1, n)])
	}
	return w
}

// wrap maps i onto [0, n), for indexing the knots and weights of a closed
// curve.
func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
