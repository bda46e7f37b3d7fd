package spline

import (
	"fmt"
	"testing"
)

func TestOpenSystemCoefficients(t *testing.T) {
	sys := newOpenSystem([]float64{1, 2, 3, 4, 5})
	diff(t, []float64{0, 1, 1, 2}, sys.a)
	diff(t, []float64{2, 4, 4, 7}, sys.b)
	diff(t, []float64{1, 1, 1, 0}, sys.c)
	diff(t, []float64{1 + 2*2, 4*2 + 2*3, 4*3 + 2*4, 8*4 + 5}, sys.r)
}

func TestOpenSolveMatchesDense(t *testing.T) {
	rng := newRand()
	for n := 3; n <= 16; n++ {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			knots := randomValues(rng, n, -100, 100)
			sys := newOpenSystem(knots)
			before := sys.clone()

			got := sys.solve()
			want := denseSolve(t, sys, false)
			diff(t, want, got, approxPoints)
			// The elimination must work on a private copy.
			diff(t, before, sys, cmpAxisSystem)
		})
	}
}

func TestOpenControlsScenario(t *testing.T) {
	cp1, cp2 := openControls([]float64{0, 10, 10, 0})
	diff(t, []float64{4, 12, 8}, cp1, approxPoints)
	diff(t, []float64{8, 12, 4}, cp2, approxPoints)

	cp1, cp2 = openControls([]float64{0, 0, 10, 10})
	diff(t, []float64{-10.0 / 9, 20.0 / 9, 110.0 / 9}, cp1, approxPoints)
	diff(t, []float64{-20.0 / 9, 70.0 / 9, 100.0 / 9}, cp2, approxPoints)
}

func TestOpenControlsLinear(t *testing.T) {
	// Equidistant collinear knots are fitted by a straight line whose
	// control points divide every chord into thirds.
	cp1, cp2 := openControls([]float64{0, 3, 6, 9, 12})
	diff(t, []float64{1, 4, 7, 10}, cp1, approxPoints)
	diff(t, []float64{2, 5, 8, 11}, cp2, approxPoints)
}

func TestOpenControlsLength(t *testing.T) {
	for n := 3; n < 10; n++ {
		knots := make([]float64, n)
		cp1, cp2 := openControls(knots)
		if len(cp1) != n-1 || len(cp2) != n-1 {
			t.Errorf("%d knots: got %d and %d control points, want %d", n, len(cp1), len(cp2), n-1)
		}
	}
}
