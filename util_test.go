package spline

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approxPoints compares points and floats with a small absolute tolerance.
var approxPoints = cmp.Options{
	cmp.Comparer(func(p1, p2 Point) bool {
		return p1.Distance(p2) <= 1e-9
	}),
	cmp.Comparer(func(a, b float64) bool {
		return scalar.EqualWithinAbsOrRel(a, b, 1e-9, 1e-9)
	}),
}

var cmpAxisSystem = cmp.AllowUnexported(axisSystem{})

// denseSolve solves sys with a dense LU decomposition. If cyclic is set, the
// corner entries a[0] and c[n-1] are part of the matrix.
func denseSolve(t *testing.T, sys axisSystem, cyclic bool) []float64 {
	t.Helper()
	n := sys.len()
	m := mat.NewDense(n, n, nil)
	for i := range n {
		m.Set(i, i, m.At(i, i)+sys.b[i])
		if i > 0 || cyclic {
			j := wrap(i-1, n)
			m.Set(i, j, m.At(i, j)+sys.a[i])
		}
		if i < n-1 || cyclic {
			j := wrap(i+1, n)
			m.Set(i, j, m.At(i, j)+sys.c[i])
		}
	}
	rhs := mat.NewVecDense(n, append([]float64(nil), sys.r...))

	var x mat.VecDense
	if err := x.SolveVec(m, rhs); err != nil {
		t.Fatalf("reference solve failed: %s", err)
	}
	return x.RawVector().Data
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(0x5eed, 0xc0ffee))
}

func randomValues(rng *rand.Rand, n int, lo, hi float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + rng.Float64()*(hi-lo)
	}
	return out
}

func randomPoints(rng *rand.Rand, n int) []Point {
	out := make([]Point, n)
	for i := range out {
		out[i] = Pt(rng.Float64()*200-100, rng.Float64()*200-100)
	}
	return out
}

// nearVec reports whether two vectors agree to within tol, relative to their
// magnitude if that exceeds 1.
func nearVec(a, b Vec2, tol float64) bool {
	scale := max(1, a.Hypot(), b.Hypot())
	return a.Sub(b).Hypot() <= tol*scale
}
