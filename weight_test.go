package spline

import (
	"math"
	"testing"
)

func TestChordWeight(t *testing.T) {
	tests := []struct {
		p1, p2 Point
		want   float64
	}{
		{Pt(0, 0), Pt(3, 4), 5},
		{Pt(-1, -1), Pt(-1, 9), 10},
		{Pt(2, 2), Pt(2, 2), MinChordWeight},
		{Pt(0, 0), Pt(1e-7, 0), MinChordWeight},
		{Pt(0, 0), Pt(MinChordWeight, 0), MinChordWeight},
		{Pt(0, 0), Pt(2e-5, 0), 2e-5},
	}
	for _, tt := range tests {
		if got := ChordWeight(tt.p1, tt.p2); got != tt.want {
			t.Errorf("ChordWeight(%s, %s) = %g, want %g", tt.p1, tt.p2, got, tt.want)
		}
	}
}

func TestChordWeightPositive(t *testing.T) {
	rng := newRand()
	for range 1000 {
		p1 := randomPoints(rng, 1)[0]
		p2 := p1
		if rng.IntN(2) == 0 {
			p2 = Pt(p2.X+rng.Float64()*1e-4, p2.Y+rng.Float64()*1e-4)
		}
		w := ChordWeight(p1, p2)
		if !(w > 0) || math.IsInf(w, 0) {
			t.Fatalf("ChordWeight(%s, %s) = %g, want finite positive weight", p1, p2, w)
		}
	}
}

func TestChordWeights(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(10, 10)}
	want := []float64{10, 10, MinChordWeight, math.Hypot(10, 10)}
	diff(t, want, chordWeights(pts))
}

func TestWrap(t *testing.T) {
	tests := []struct{ i, n, want int }{
		{0, 4, 0},
		{3, 4, 3},
		{4, 4, 0},
		{-1, 4, 3},
		{9, 4, 1},
		{-5, 4, 3},
	}
	for _, tt := range tests {
		if got := wrap(tt.i, tt.n); got != tt.want {
			t.Errorf("wrap(%d, %d) = %d, want %d", tt.i, tt.n, got, tt.want)
		}
	}
}
