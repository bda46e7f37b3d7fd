package spline

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
	diff(t, Pt(-1, 5).Sub(Pt(-1, 5)), Vec2{})
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPointNonFinite(t *testing.T) {
	if !Pt(math.NaN(), 0).IsNaN() {
		t.Error("NaN point not reported as NaN")
	}
	if !Pt(0, math.Inf(-1)).IsInf() {
		t.Error("infinite point not reported as infinite")
	}
	if Pt(1, 2).IsNaN() || Pt(1, 2).IsInf() {
		t.Error("finite point reported as non-finite")
	}
}
