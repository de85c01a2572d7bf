package spline

import (
	"fmt"
	"math"
	"testing"
)

// chain builds a connected spline of Bézier segments through the given
// control polygons.
func chain(polys ...[4]Point) *Spline {
	sp := New()
	for _, pts := range polys {
		sp.ConnectSegment(NewSegment(pts, Bezier))
	}
	return sp
}

func TestEmptySplineDegradesToOrigin(t *testing.T) {
	sp := New()
	for _, ts := range []float64{math.Inf(-1), -1e9, -3, 0, 0.5, 7.5, 1e9, math.Inf(1)} {
		diff(t, Point{}, sp.Eval(ts))
		diff(t, Vec2{}, sp.Velocity(ts))
	}
	if got := sp.Len(); got != 0 {
		t.Fatalf("got %d segments, want 0", got)
	}
	if sp.Segment(0) == nil {
		t.Fatal("got nil segment")
	}
	diff(t, Bezier, sp.Segment(3).Basis())
}

func TestSplineSegmentOutOfRange(t *testing.T) {
	sp := New(NewSegment(squarePoints, Bezier))

	after := sp.Segment(1)
	diff(t, [4]Point{Pt(2, 2), Pt(2, 2), Pt(2, 2), Pt(2, 2)}, after.ControlPoints(), approx)
	before := sp.Segment(-1)
	diff(t, [4]Point{Pt(0, 0), Pt(0, 0), Pt(0, 0), Pt(0, 0)}, before.ControlPoints(), approx)

	diff(t, Pt(2, 2), sp.Eval(3.2), approx)
	diff(t, Pt(0, 0), sp.Eval(-0.7), approx)
	diff(t, Vec2{}, sp.Velocity(5), approx)

	// Parameters too large for an int still land on the end points.
	diff(t, Pt(2, 2), sp.Eval(1e19), approx)
	diff(t, Pt(0, 0), sp.Eval(-1e19), approx)
	diff(t, Pt(2, 2), sp.Eval(math.Inf(1)), approx)
	diff(t, Pt(0, 0), sp.Eval(math.Inf(-1)), approx)
	diff(t, Vec2{}, sp.Velocity(math.Inf(1)), approx)

	// Synthesized segments aren't attached.
	if got := sp.Len(); got != 1 {
		t.Fatalf("got %d segments, want 1", got)
	}
	after.Translate(Vec(1, 1))
	diff(t, Pt(2, 2), sp.Eval(1), approx)
}

func TestSplineEvalGlobalParameter(t *testing.T) {
	sp := chain(squarePoints, [4]Point{Pt(0, 0), Pt(1, 0), Pt(2, 1), Pt(3, 3)})
	if got := sp.Len(); got != 2 {
		t.Fatalf("got %d segments, want 2", got)
	}
	if lo, hi := sp.Domain(); lo != 0 || hi != 2 {
		t.Errorf("got domain [%g, %g], want [0, 2]", lo, hi)
	}

	s0, s1 := sp.Segment(0), sp.Segment(1)
	diff(t, s0.Eval(0.25), sp.Eval(0.25))
	diff(t, s1.Eval(0.5), sp.Eval(1.5))
	diff(t, s1.Velocity(0.75), sp.Velocity(1.75))
	diff(t, s1.Eval(0), sp.Eval(1))
}

func TestSplineConnectSegment(t *testing.T) {
	sp := chain(squarePoints)
	seg := NewSegment([4]Point{Pt(0, 0), Pt(1, 0), Pt(2, 1), Pt(3, 3)}, CatmullRom)
	sp.ConnectSegment(seg)
	if got := sp.Len(); got != 2 {
		t.Fatalf("got %d segments, want 2", got)
	}
	if sp.Segment(1) != seg {
		t.Errorf("sp.Segment(1) isn't seg")
	}
	assertNear(t, seg.Start(), Pt(2, 2), 1e-9)

	// Connecting a segment that is already part of the spline moves it but
	// doesn't append it again.
	seg.Translate(Vec(5, 5))
	sp.ConnectSegment(seg)
	if got := sp.Len(); got != 2 {
		t.Fatalf("got %d segments, want 2", got)
	}
	assertNear(t, seg.Start(), Pt(2, 2), 1e-9)
}

func TestSplineExtendPoint(t *testing.T) {
	sp := New(NewSegment([4]Point{Pt(0, 0), Pt(0, 3), Pt(3, 0), Pt(3, 3)}, BSpline))
	seg := sp.ExtendPoint(Pt(3, 6))

	if got := sp.Len(); got != 2 {
		t.Fatalf("got %d segments, want 2", got)
	}
	if sp.Segment(1) != seg {
		t.Errorf("sp.Segment(1) isn't seg")
	}
	diff(t, BSpline, seg.Basis())
	diff(t, [4]Point{Pt(0, 3), Pt(3, 0), Pt(3, 3), Pt(3, 6)}, seg.ControlPoints(), approx)
	assertNear(t, sp.Segment(0).Eval(1), seg.Eval(0), 1e-9)

	sp.ExtendPoint(Pt(6, 6))
	diff(t, [4]Point{Pt(3, 0), Pt(3, 3), Pt(3, 6), Pt(6, 6)}, sp.Segment(2).ControlPoints(), approx)
	if !sp.Continuous(1e-9) {
		t.Error("spline isn't continuous")
	}
}

func TestSplineExtendPointCatmullRom(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 2), Pt(3, 3), Pt(4, 1), Pt(6, 0), Pt(7, 2)}
	sp := New(NewSegment([4]Point(pts[:4]), CatmullRom))
	for _, pt := range pts[4:] {
		sp.ExtendPoint(pt)
	}
	if got := sp.Len(); got != 3 {
		t.Fatalf("got %d segments, want 3", got)
	}
	if !sp.Continuous(1e-9) {
		t.Error("spline isn't continuous")
	}
	// A Catmull-Rom spline passes through its inner points.
	for i, pt := range pts[1 : len(pts)-1] {
		assertNear(t, sp.Eval(float64(i)), pt, 1e-9)
	}
}

func TestSplineExtendEmpty(t *testing.T) {
	sp := New()
	seg := sp.ExtendPoint(Pt(1, 1))
	if got := sp.Len(); got != 1 {
		t.Fatalf("got %d segments, want 1", got)
	}
	diff(t, Bezier, seg.Basis())
	diff(t, [4]Point{{}, {}, {}, Pt(1, 1)}, seg.ControlPoints())
}

func TestSplineTranslate(t *testing.T) {
	sp := chain(squarePoints, [4]Point{Pt(0, 0), Pt(1, 0), Pt(2, 1), Pt(3, 3)})
	before := sp.Eval(1.3)
	sp.Translate(Vec(-1, 4))
	assertNear(t, sp.Eval(1.3), before.Translate(Vec(-1, 4)), 1e-9)
	if !sp.Continuous(1e-9) {
		t.Error("spline isn't continuous")
	}

	sp.MovePointTo(0.5, Pt(0, 0))
	assertNear(t, sp.Eval(0.5), Pt(0, 0), 1e-9)
	if !sp.Continuous(1e-9) {
		t.Error("spline isn't continuous")
	}
}

func TestSplineRotateKeepsContinuity(t *testing.T) {
	polys := [][4]Point{
		squarePoints,
		{Pt(0, 0), Pt(1, 0), Pt(2, 1), Pt(3, 3)},
		{Pt(5, 5), Pt(4, 1), Pt(2, -1), Pt(0, 0)},
	}
	for _, deg := range []float64{-20, 15, 90, 180, 301} {
		for _, t0 := range []float64{0, 0.5, 1, 2.25} {
			t.Run(fmt.Sprintf("%g/%g", deg, t0), func(t *testing.T) {
				sp := chain(polys...)
				center := sp.Eval(t0)
				sp.Rotate(deg, t0)
				if !sp.Continuous(1e-9) {
					t.Error("spline isn't continuous")
				}
				assertNear(t, sp.Eval(t0), center, 1e-9)
			})
		}
	}
}

func TestSplineRotateTwoSegments(t *testing.T) {
	s0 := NewSegment(squarePoints, Hermite)
	s1 := NewSegment([4]Point{Pt(0, 0), Pt(1, 0), Pt(2, 1), Pt(3, 3)}, BSpline)
	sp := New()
	sp.ConnectSegment(s0)
	sp.ConnectSegment(s1)
	sp.Rotate(75, 0)
	assertNear(t, s0.Eval(1), s1.Eval(0), 1e-9)
}

func TestSplineRotateConnectedChainIsRigid(t *testing.T) {
	sp := chain(squarePoints, [4]Point{Pt(0, 0), Pt(1, 0), Pt(2, 1), Pt(3, 3)})
	var before []Point
	for _, p := range Sample(sp, 0, 2, 0.1) {
		before = append(before, p)
	}
	center := sp.Eval(0.5)
	sp.Rotate(40, 0.5)
	aff := RotateAbout(40*math.Pi/180, center)
	var i int
	for _, p := range Sample(sp, 0, 2, 0.1) {
		assertNear(t, p, before[i].Transform(aff), 1e-9)
		i++
	}
}

func TestSplineTransform(t *testing.T) {
	sp := chain(squarePoints, [4]Point{Pt(0, 0), Pt(1, 0), Pt(2, 1), Pt(3, 3)})
	aff := Affine{2, 0.5, -1, 1, 3, 4}
	want := sp.Eval(1.5).Transform(aff)
	sp.Transform(aff)
	if !sp.Continuous(1e-9) {
		t.Error("spline isn't continuous")
	}
	assertNear(t, sp.Eval(1.5), want, 1e-9)
}

func TestSplineSplit(t *testing.T) {
	sp := chain(squarePoints, squarePoints, squarePoints)
	s1, s2 := sp.Segment(1), sp.Segment(2)

	tail := sp.Split(1)
	if got := sp.Len(); got != 1 {
		t.Fatalf("got %d segments, want 1", got)
	}
	if got := tail.Len(); got != 2 {
		t.Fatalf("got %d segments, want 2", got)
	}
	if tail.Segment(0) != s1 {
		t.Errorf("tail.Segment(0) isn't s1")
	}
	if tail.Segment(1) != s2 {
		t.Errorf("tail.Segment(1) isn't s2")
	}

	// The halves don't share storage.
	sp.ConnectSegment(NewSegment(squarePoints, Bezier))
	if tail.Segment(0) != s1 {
		t.Errorf("tail.Segment(0) isn't s1")
	}

	if got := tail.Split(99).Len(); got != 0 {
		t.Errorf("got %d segments past the end, want 0", got)
	}
	rest := tail.Split(-4)
	if got := tail.Len(); got != 0 {
		t.Fatalf("got %d segments, want 0", got)
	}
	if got := rest.Len(); got != 2 {
		t.Fatalf("got %d segments, want 2", got)
	}
}

func TestSplineConnectSpline(t *testing.T) {
	sp := chain(squarePoints, squarePoints, squarePoints)
	tail := sp.Split(2)
	tail.Translate(Vec(10, 10))
	sp.ConnectSpline(tail)

	if got := sp.Len(); got != 3 {
		t.Fatalf("got %d segments, want 3", got)
	}
	if got := tail.Len(); got != 0 {
		t.Fatalf("got %d segments, want 0", got)
	}
	if !sp.Continuous(1e-9) {
		t.Error("spline isn't continuous")
	}

	sp.ConnectSpline(sp)
	if got := sp.Len(); got != 3 {
		t.Fatalf("got %d segments, want 3", got)
	}
}

func TestSplinePath(t *testing.T) {
	sp := New(NewSegment(squarePoints, BSpline), NewSegment(squarePoints, Hermite))
	p := sp.Path()
	if len(p) != 4 {
		t.Fatalf("got %d path elements, want 4", len(p))
	}
	diff(t, MoveToKind, p[0].Kind)
	diff(t, CubicToKind, p[1].Kind)

	var i int
	for c := range p.Cubics() {
		diff(t, sp.Segment(i).Bezier(), c, approx)
		i++
	}
	if i != 2 {
		t.Errorf("got %d cubics, want 2", i)
	}

	var n int
	for _, seg := range sp.Segments() {
		if seg == nil {
			t.Fatal("got nil segment")
		}
		n++
	}
	if n != sp.Len() {
		t.Errorf("got %d segments, want %d", n, sp.Len())
	}
}

func TestSplineContinuous(t *testing.T) {
	sp := New(NewSegment(squarePoints, Bezier), NewSegment(squarePoints, Bezier))
	if sp.Continuous(1e-9) {
		t.Error("disjoint segments reported as continuous")
	}
	if !New().Continuous(0) {
		t.Error("empty spline isn't continuous")
	}
}

func TestSplineIgnoresNilSegments(t *testing.T) {
	seg := NewSegment(squarePoints, Bezier)
	sp := New(nil, seg, nil)
	if got := sp.Len(); got != 1 {
		t.Fatalf("got %d segments, want 1", got)
	}
	if sp.Segment(0) != seg {
		t.Error("sp.Segment(0) isn't seg")
	}
	diff(t, Pt(2, 2), sp.Eval(1), approx)

	sp.ConnectSegment(nil)
	if got := sp.Len(); got != 1 {
		t.Errorf("got %d segments, want 1", got)
	}
	sp.Translate(Vec(1, 0))
	sp.Rotate(30, 0.5)
	if !New(nil).Continuous(0) {
		t.Error("spline of only nil segments isn't continuous")
	}
}
