package spline

import (
	"fmt"
	"iter"
	"math"
)

var _ ParametricCurve = (*Segment)(nil)
var _ Differentiable = (*Segment)(nil)

// Segment is a single cubic curve piece described by four control points in
// one of the supported bases.
//
// Besides the control points, a segment keeps two derived sets of points:
// the stored points, which are what the basis's characteristic matrix
// operates on, and the equivalent Bézier control points, which renderers use
// to draw any segment with a single cubic Bézier primitive. Every method that
// changes the control points recomputes both before returning.
//
// The basis of a segment never changes.
type Segment struct {
	basis   Basis
	control [4]Point
	stored  [4]Point
	bezier  [4]Point
}

// NewSegment returns a segment with the given native control points. What the
// points mean depends on the basis; see the documentation of [Basis]'s
// constants.
func NewSegment(pts [4]Point, basis Basis) *Segment {
	seg := &Segment{basis: basis}
	seg.SetPoints(pts)
	return seg
}

// pointSegment returns a zero-length Bézier segment located at pt.
func pointSegment(pt Point) *Segment {
	return NewSegment([4]Point{pt, pt, pt, pt}, Bezier)
}

// SetPoints replaces the control points.
func (seg *Segment) SetPoints(pts [4]Point) {
	mats := seg.basis.matrices()
	seg.control = pts
	stored := mustMul(mats.storing, pointsMatrix(pts[:]))
	seg.stored = matrixPoints(stored)
	seg.bezier = matrixPoints(mustMul(mats.toBezier, stored))
}

// Basis returns the segment's basis.
func (seg *Segment) Basis() Basis { return seg.basis }

// ControlPoints returns the native control points.
func (seg *Segment) ControlPoints() [4]Point { return seg.control }

// StoredPoints returns the control points after applying the basis's storing
// matrix. For Hermite segments, the second and fourth stored points are the
// start and end tangents. For all other bases they equal the control points.
func (seg *Segment) StoredPoints() [4]Point { return seg.stored }

// BezierPoints returns the control points of the cubic Bézier that traces the
// same curve as seg.
func (seg *Segment) BezierPoints() [4]Point { return seg.bezier }

// Bezier returns the cubic Bézier that traces the same curve as seg.
func (seg *Segment) Bezier() CubicBez {
	return CubicBez{seg.bezier[0], seg.bezier[1], seg.bezier[2], seg.bezier[3]}
}

// PathElements returns the path elements that draw the segment: a "move to"
// the first Bézier point followed by a "cubic to" through the others.
func (seg *Segment) PathElements() iter.Seq[PathElement] {
	return seg.Bezier().PathElements()
}

// evalRow returns row × characteristic × stored points.
func (seg *Segment) evalRow(row []float64) Point {
	coeffs := mustMul(NewMatrix(row), seg.basis.matrices().characteristic)
	p := mustMul(coeffs, pointsMatrix(seg.stored[:]))
	return Point{X: p.dense.At(0, 0), Y: p.dense.At(0, 1)}
}

// Eval returns the position at parameter t. The segment spans t ∈ [0, 1], but
// t isn't clamped; values outside that range extrapolate the polynomial.
func (seg *Segment) Eval(t float64) Point {
	return seg.evalRow([]float64{1, t, t * t, t * t * t})
}

// Velocity returns the first derivative of the position with respect to t.
func (seg *Segment) Velocity(t float64) Vec2 {
	return Vec2(seg.evalRow([]float64{0, 1, 2 * t, 3 * t * t}))
}

// Start returns the position at t = 0.
func (seg *Segment) Start() Point { return seg.Eval(0) }

// End returns the position at t = 1.
func (seg *Segment) End() Point { return seg.Eval(1) }

// Translate moves every control point by v. All bases are invariant under
// translation, so the curve moves by v as well.
func (seg *Segment) Translate(v Vec2) {
	var pts [4]Point
	for i, pt := range seg.control {
		pts[i] = pt.Translate(v)
	}
	seg.SetPoints(pts)
}

// MovePointTo translates the segment so that its position at t lies on target.
func (seg *Segment) MovePointTo(t float64, target Point) {
	seg.Translate(target.Sub(seg.Eval(t)))
}

// Rotate rotates the segment counter-clockwise by the given number of degrees
// about its own position at parameter t.
//
// The control points are rotated about the origin and the segment is then
// moved back so that the point at t is where it was before.
func (seg *Segment) Rotate(degrees, t float64) {
	center := seg.Eval(t)
	rot := rotationMatrix(degrees)
	var pts [4]Point
	for i, pt := range seg.control {
		col := mustMul(rot, NewMatrix([]float64{pt.X}, []float64{pt.Y}))
		pts[i] = Point{X: col.dense.At(0, 0), Y: col.dense.At(1, 0)}
	}
	seg.SetPoints(pts)
	seg.MovePointTo(t, center)
}

// rotationMatrix returns the 2×2 matrix of a counter-clockwise rotation,
// acting on column vectors.
func rotationMatrix(degrees float64) *Matrix {
	sin, cos := math.Sincos(degrees / 180 * math.Pi)
	return NewMatrix(
		[]float64{cos, -sin},
		[]float64{sin, cos},
	)
}

// Transform applies an affine transformation to the control points. Every
// basis is affine invariant, so this is the same as transforming the curve.
func (seg *Segment) Transform(aff Affine) {
	var pts [4]Point
	for i, pt := range seg.control {
		pts[i] = pt.Transform(aff)
	}
	seg.SetPoints(pts)
}

// Clone returns an independent copy of seg.
func (seg *Segment) Clone() *Segment {
	cp := *seg
	return &cp
}

func (seg *Segment) String() string {
	c := seg.control
	return fmt.Sprintf("%s{%s, %s, %s, %s}", seg.basis, c[0], c[1], c[2], c[3])
}

// ControlPolygon returns the control points connected by straight lines, for
// overlays.
func (seg *Segment) ControlPolygon() BezPath {
	return Polyline(seg.control[:]...)
}

// BezierPolygon returns the Bézier control points connected by straight lines.
func (seg *Segment) BezierPolygon() BezPath {
	return Polyline(seg.bezier[:]...)
}
