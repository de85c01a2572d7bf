package spline

import (
	"iter"
)

var _ ParametricCurve = CubicBez{}
var _ Differentiable = CubicBez{}

// CubicBez is a cubic Bézier curve.
//
// It is evaluated directly from the Bernstein polynomials, independently of
// the basis matrices used by [Segment].
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// PathElements returns a "move to" the start of the curve followed by a "cubic
// to" its end.
func (c CubicBez) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(c.P0)) &&
			yield(CubicTo(c.P1, c.P2, c.P3))
	}
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Velocity returns the derivative of the curve at t.
func (c CubicBez) Velocity(t float64) Vec2 {
	mt := 1.0 - t
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	return d0.Mul(3 * mt * mt).Add(d1.Mul(6 * mt * t)).Add(d2.Mul(3 * t * t))
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		c.P0.Transform(aff),
		c.P1.Transform(aff),
		c.P2.Transform(aff),
		c.P3.Transform(aff),
	}
}
