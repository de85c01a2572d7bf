package spline

// ParametricCurve describes a curve parametrized by a scalar.
type ParametricCurve interface {
	// Eval evaluates the curve at parameter t.
	Eval(t float64) Point
}

// Differentiable describes a parametrized curve that can report its first
// derivative.
type Differentiable interface {
	// Velocity returns the derivative of the curve at parameter t.
	Velocity(t float64) Vec2
}
