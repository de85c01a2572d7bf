package spline

import "iter"

// Sample returns an iterator over positions of c, stepping the parameter by dt
// from t0 while it is less than t1. It yields nothing if dt isn't positive.
//
// The parameter is computed as t0 + i*dt rather than by repeated addition, so
// that long sweeps don't accumulate rounding errors.
func Sample(c ParametricCurve, t0, t1, dt float64) iter.Seq2[float64, Point] {
	return func(yield func(float64, Point) bool) {
		for t := range steps(t0, t1, dt) {
			if !yield(t, c.Eval(t)) {
				return
			}
		}
	}
}

// SampleVelocity is like [Sample] but yields derivatives.
func SampleVelocity(c Differentiable, t0, t1, dt float64) iter.Seq2[float64, Vec2] {
	return func(yield func(float64, Vec2) bool) {
		for t := range steps(t0, t1, dt) {
			if !yield(t, c.Velocity(t)) {
				return
			}
		}
	}
}

func steps(t0, t1, dt float64) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if !(dt > 0) {
			return
		}
		for i := 0; ; i++ {
			t := t0 + float64(i)*dt
			if !(t < t1) || !yield(t) {
				return
			}
		}
	}
}
