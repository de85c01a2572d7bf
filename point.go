package spline

import (
	"fmt"
	"math"
)

// Point is a position in 2D space.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Sub computes pt−o.
// To subtract a vector from pt, use Translate and negate the vector.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

// pointsMatrix stacks points as the rows of a len(pts)×2 matrix.
func pointsMatrix(pts []Point) *Matrix {
	m := newMatrix(len(pts), 2)
	for i, pt := range pts {
		m.dense.Set(i, 0, pt.X)
		m.dense.Set(i, 1, pt.Y)
	}
	return m
}

// matrixPoints is the inverse of pointsMatrix for a 4×2 matrix.
func matrixPoints(m *Matrix) [4]Point {
	var out [4]Point
	for i := range out {
		out[i] = Point{X: m.dense.At(i, 0), Y: m.dense.At(i, 1)}
	}
	return out
}
